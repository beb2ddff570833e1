package router

import (
	"employee-graphql-api/internal/application"
	"employee-graphql-api/internal/container"
	gcsinfra "employee-graphql-api/internal/infrastructure/gcs"
	pginfra "employee-graphql-api/internal/infrastructure/postgres"
	graphqlapi "employee-graphql-api/internal/interface/graphql"
	"employee-graphql-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup after the container has
// been populated.
func InitModules(r *Registry) error {
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	employeeRepo := pginfra.NewEmployeeRepository(container.GetPGPool())

	uploader := gcsinfra.NewUploader(container.GetGCS(), cfg.GCSBucket)
	photos := application.NewPhotoResolver(uploader, cfg.UploadFolder)

	auth := application.NewAuthService(userRepo, container.GetJWT(), container.GetLogger())
	employees := application.NewEmployeeService(employeeRepo, photos, container.GetLogger())

	schema, err := graphqlapi.NewSchema(auth, employees)
	if err != nil {
		return err
	}

	r.Add(modules.NewGraphQLModule(schema, container.GetJWT()))
	r.Add(modules.NewDebugModule())
	return nil
}
