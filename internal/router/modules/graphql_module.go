package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"employee-graphql-api/internal/interface/middleware"
	"employee-graphql-api/pkg/helpers"
)

// GraphQLModule mounts the /graphql endpoint: POST executes operations,
// GET serves the playground. The identity middleware runs first so
// resolvers see the verified caller, if any.
type GraphQLModule struct {
	Schema graphql.Schema
	JWT    *helpers.JWTManager
}

func NewGraphQLModule(schema graphql.Schema, jwt *helpers.JWTManager) *GraphQLModule {
	return &GraphQLModule{Schema: schema, JWT: jwt}
}

func (m *GraphQLModule) Register(rg *gin.RouterGroup) {
	h := handler.New(&handler.Config{
		Schema:     &m.Schema,
		Pretty:     true,
		Playground: true,
	})
	rg.Match([]string{"GET", "POST"}, "/graphql", middleware.Identity(m.JWT), gin.WrapH(h))
}
