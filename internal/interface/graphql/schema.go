// Package graphql declares the API schema and binds each field to the
// operation layer. Resolvers return envelopes for expected business
// outcomes; a Go error from a resolver means an unexpected fault and
// surfaces in the response errors array.
package graphql

import (
	"github.com/graphql-go/graphql"

	"employee-graphql-api/internal/application"
	"employee-graphql-api/pkg/response"
)

type Resolver struct {
	Auth      *application.AuthService
	Employees *application.EmployeeService
}

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"_id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"username":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"created_at": &graphql.Field{Type: graphql.NewNonNull(dateScalar)},
		"updated_at": &graphql.Field{Type: graphql.NewNonNull(dateScalar)},
	},
})

var employeeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Employee",
	Fields: graphql.Fields{
		"_id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"first_name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"last_name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"gender":          &graphql.Field{Type: graphql.String},
		"designation":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"salary":          &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"date_of_joining": &graphql.Field{Type: graphql.NewNonNull(dateScalar)},
		"department":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"employee_photo":  &graphql.Field{Type: graphql.String},
		"created_at":      &graphql.Field{Type: graphql.NewNonNull(dateScalar)},
		"updated_at":      &graphql.Field{Type: graphql.NewNonNull(dateScalar)},
	},
})

var authPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthPayload",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"token":   &graphql.Field{Type: graphql.String},
		"user":    &graphql.Field{Type: userType},
	},
})

var apiResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ApiResponse",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var employeeResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EmployeeResponse",
	Fields: graphql.Fields{
		"success":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"message":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"employee": &graphql.Field{Type: employeeType},
	},
})

var employeesResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EmployeesResponse",
	Fields: graphql.Fields{
		"success":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"message":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"employees": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(employeeType)))},
	},
})

var signupInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SignupInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var loginInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"usernameOrEmail": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var employeeInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EmployeeInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"first_name":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"last_name":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"gender":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"designation":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"salary":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"date_of_joining": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(dateScalar)},
		"department":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"employee_photo":  &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var employeeUpdateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EmployeeUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"first_name":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"last_name":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":           &graphql.InputObjectFieldConfig{Type: graphql.String},
		"gender":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"designation":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"salary":          &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"date_of_joining": &graphql.InputObjectFieldConfig{Type: dateScalar},
		"department":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"employee_photo":  &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

// NewSchema builds the executable schema bound to the given services.
func NewSchema(auth *application.AuthService, employees *application.EmployeeService) (graphql.Schema, error) {
	r := &Resolver{Auth: auth, Employees: employees}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Auth.Login(p.Context, decodeLoginInput(p.Args))
				},
			},
			"getAllEmployees": &graphql.Field{
				Type: graphql.NewNonNull(employeesResponseType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Employees.GetAll(p.Context)
				},
			},
			"getEmployeeByEid": &graphql.Field{
				Type: graphql.NewNonNull(employeeResponseType),
				Args: graphql.FieldConfigArgument{
					"eid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Employees.GetByID(p.Context, strArg(p.Args, "eid"))
				},
			},
			"searchEmployees": &graphql.Field{
				Type: graphql.NewNonNull(employeesResponseType),
				Args: graphql.FieldConfigArgument{
					"designation": &graphql.ArgumentConfig{Type: graphql.String},
					"department":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Employees.Search(p.Context, strArg(p.Args, "designation"), strArg(p.Args, "department"))
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signupInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Auth.Signup(p.Context, decodeSignupInput(p.Args))
				},
			},
			"addEmployee": &graphql.Field{
				Type: graphql.NewNonNull(employeeResponseType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(employeeInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in, err := decodeEmployeeInput(p.Args)
					if err != nil {
						return response.EmployeeFailure(err.Error()), nil
					}
					return r.Employees.Add(p.Context, in)
				},
			},
			"updateEmployee": &graphql.Field{
				Type: graphql.NewNonNull(employeeResponseType),
				Args: graphql.FieldConfigArgument{
					"eid":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(employeeUpdateInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in, err := decodeEmployeeUpdateInput(p.Args)
					if err != nil {
						return response.EmployeeFailure(err.Error()), nil
					}
					return r.Employees.Update(p.Context, strArg(p.Args, "eid"), in)
				},
			},
			"deleteEmployee": &graphql.Field{
				Type: graphql.NewNonNull(apiResponseType),
				Args: graphql.FieldConfigArgument{
					"eid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Employees.Delete(p.Context, strArg(p.Args, "eid"))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
