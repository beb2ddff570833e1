package graphql

import (
	"fmt"
	"time"

	"employee-graphql-api/pkg/validation"
)

// Argument decoding is deliberately explicit: values arriving from the
// executor are plain interface{} maps, and silent numeric coercion is a
// bug farm. Non-numeric salaries fail here instead of being coerced.

func strArg(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func optStrArg(m map[string]interface{}, key string) *string {
	if _, present := m[key]; !present {
		return nil
	}
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func floatArg(m map[string]interface{}, key string) (*float64, error) {
	v, present := m[key]
	if !present || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		return &n, nil
	case int:
		f := float64(n)
		return &f, nil
	case int64:
		f := float64(n)
		return &f, nil
	default:
		return nil, fmt.Errorf("%s must be a number", key)
	}
}

func dateArg(m map[string]interface{}, key string) *time.Time {
	if v, ok := m[key].(time.Time); ok {
		return &v
	}
	return nil
}

func inputArg(args map[string]interface{}) map[string]interface{} {
	if in, ok := args["input"].(map[string]interface{}); ok {
		return in
	}
	return map[string]interface{}{}
}

func decodeLoginInput(args map[string]interface{}) validation.LoginInput {
	in := inputArg(args)
	return validation.LoginInput{
		UsernameOrEmail: strArg(in, "usernameOrEmail"),
		Password:        strArg(in, "password"),
	}
}

func decodeSignupInput(args map[string]interface{}) validation.SignupInput {
	in := inputArg(args)
	return validation.SignupInput{
		Username: strArg(in, "username"),
		Email:    strArg(in, "email"),
		Password: strArg(in, "password"),
	}
}

func decodeEmployeeInput(args map[string]interface{}) (validation.EmployeeInput, error) {
	in := inputArg(args)
	salary, err := floatArg(in, "salary")
	if err != nil {
		return validation.EmployeeInput{}, err
	}
	return validation.EmployeeInput{
		FirstName:     strArg(in, "first_name"),
		LastName:      strArg(in, "last_name"),
		Email:         strArg(in, "email"),
		Gender:        strArg(in, "gender"),
		Designation:   strArg(in, "designation"),
		Salary:        salary,
		DateOfJoining: dateArg(in, "date_of_joining"),
		Department:    strArg(in, "department"),
		Photo:         strArg(in, "employee_photo"),
	}, nil
}

func decodeEmployeeUpdateInput(args map[string]interface{}) (validation.EmployeeUpdateInput, error) {
	in := inputArg(args)
	salary, err := floatArg(in, "salary")
	if err != nil {
		return validation.EmployeeUpdateInput{}, err
	}
	return validation.EmployeeUpdateInput{
		FirstName:     optStrArg(in, "first_name"),
		LastName:      optStrArg(in, "last_name"),
		Email:         optStrArg(in, "email"),
		Gender:        optStrArg(in, "gender"),
		Designation:   optStrArg(in, "designation"),
		Salary:        salary,
		DateOfJoining: dateArg(in, "date_of_joining"),
		Department:    optStrArg(in, "department"),
		Photo:         optStrArg(in, "employee_photo"),
	}, nil
}
