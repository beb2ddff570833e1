// Package response defines the uniform envelopes every GraphQL operation
// returns: {success, message, ...payload}. A failed envelope never
// carries payload data.
package response

import "time"

// User is the outward view of an account. The password hash is never
// part of it.
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Employee is the outward view of an employee record.
type Employee struct {
	ID            string    `json:"_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Gender        *string   `json:"gender"`
	Designation   string    `json:"designation"`
	Salary        float64   `json:"salary"`
	DateOfJoining time.Time `json:"date_of_joining"`
	Department    string    `json:"department"`
	Photo         *string   `json:"employee_photo"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AuthPayload is returned by login and signup.
type AuthPayload struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Token   *string `json:"token"`
	User    *User   `json:"user"`
}

// EmployeeResponse wraps a single employee.
type EmployeeResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Employee *Employee `json:"employee"`
}

// EmployeesResponse wraps a list of employees. Employees is always
// non-nil, matching the non-null list in the schema.
type EmployeesResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Employees []*Employee `json:"employees"`
}

// APIResponse is the payload-less envelope.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func AuthFailure(msg string) *AuthPayload {
	return &AuthPayload{Success: false, Message: msg}
}

func AuthSuccess(msg, token string, u *User) *AuthPayload {
	return &AuthPayload{Success: true, Message: msg, Token: &token, User: u}
}

func EmployeeFailure(msg string) *EmployeeResponse {
	return &EmployeeResponse{Success: false, Message: msg}
}

func EmployeeSuccess(msg string, e *Employee) *EmployeeResponse {
	return &EmployeeResponse{Success: true, Message: msg, Employee: e}
}

func EmployeesFailure(msg string) *EmployeesResponse {
	return &EmployeesResponse{Success: false, Message: msg, Employees: []*Employee{}}
}

func EmployeesSuccess(msg string, es []*Employee) *EmployeesResponse {
	if es == nil {
		es = []*Employee{}
	}
	return &EmployeesResponse{Success: true, Message: msg, Employees: es}
}

func Failure(msg string) *APIResponse {
	return &APIResponse{Success: false, Message: msg}
}

func OK(msg string) *APIResponse {
	return &APIResponse{Success: true, Message: msg}
}
