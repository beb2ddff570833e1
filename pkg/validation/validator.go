// Package validation holds the typed operation inputs and the business
// validation rules applied to them before any store access. Validation
// outcomes are values, not errors: an invalid payload is an expected
// condition and surfaces as a failed envelope upstream.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Conservative local@domain.tld shape: non-whitespace local part, at
// least one dot in the domain.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	return v
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// Result is the outcome of a validation pass.
type Result struct {
	OK      bool
	Message string
}

func ok() Result { return Result{OK: true} }

func invalid(msg string) Result { return Result{Message: msg} }

// SignupInput is the signup payload.
type SignupInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,emailshape"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput is the login payload. Its only rule is presence, checked in
// the login operation itself.
type LoginInput struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// EmployeeInput is the full employee creation payload. Salary and
// DateOfJoining are pointers so that an absent field is distinguishable
// from a zero value.
type EmployeeInput struct {
	FirstName     string     `json:"first_name" validate:"required"`
	LastName      string     `json:"last_name" validate:"required"`
	Email         string     `json:"email" validate:"required,emailshape"`
	Gender        string     `json:"gender"`
	Designation   string     `json:"designation" validate:"required"`
	Salary        *float64   `json:"salary" validate:"required,gte=1000"`
	DateOfJoining *time.Time `json:"date_of_joining" validate:"required"`
	Department    string     `json:"department" validate:"required"`
	Photo         string     `json:"employee_photo"`
}

// EmployeeUpdateInput is a partial employee payload. Nil fields are
// untouched and unvalidated.
type EmployeeUpdateInput struct {
	FirstName     *string    `json:"first_name"`
	LastName      *string    `json:"last_name"`
	Email         *string    `json:"email"`
	Gender        *string    `json:"gender"`
	Designation   *string    `json:"designation"`
	Salary        *float64   `json:"salary"`
	DateOfJoining *time.Time `json:"date_of_joining"`
	Department    *string    `json:"department"`
	Photo         *string    `json:"employee_photo"`
}

// Signup checks the signup payload: all fields present, email shaped,
// password at least 6 characters.
func Signup(in SignupInput) Result {
	errs := fieldErrors(validate.Struct(in))
	if errs == nil {
		return ok()
	}
	fe := errs[0]
	switch {
	case fe.Tag() == "required":
		return invalid("username, email, password are required")
	case fe.Tag() == "emailshape":
		return invalid("Invalid email format")
	default:
		return invalid("Password must be at least 6 chars")
	}
}

// Employee checks a full employee creation payload.
func Employee(in EmployeeInput) Result {
	return employeeResult(fieldErrors(validate.Struct(in)))
}

// EmployeeUpdate checks a partial employee payload; only present fields
// are validated. Presence is carried by non-nil pointers, which tag-based
// rules cannot express, so the two rules are checked directly.
func EmployeeUpdate(in EmployeeUpdateInput) Result {
	if in.Email != nil && !IsValidEmail(*in.Email) {
		return invalid("Invalid email")
	}
	if in.Salary != nil && *in.Salary < 1000 {
		return invalid("Salary must be >= 1000")
	}
	return ok()
}

func employeeResult(errs validator.ValidationErrors) Result {
	if errs == nil {
		return ok()
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return invalid(fe.Field() + " is required")
	case "emailshape":
		return invalid("Invalid email")
	case "gte":
		return invalid("Salary must be >= 1000")
	default:
		return invalid(fe.Field() + " is invalid")
	}
}

func fieldErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	if verrs, okCast := err.(validator.ValidationErrors); okCast {
		return verrs
	}
	return nil
}
