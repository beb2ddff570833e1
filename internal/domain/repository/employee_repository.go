package repository

import (
	"context"
	"time"

	"employee-graphql-api/internal/domain/entity"
)

// EmployeeFilter narrows a search. Empty fields are not filtered;
// non-empty fields match as case-insensitive substrings.
type EmployeeFilter struct {
	Designation string
	Department  string
}

// EmployeePatch is a partial update. Nil fields are left untouched.
type EmployeePatch struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Gender        *string
	Designation   *string
	Salary        *float64
	DateOfJoining *time.Time
	Department    *string
	PhotoURL      *string
}

// EmployeeRepository defines the interface for employee-related database
// operations. Create and Update return ErrDuplicate on unique-email
// conflicts; lookups return ErrNotFound for missing ids.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	// List returns all employees ordered by creation time descending.
	List(ctx context.Context) ([]*entity.Employee, error)
	Search(ctx context.Context, f EmployeeFilter) ([]*entity.Employee, error)
	Update(ctx context.Context, id string, p EmployeePatch) (*entity.Employee, error)
	Delete(ctx context.Context, id string) error
}
