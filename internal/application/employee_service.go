package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"employee-graphql-api/internal/domain/entity"
	"employee-graphql-api/internal/domain/repository"
	"employee-graphql-api/pkg/helpers"
	"employee-graphql-api/pkg/response"
	"employee-graphql-api/pkg/validation"
)

// EmployeeService handles employee CRUD and search. Every operation is
// gated on a verified identity before any store access.
type EmployeeService struct {
	Repo   repository.EmployeeRepository
	Photos *PhotoResolver
	Logger *logrus.Logger
}

func NewEmployeeService(repo repository.EmployeeRepository, photos *PhotoResolver, logger *logrus.Logger) *EmployeeService {
	return &EmployeeService{Repo: repo, Photos: photos, Logger: logger}
}

func authorized(ctx context.Context) bool {
	_, ok := helpers.IdentityFromContext(ctx)
	return ok
}

// GetAll returns all employees, newest first.
func (s *EmployeeService) GetAll(ctx context.Context) (*response.EmployeesResponse, error) {
	if !authorized(ctx) {
		return response.EmployeesFailure("Unauthorized"), nil
	}
	es, err := s.Repo.List(ctx)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("list employees failed")
		}
		return nil, err
	}
	return response.EmployeesSuccess("Employees fetched", employeeViews(es)), nil
}

// GetByID returns a single employee by id.
func (s *EmployeeService) GetByID(ctx context.Context, id string) (*response.EmployeeResponse, error) {
	if !authorized(ctx) {
		return response.EmployeeFailure("Unauthorized"), nil
	}
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.EmployeeFailure("Employee not found"), nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("employee_id", id).Error("get employee failed")
		}
		return nil, err
	}
	return response.EmployeeSuccess("Employee found", employeeView(e)), nil
}

// Search filters employees by case-insensitive substring match on
// designation and/or department. Absent criteria are not filtered, so an
// empty filter returns everything.
func (s *EmployeeService) Search(ctx context.Context, designation, department string) (*response.EmployeesResponse, error) {
	if !authorized(ctx) {
		return response.EmployeesFailure("Unauthorized"), nil
	}
	es, err := s.Repo.Search(ctx, repository.EmployeeFilter{
		Designation: designation,
		Department:  department,
	})
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("search employees failed")
		}
		return nil, err
	}
	return response.EmployeesSuccess("Search results", employeeViews(es)), nil
}

// Add validates the payload, resolves the photo and creates the record.
// A store-reported unique-email conflict becomes an expected failure.
func (s *EmployeeService) Add(ctx context.Context, in validation.EmployeeInput) (*response.EmployeeResponse, error) {
	if !authorized(ctx) {
		return response.EmployeeFailure("Unauthorized"), nil
	}
	if res := validation.Employee(in); !res.OK {
		return response.EmployeeFailure(res.Message), nil
	}

	photoURL, err := s.Photos.Resolve(ctx, in.Photo)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("photo upload failed")
		}
		return nil, err
	}

	e := &entity.Employee{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Gender:        in.Gender,
		Designation:   in.Designation,
		Salary:        *in.Salary,
		DateOfJoining: *in.DateOfJoining,
		Department:    in.Department,
		PhotoURL:      photoURL,
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return response.EmployeeFailure("Employee email must be unique"), nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", e.Email).Error("create employee failed")
		}
		return nil, err
	}
	return response.EmployeeSuccess("Employee created", employeeView(e)), nil
}

// Update applies a partial update. Only fields present in the payload are
// validated and written; the photo is resolved only when submitted.
func (s *EmployeeService) Update(ctx context.Context, id string, in validation.EmployeeUpdateInput) (*response.EmployeeResponse, error) {
	if !authorized(ctx) {
		return response.EmployeeFailure("Unauthorized"), nil
	}
	if res := validation.EmployeeUpdate(in); !res.OK {
		return response.EmployeeFailure(res.Message), nil
	}

	patch := repository.EmployeePatch{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Gender:        in.Gender,
		Designation:   in.Designation,
		Salary:        in.Salary,
		DateOfJoining: in.DateOfJoining,
		Department:    in.Department,
	}
	if in.Photo != nil {
		resolved, err := s.Photos.Resolve(ctx, *in.Photo)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("employee_id", id).Error("photo upload failed")
			}
			return nil, err
		}
		patch.PhotoURL = &resolved
	}

	e, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return response.EmployeeFailure("Employee not found"), nil
		case errors.Is(err, repository.ErrDuplicate):
			return response.EmployeeFailure("Employee email must be unique"), nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("employee_id", id).Error("update employee failed")
		}
		return nil, err
	}
	return response.EmployeeSuccess("Employee updated", employeeView(e)), nil
}

// Delete removes an employee by id.
func (s *EmployeeService) Delete(ctx context.Context, id string) (*response.APIResponse, error) {
	if !authorized(ctx) {
		return response.Failure("Unauthorized"), nil
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Failure("Employee not found"), nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("employee_id", id).Error("delete employee failed")
		}
		return nil, err
	}
	return response.OK("Employee deleted"), nil
}
