package application

import (
	"employee-graphql-api/internal/domain/entity"
	"employee-graphql-api/pkg/response"
)

func userView(u *entity.User) *response.User {
	return &response.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func employeeView(e *entity.Employee) *response.Employee {
	v := &response.Employee{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Designation:   e.Designation,
		Salary:        e.Salary,
		DateOfJoining: e.DateOfJoining,
		Department:    e.Department,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.Gender != "" {
		g := e.Gender
		v.Gender = &g
	}
	if e.PhotoURL != "" {
		p := e.PhotoURL
		v.Photo = &p
	}
	return v
}

func employeeViews(es []*entity.Employee) []*response.Employee {
	out := make([]*response.Employee, 0, len(es))
	for _, e := range es {
		out = append(out, employeeView(e))
	}
	return out
}
