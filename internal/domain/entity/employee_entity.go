package entity

import (
	"time"
)

// Employee is an employee record. PhotoURL, when set, points at an object
// in the external asset store.
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Gender        string
	Designation   string
	Salary        float64
	DateOfJoining time.Time
	Department    string
	PhotoURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
