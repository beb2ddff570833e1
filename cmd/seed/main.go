package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"employee-graphql-api/config"
	"employee-graphql-api/pkg/helpers"
)

type seedEmployee struct {
	firstName   string
	lastName    string
	email       string
	gender      string
	designation string
	salary      float64
	joined      string
	department  string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "admin"
	email := "admin@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET updated_at = now()
		RETURNING id
	`, username, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, username, password)

	employees := []seedEmployee{
		{"Ava", "Nguyen", "ava.nguyen@example.com", "Female", "Software Engineer", 95000, "2021-03-15", "Engineering"},
		{"Marcus", "Hill", "marcus.hill@example.com", "Male", "HR Manager", 72000, "2019-11-01", "Human Resources"},
		{"Priya", "Sharma", "priya.sharma@example.com", "Female", "Data Analyst", 68000, "2022-06-20", "Analytics"},
	}
	for _, e := range employees {
		joined, err := time.Parse("2006-01-02", e.joined)
		if err != nil {
			log.Fatalf("bad seed date %q: %v", e.joined, err)
		}
		var eid string
		err = db.QueryRow(`
			INSERT INTO employees
				(first_name, last_name, email, gender, designation, salary,
				 date_of_joining, department, photo_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '')
			ON CONFLICT (email) DO UPDATE SET updated_at = now()
			RETURNING id
		`, e.firstName, e.lastName, e.email, e.gender, e.designation, e.salary, joined, e.department).Scan(&eid)
		if err != nil {
			log.Fatalf("failed to seed employee %s: %v", e.email, err)
		}
		fmt.Printf("seeded employee: id=%s email=%s\n", eid, e.email)
	}
}
