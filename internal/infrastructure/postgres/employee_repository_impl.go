package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"employee-graphql-api/internal/domain/entity"
	"employee-graphql-api/internal/domain/repository"
)

const employeeColumns = `id, first_name, last_name, email, gender, designation,
	salary, date_of_joining, department, photo_url, created_at, updated_at`

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	e := &entity.Employee{}
	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Gender,
		&e.Designation, &e.Salary, &e.DateOfJoining, &e.Department, &e.PhotoURL,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return e, nil
}

func collectEmployees(rows pgx.Rows) ([]*entity.Employee, error) {
	defer rows.Close()
	out := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EmployeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO employees
			(first_name, last_name, email, gender, designation, salary,
			 date_of_joining, department, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, e.FirstName, e.LastName, e.Email, e.Gender, e.Designation, e.Salary,
		e.DateOfJoining, e.Department, e.PhotoURL)

	if err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE id = $1
	`, id)

	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

// likeEscaper neutralizes ILIKE metacharacters so filter input matches
// as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *EmployeeRepository) Search(ctx context.Context, f repository.EmployeeFilter) ([]*entity.Employee, error) {
	q := `SELECT ` + employeeColumns + ` FROM employees`
	var conds []string
	var args []any
	if f.Designation != "" {
		args = append(args, escapeLike(f.Designation))
		conds = append(conds, fmt.Sprintf(`designation ILIKE '%%' || $%d || '%%' ESCAPE '\'`, len(args)))
	}
	if f.Department != "" {
		args = append(args, escapeLike(f.Department))
		conds = append(conds, fmt.Sprintf(`department ILIKE '%%' || $%d || '%%' ESCAPE '\'`, len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, p repository.EmployeePatch) (*entity.Employee, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.FirstName != nil {
		set("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		set("last_name", *p.LastName)
	}
	if p.Email != nil {
		set("email", *p.Email)
	}
	if p.Gender != nil {
		set("gender", *p.Gender)
	}
	if p.Designation != nil {
		set("designation", *p.Designation)
	}
	if p.Salary != nil {
		set("salary", *p.Salary)
	}
	if p.DateOfJoining != nil {
		set("date_of_joining", *p.DateOfJoining)
	}
	if p.Department != nil {
		set("department", *p.Department)
	}
	if p.PhotoURL != nil {
		set("photo_url", *p.PhotoURL)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	q := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d
		RETURNING `+employeeColumns, strings.Join(sets, ", "), len(args))

	e, err := scanEmployee(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, mapError(err)
	}
	return e, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)
