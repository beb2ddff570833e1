package graphql

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-graphql-api/internal/application"
	"employee-graphql-api/internal/domain/entity"
	"employee-graphql-api/internal/domain/repository"
	"employee-graphql-api/pkg/helpers"
)

type memUserStore struct {
	users []*entity.User
}

func (m *memUserStore) Create(_ context.Context, u *entity.User) error {
	for _, ex := range m.users {
		if ex.Username == u.Username || ex.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = fmt.Sprintf("u-%d", len(m.users)+1)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users = append(m.users, &cp)
	return nil
}

func (m *memUserStore) GetByUsernameOrEmail(_ context.Context, identifier string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == identifier || u.Email == strings.ToLower(identifier) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username || u.Email == strings.ToLower(email) {
			return true, nil
		}
	}
	return false, nil
}

type memEmployeeStore struct {
	employees []*entity.Employee
}

func (m *memEmployeeStore) Create(_ context.Context, e *entity.Employee) error {
	for _, ex := range m.employees {
		if ex.Email == e.Email {
			return repository.ErrDuplicate
		}
	}
	e.ID = fmt.Sprintf("e-%d", len(m.employees)+1)
	e.CreatedAt = time.Now().Add(time.Duration(len(m.employees)) * time.Second)
	e.UpdatedAt = e.CreatedAt
	cp := *e
	m.employees = append(m.employees, &cp)
	return nil
}

func (m *memEmployeeStore) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	for _, e := range m.employees {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memEmployeeStore) List(_ context.Context) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(m.employees))
	for i := len(m.employees) - 1; i >= 0; i-- {
		cp := *m.employees[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memEmployeeStore) Search(_ context.Context, f repository.EmployeeFilter) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range m.employees {
		if f.Designation != "" && !strings.Contains(strings.ToLower(e.Designation), strings.ToLower(f.Designation)) {
			continue
		}
		if f.Department != "" && !strings.Contains(strings.ToLower(e.Department), strings.ToLower(f.Department)) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memEmployeeStore) Update(_ context.Context, id string, p repository.EmployeePatch) (*entity.Employee, error) {
	for _, e := range m.employees {
		if e.ID != id {
			continue
		}
		if p.FirstName != nil {
			e.FirstName = *p.FirstName
		}
		if p.LastName != nil {
			e.LastName = *p.LastName
		}
		if p.Email != nil {
			e.Email = *p.Email
		}
		if p.Gender != nil {
			e.Gender = *p.Gender
		}
		if p.Designation != nil {
			e.Designation = *p.Designation
		}
		if p.Salary != nil {
			e.Salary = *p.Salary
		}
		if p.DateOfJoining != nil {
			e.DateOfJoining = *p.DateOfJoining
		}
		if p.Department != nil {
			e.Department = *p.Department
		}
		if p.PhotoURL != nil {
			e.PhotoURL = *p.PhotoURL
		}
		e.UpdatedAt = time.Now().Add(time.Minute)
		cp := *e
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memEmployeeStore) Delete(_ context.Context, id string) error {
	for i, e := range m.employees {
		if e.ID == id {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memUploader struct{ url string }

func (m *memUploader) Upload(context.Context, string, string, []byte) (string, error) {
	return m.url, nil
}

func newTestSchema(t *testing.T) graphql.Schema {
	t.Helper()
	logger := helpers.NewLogger("test", "test")
	jwt := &helpers.JWTManager{Secret: []byte("test-secret"), TTL: 2 * time.Hour}
	auth := application.NewAuthService(&memUserStore{}, jwt, logger)
	photos := application.NewPhotoResolver(
		&memUploader{url: "https://storage.googleapis.com/bucket/employees/obj.png"},
		"employees",
	)
	employees := application.NewEmployeeService(&memEmployeeStore{}, photos, logger)

	schema, err := NewSchema(auth, employees)
	require.NoError(t, err)
	return schema
}

func exec(t *testing.T, schema graphql.Schema, ctx context.Context, query string, vars map[string]interface{}) map[string]interface{} {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        ctx,
	})
	require.False(t, result.HasErrors(), "unexpected errors: %v", result.Errors)
	data, ok := result.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func envelope(t *testing.T, data map[string]interface{}, field string) map[string]interface{} {
	t.Helper()
	env, ok := data[field].(map[string]interface{})
	require.True(t, ok, "missing %s envelope", field)
	return env
}

func authed() context.Context {
	return helpers.WithIdentity(context.Background(), &helpers.Identity{
		ID: "u-1", Username: "alice", Email: "alice@example.com",
	})
}

func TestSignupAndLoginFlow(t *testing.T) {
	schema := newTestSchema(t)
	ctx := context.Background()

	data := exec(t, schema, ctx, `mutation {
		signup(input: {username: "alice", email: "Alice@Example.com", password: "secret123"}) {
			success message token user { _id username email }
		}
	}`, nil)
	env := envelope(t, data, "signup")
	assert.Equal(t, true, env["success"])
	assert.Equal(t, "Signup successful", env["message"])
	assert.NotEmpty(t, env["token"])

	user, ok := env["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])

	data = exec(t, schema, ctx, `{
		login(input: {usernameOrEmail: "alice", password: "secret123"}) {
			success message token
		}
	}`, nil)
	env = envelope(t, data, "login")
	assert.Equal(t, true, env["success"])
	assert.Equal(t, "Login successful", env["message"])
	assert.NotEmpty(t, env["token"])
}

func TestLoginFailureIsEnvelopeNotError(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, context.Background(), `{
		login(input: {usernameOrEmail: "nobody", password: "whatever"}) {
			success message token user { _id }
		}
	}`, nil)
	env := envelope(t, data, "login")
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Invalid credentials", env["message"])
	assert.Nil(t, env["token"])
	assert.Nil(t, env["user"])
}

func TestQueriesRequireIdentity(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, context.Background(), `{
		getAllEmployees { success message employees { _id } }
	}`, nil)
	env := envelope(t, data, "getAllEmployees")
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Unauthorized", env["message"])
	assert.Empty(t, env["employees"])

	data = exec(t, schema, context.Background(), `mutation {
		deleteEmployee(eid: "e-1") { success message }
	}`, nil)
	env = envelope(t, data, "deleteEmployee")
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Unauthorized", env["message"])
}

const addEmployeeMutation = `mutation {
	addEmployee(input: {
		first_name: "Ava", last_name: "Nguyen", email: "ava@example.com",
		gender: "Female", designation: "Software Engineer", salary: 50000,
		date_of_joining: "2022-01-10", department: "Engineering"
	}) {
		success message
		employee { _id first_name email salary date_of_joining employee_photo }
	}
}`

func TestEmployeeLifecycle(t *testing.T) {
	schema := newTestSchema(t)
	ctx := authed()

	data := exec(t, schema, ctx, addEmployeeMutation, nil)
	env := envelope(t, data, "addEmployee")
	require.Equal(t, true, env["success"], "message: %v", env["message"])
	assert.Equal(t, "Employee created", env["message"])

	emp, ok := env["employee"].(map[string]interface{})
	require.True(t, ok)
	eid, _ := emp["_id"].(string)
	require.NotEmpty(t, eid)
	assert.Equal(t, "Ava", emp["first_name"])
	assert.Equal(t, 50000.0, emp["salary"])
	assert.Equal(t, "2022-01-10T00:00:00Z", emp["date_of_joining"])
	assert.Nil(t, emp["employee_photo"])

	data = exec(t, schema, ctx, fmt.Sprintf(`{
		getEmployeeByEid(eid: %q) { success employee { email } }
	}`, eid), nil)
	env = envelope(t, data, "getEmployeeByEid")
	assert.Equal(t, true, env["success"])

	data = exec(t, schema, ctx, `mutation ($eid: ID!, $input: EmployeeUpdateInput!) {
		updateEmployee(eid: $eid, input: $input) {
			success message employee { salary first_name }
		}
	}`, map[string]interface{}{
		"eid":   eid,
		"input": map[string]interface{}{"salary": 62000},
	})
	env = envelope(t, data, "updateEmployee")
	require.Equal(t, true, env["success"], "message: %v", env["message"])
	emp, ok = env["employee"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 62000.0, emp["salary"])
	assert.Equal(t, "Ava", emp["first_name"])

	data = exec(t, schema, ctx, fmt.Sprintf(`mutation {
		deleteEmployee(eid: %q) { success message }
	}`, eid), nil)
	env = envelope(t, data, "deleteEmployee")
	assert.Equal(t, true, env["success"])
	assert.Equal(t, "Employee deleted", env["message"])

	data = exec(t, schema, ctx, fmt.Sprintf(`{
		getEmployeeByEid(eid: %q) { success message }
	}`, eid), nil)
	env = envelope(t, data, "getEmployeeByEid")
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Employee not found", env["message"])
}

func TestAddEmployeeValidationEnvelope(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, authed(), `mutation {
		addEmployee(input: {
			first_name: "Ava", last_name: "Nguyen", email: "not-an-email",
			designation: "Engineer", salary: 50000,
			date_of_joining: "2022-01-10", department: "Engineering"
		}) { success message employee { _id } }
	}`, nil)
	env := envelope(t, data, "addEmployee")
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Invalid email", env["message"])
	assert.Nil(t, env["employee"])
}

func TestSearchEmployeesQuery(t *testing.T) {
	schema := newTestSchema(t)
	ctx := authed()

	exec(t, schema, ctx, addEmployeeMutation, nil)

	data := exec(t, schema, ctx, `{
		searchEmployees(designation: "engineer") {
			success employees { email designation }
		}
	}`, nil)
	env := envelope(t, data, "searchEmployees")
	assert.Equal(t, true, env["success"])
	list, ok := env["employees"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 1)

	data = exec(t, schema, ctx, `{
		searchEmployees(department: "finance") { success employees { _id } }
	}`, nil)
	env = envelope(t, data, "searchEmployees")
	assert.Equal(t, true, env["success"])
	assert.Empty(t, env["employees"])
}
