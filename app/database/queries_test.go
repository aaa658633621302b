package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Error("23505 should be a unique violation")
	}
	if IsUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Error("23503 is a foreign key violation, not unique")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("non-pq errors are never unique violations")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil is not a unique violation")
	}
}

func TestGetUserByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	branch := "kampala"

	columns := []string{
		"id", "email", "password", "employee_code", "first_name", "last_name",
		"phone", "role", "branch", "is_active", "last_login_at", "created_at", "updated_at",
	}

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("user-1", "jane@example.com", "$2a$14$hash", "EMP-042", "Jane", "Doe",
				nil, "employee", branch, true, nil, now, now))

	user, err := GetUserByEmail(db, "jane@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user.ID != "user-1" {
		t.Errorf("ID = %q, want user-1", user.ID)
	}
	if user.Branch == nil || *user.Branch != "kampala" {
		t.Errorf("Branch = %v, want kampala", user.Branch)
	}
	if !user.IsActive {
		t.Error("IsActive = false, want true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetUserByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	if _, err := GetUserByEmail(db, "nobody@example.com"); err != sql.ErrNoRows {
		t.Fatalf("GetUserByEmail error = %v, want sql.ErrNoRows", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSetUserStatusNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE users SET is_active`).
		WithArgs(false, "missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := SetUserStatus(db, "missing-id", false); err != sql.ErrNoRows {
		t.Fatalf("SetUserStatus error = %v, want sql.ErrNoRows", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListUsersBranchAndSearchFilters(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	branch := "kampala"

	columns := []string{
		"id", "email", "employee_code", "first_name", "last_name", "phone",
		"role", "branch", "is_active", "last_login_at", "created_at", "updated_at",
	}

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE 1=1 AND branch`).
		WithArgs("kampala", "%jane%").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("user-1", "jane@example.com", "EMP-042", "Jane", "Doe",
				nil, "employee", branch, true, nil, now, now))

	users, err := ListUsers(db, UserFilters{Branch: &branch, Search: "Jane"})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("len = %d, want 1", len(users))
	}
	if users[0].Email != "jane@example.com" {
		t.Errorf("email = %q, want jane@example.com", users[0].Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
