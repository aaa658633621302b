package database

import (
	"database/sql"
	"testing"
	"time"

	"staff-portal/app/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var sessionColumns = []string{
	"id", "user_id", "day", "check_in", "check_out", "status",
	"check_in_remarks", "check_out_remarks", "duration_minutes", "created_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestGetActiveSessionNilWhenNotCheckedIn(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM attendance_sessions`).
		WithArgs("user-1", "2026-03-10").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	session, err := GetActiveSession(db, "user-1", "2026-03-10")
	if err != nil {
		t.Fatalf("GetActiveSession: %v", err)
	}
	if session != nil {
		t.Errorf("session = %v, want nil", session)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetActiveSession(t *testing.T) {
	db, mock := newMockDB(t)
	checkIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM attendance_sessions`).
		WithArgs("user-1", "2026-03-10").
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("sess-1", "user-1", "2026-03-10", checkIn, nil, models.SessionActive, "on site", "", nil, checkIn))

	session, err := GetActiveSession(db, "user-1", "2026-03-10")
	if err != nil {
		t.Fatalf("GetActiveSession: %v", err)
	}
	if session == nil || session.ID != "sess-1" {
		t.Fatalf("session = %v, want sess-1", session)
	}
	if session.CheckOut != nil {
		t.Errorf("check_out = %v, want nil", session.CheckOut)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCompleteSessionAlreadyClosed(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE attendance_sessions`).
		WithArgs(now, 480, "", "sess-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := CompleteSession(db, "sess-1", now, 480, ""); err != sql.ErrNoRows {
		t.Fatalf("CompleteSession error = %v, want sql.ErrNoRows", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetAttendanceSessionsFilters(t *testing.T) {
	db, mock := newMockDB(t)
	checkIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	branch := "kampala"

	listColumns := append(append([]string{}, sessionColumns...),
		"first_name", "last_name", "employee_code", "branch")

	mock.ExpectQuery(`SELECT (.+) FROM attendance_sessions s\s+JOIN users u`).
		WithArgs("kampala", "2026-03-10", "EMP-042", 50).
		WillReturnRows(sqlmock.NewRows(listColumns).
			AddRow("sess-1", "user-1", "2026-03-10", checkIn, nil, models.SessionActive,
				"", "", nil, checkIn, "Jane", "Doe", "EMP-042", branch))

	sessions, err := GetAttendanceSessions(db, SessionFilters{
		Branch:     &branch,
		Date:       "2026-03-10",
		EmployeeID: "EMP-042",
		Limit:      50,
	})
	if err != nil {
		t.Fatalf("GetAttendanceSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("len = %d, want 1", len(sessions))
	}
	if sessions[0].FirstName != "Jane" || sessions[0].LastName != "Doe" {
		t.Errorf("owner = %s %s, want Jane Doe", sessions[0].FirstName, sessions[0].LastName)
	}
	if sessions[0].Branch == nil || *sessions[0].Branch != "kampala" {
		t.Errorf("branch = %v, want kampala", sessions[0].Branch)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetAttendanceSessionsNoFilters(t *testing.T) {
	db, mock := newMockDB(t)

	listColumns := append(append([]string{}, sessionColumns...),
		"first_name", "last_name", "employee_code", "branch")

	mock.ExpectQuery(`SELECT (.+) FROM attendance_sessions s\s+JOIN users u`).
		WillReturnRows(sqlmock.NewRows(listColumns))

	sessions, err := GetAttendanceSessions(db, SessionFilters{})
	if err != nil {
		t.Fatalf("GetAttendanceSessions: %v", err)
	}
	if sessions == nil {
		t.Error("sessions should be an empty slice, not nil")
	}
	if len(sessions) != 0 {
		t.Errorf("len = %d, want 0", len(sessions))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
