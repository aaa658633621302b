package services

import (
	"testing"
	"time"

	"staff-portal/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

var sessionColumns = []string{
	"id", "user_id", "day", "check_in", "check_out", "status",
	"check_in_remarks", "check_out_remarks", "duration_minutes", "created_at",
}

func newTestService(t *testing.T, now time.Time) (*AttendanceService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &AttendanceService{DB: db, Now: func() time.Time { return now }}, mock
}

func TestCheckIn(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, mock := newTestService(t, now)

	mock.ExpectQuery(`SELECT (.+) FROM attendance_sessions`).
		WithArgs("user-1", "2026-03-10").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	mock.ExpectQuery(`INSERT INTO attendance_sessions`).
		WithArgs("user-1", "2026-03-10", now, "on site").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("sess-1", now))

	session, err := svc.CheckIn("user-1", "on site")
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if session.ID != "sess-1" {
		t.Errorf("session ID = %q, want sess-1", session.ID)
	}
	if session.Status != models.SessionActive {
		t.Errorf("status = %q, want %q", session.Status, models.SessionActive)
	}
	if session.Day != "2026-03-10" {
		t.Errorf("day = %q, want 2026-03-10", session.Day)
	}
	if !session.CheckIn.Equal(now) {
		t.Errorf("check_in = %v, want %v", session.CheckIn, now)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCheckInAlreadyActive(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, mock := newTestService(t, now)

	mock.ExpectQuery(`SELECT (.+) FROM attendance_sessions`).
		WithArgs("user-1", "2026-03-10").
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("sess-1", "user-1", "2026-03-10", now.Add(-time.Hour), nil, models.SessionActive, "", "", nil, now.Add(-time.Hour)))

	if _, err := svc.CheckIn("user-1", ""); err != ErrAlreadyActive {
		t.Fatalf("CheckIn error = %v, want ErrAlreadyActive", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCheckInRaceUniqueViolation(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, mock := newTestService(t, now)

	mock.ExpectQuery(`SELECT (.+) FROM attendance_sessions`).
		WithArgs("user-1", "2026-03-10").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	mock.ExpectQuery(`INSERT INTO attendance_sessions`).
		WithArgs("user-1", "2026-03-10", now, "").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "one_active_session_per_day"})

	if _, err := svc.CheckIn("user-1", ""); err != ErrAlreadyActive {
		t.Fatalf("CheckIn error = %v, want ErrAlreadyActive", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCheckOut(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	now := checkIn.Add(90*time.Minute + 30*time.Second)
	svc, mock := newTestService(t, now)

	mock.ExpectQuery(`SELECT (.+) FROM attendance_sessions`).
		WithArgs("user-1", "2026-03-10").
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("sess-1", "user-1", "2026-03-10", checkIn, nil, models.SessionActive, "", "", nil, checkIn))

	mock.ExpectExec(`UPDATE attendance_sessions`).
		WithArgs(now, 90, "leaving", "sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	session, err := svc.CheckOut("user-1", "leaving")
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if session.DurationMinutes == nil || *session.DurationMinutes != 90 {
		t.Errorf("duration = %v, want 90", session.DurationMinutes)
	}
	if session.Status != models.SessionCompleted {
		t.Errorf("status = %q, want %q", session.Status, models.SessionCompleted)
	}
	if session.CheckOut == nil || !session.CheckOut.Equal(now) {
		t.Errorf("check_out = %v, want %v", session.CheckOut, now)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCheckOutNoActiveSession(t *testing.T) {
	now := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	svc, mock := newTestService(t, now)

	mock.ExpectQuery(`SELECT (.+) FROM attendance_sessions`).
		WithArgs("user-1", "2026-03-10").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	if _, err := svc.CheckOut("user-1", ""); err != ErrNoActiveSession {
		t.Fatalf("CheckOut error = %v, want ErrNoActiveSession", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDailyStatusMixesStoredAndLiveDurations(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	svc, mock := newTestService(t, now)

	stored := 60
	liveStart := now.Add(-30 * time.Minute)

	mock.ExpectQuery(`SELECT (.+) FROM attendance_sessions`).
		WithArgs("user-1", "2026-03-10").
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("sess-1", "user-1", "2026-03-10", checkIn, checkIn.Add(time.Hour), models.SessionCompleted, "", "", stored, checkIn).
			AddRow("sess-2", "user-1", "2026-03-10", liveStart, nil, models.SessionActive, "", "", nil, liveStart))

	daily, err := svc.DailyStatus("user-1", "2026-03-10")
	if err != nil {
		t.Fatalf("DailyStatus: %v", err)
	}
	if daily.Status != "active" {
		t.Errorf("status = %q, want active", daily.Status)
	}
	if daily.TotalMinutes != 90 {
		t.Errorf("total = %d, want 90", daily.TotalMinutes)
	}
	if daily.TotalFormatted != "1h 30m" {
		t.Errorf("formatted = %q, want 1h 30m", daily.TotalFormatted)
	}
	if len(daily.Sessions) != 2 {
		t.Errorf("sessions = %d, want 2", len(daily.Sessions))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDailyStatusInactiveWhenNoSessions(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	svc, mock := newTestService(t, now)

	mock.ExpectQuery(`SELECT (.+) FROM attendance_sessions`).
		WithArgs("user-1", "2026-03-10").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	daily, err := svc.DailyStatus("user-1", "")
	if err != nil {
		t.Fatalf("DailyStatus: %v", err)
	}
	if daily.Status != "inactive" {
		t.Errorf("status = %q, want inactive", daily.Status)
	}
	if daily.TotalMinutes != 0 {
		t.Errorf("total = %d, want 0", daily.TotalMinutes)
	}
	if daily.Date != "2026-03-10" {
		t.Errorf("date = %q, want today's date", daily.Date)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestElapsedMinutesFloors(t *testing.T) {
	from := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	if got := elapsedMinutes(from, from.Add(59*time.Second)); got != 0 {
		t.Errorf("elapsedMinutes(59s) = %d, want 0", got)
	}
	if got := elapsedMinutes(from, from.Add(90*time.Minute+59*time.Second)); got != 90 {
		t.Errorf("elapsedMinutes(90m59s) = %d, want 90", got)
	}
	if got := elapsedMinutes(from, from.Add(-30*time.Second)); got != -1 {
		t.Errorf("elapsedMinutes(-30s) = %d, want -1", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{90, "1h 30m"},
		{605, "10h 5m"},
		{-15, "-15m"},
		{-90, "-1h 30m"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
