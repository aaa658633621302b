package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"staff-portal/app/database"
	"staff-portal/app/models"
)

var (
	ErrAlreadyActive   = errors.New("an active session already exists for today")
	ErrNoActiveSession = errors.New("no active session to check out of")
)

const dayFormat = "2006-01-02"

// AttendanceService owns the check-in/check-out session lifecycle.
//
// States per (user, day): no session -> active -> completed. A new check-in
// after checkout starts a fresh cycle; multiple completed sessions per day
// are allowed and daily totals sum across them.
type AttendanceService struct {
	DB  *sql.DB
	Now func() time.Time
}

func NewAttendanceService(db *sql.DB) *AttendanceService {
	return &AttendanceService{DB: db, Now: time.Now}
}

// CheckIn opens a new session with a server-assigned timestamp. Client
// timestamps are never accepted. Returns ErrAlreadyActive if the user has an
// open session today; the database's partial unique index makes this hold
// even under concurrent check-ins that all pass the pre-check.
func (s *AttendanceService) CheckIn(userID, remarks string) (*models.AttendanceSession, error) {
	now := s.Now()
	day := now.Format(dayFormat)

	existing, err := database.GetActiveSession(s.DB, userID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyActive
	}

	session := &models.AttendanceSession{
		UserID:         userID,
		Day:            day,
		CheckIn:        now,
		Status:         models.SessionActive,
		CheckInRemarks: remarks,
	}

	if err := database.CreateAttendanceSession(s.DB, session); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrAlreadyActive
		}
		return nil, err
	}

	return session, nil
}

// CheckOut closes today's active session, computing the duration in whole
// minutes (floored). A negative duration means the server clock moved
// backwards; it is stored as-is and logged for investigation, never clamped.
func (s *AttendanceService) CheckOut(userID, remarks string) (*models.AttendanceSession, error) {
	now := s.Now()
	day := now.Format(dayFormat)

	session, err := database.GetActiveSession(s.DB, userID, day)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}

	minutes := elapsedMinutes(session.CheckIn, now)
	if minutes < 0 {
		log.Printf("attendance: negative duration %dm for session %s (check_in=%s check_out=%s); storing unmodified",
			minutes, session.ID, session.CheckIn.Format(time.RFC3339), now.Format(time.RFC3339))
	}

	if err := database.CompleteSession(s.DB, session.ID, now, minutes, remarks); err != nil {
		if err == sql.ErrNoRows {
			// Lost a race with another checkout for the same session.
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	session.CheckOut = &now
	session.Status = models.SessionCompleted
	session.CheckOutRemarks = remarks
	session.DurationMinutes = &minutes
	return session, nil
}

// DailyStatus aggregates a user's sessions for one day. Completed sessions
// contribute their stored duration; an active session contributes its
// elapsed-so-far minutes computed at read time, so the total moves between
// calls while a session is open.
func (s *AttendanceService) DailyStatus(userID, day string) (*models.DailyAttendance, error) {
	if day == "" {
		day = s.Now().Format(dayFormat)
	}

	sessions, err := database.GetSessionsByUserAndDay(s.DB, userID, day)
	if err != nil {
		return nil, err
	}

	status := "inactive"
	total := 0
	for _, session := range sessions {
		if session.Status == models.SessionActive {
			status = "active"
			total += elapsedMinutes(session.CheckIn, s.Now())
			continue
		}
		if session.DurationMinutes != nil {
			total += *session.DurationMinutes
		}
	}

	return &models.DailyAttendance{
		Date:           day,
		Status:         status,
		Sessions:       sessions,
		TotalMinutes:   total,
		TotalFormatted: FormatMinutes(total),
	}, nil
}

// ListAll returns sessions across users for the elevated views. The branch
// in filters must already be resolved through the caller's authorization.
func (s *AttendanceService) ListAll(filters database.SessionFilters) ([]*models.AttendanceSession, error) {
	return database.GetAttendanceSessions(s.DB, filters)
}

func elapsedMinutes(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Minutes()))
}

// FormatMinutes renders a minute count as "1h 30m" (or "45m" under an hour).
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	if minutes < 60 {
		return fmt.Sprintf("%s%dm", sign, minutes)
	}
	return fmt.Sprintf("%s%dh %dm", sign, minutes/60, minutes%60)
}
