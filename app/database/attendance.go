package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"staff-portal/app/models"
)

// CreateAttendanceSession inserts a new active session. The partial unique
// index one_active_session_per_day rejects a second active session for the
// same (user, day); callers should translate that unique violation into the
// already-checked-in conflict.
func CreateAttendanceSession(db *sql.DB, session *models.AttendanceSession) error {
	query := `INSERT INTO attendance_sessions (user_id, day, check_in, status, check_in_remarks, created_at)
			  VALUES ($1, $2, $3, 'active', $4, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query,
		session.UserID, session.Day, session.CheckIn, session.CheckInRemarks,
	).Scan(&session.ID, &session.CreatedAt)
}

// GetActiveSession returns the open session for (user, day), or nil if the
// user is not checked in.
func GetActiveSession(db *sql.DB, userID string, day string) (*models.AttendanceSession, error) {
	query := `SELECT id, user_id, day, check_in, check_out, status, check_in_remarks, check_out_remarks, duration_minutes, created_at
			  FROM attendance_sessions
			  WHERE user_id = $1 AND day = $2 AND status = 'active'`

	session := &models.AttendanceSession{}
	err := db.QueryRow(query, userID, day).Scan(
		&session.ID, &session.UserID, &session.Day, &session.CheckIn,
		&session.CheckOut, &session.Status, &session.CheckInRemarks,
		&session.CheckOutRemarks, &session.DurationMinutes, &session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// CompleteSession closes an active session, storing the checkout time and
// the computed duration, and transitions it to completed.
func CompleteSession(db *sql.DB, sessionID string, checkOut time.Time, durationMinutes int, remarks string) error {
	query := `UPDATE attendance_sessions
			  SET check_out = $1, duration_minutes = $2, check_out_remarks = $3, status = 'completed'
			  WHERE id = $4 AND status = 'active'`

	result, err := db.Exec(query, checkOut, durationMinutes, remarks, sessionID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetSessionsByUserAndDay returns all of a user's sessions for one day,
// oldest first.
func GetSessionsByUserAndDay(db *sql.DB, userID string, day string) ([]*models.AttendanceSession, error) {
	query := `SELECT id, user_id, day, check_in, check_out, status, check_in_remarks, check_out_remarks, duration_minutes, created_at
			  FROM attendance_sessions
			  WHERE user_id = $1 AND day = $2
			  ORDER BY check_in`

	rows, err := db.Query(query, userID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []*models.AttendanceSession{}
	for rows.Next() {
		session := &models.AttendanceSession{}
		err := rows.Scan(
			&session.ID, &session.UserID, &session.Day, &session.CheckIn,
			&session.CheckOut, &session.Status, &session.CheckInRemarks,
			&session.CheckOutRemarks, &session.DurationMinutes, &session.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// SessionFilters represents filtering options for elevated session listings.
// Branch is the effective branch scope already resolved by the caller's
// authorization (nil means unrestricted).
type SessionFilters struct {
	Branch     *string
	Date       string
	EmployeeID string
	NameSearch string
	Limit      int
	Offset     int
}

// GetAttendanceSessions lists sessions across users, joined with owner
// details, for the elevated attendance views.
func GetAttendanceSessions(db *sql.DB, filters SessionFilters) ([]*models.AttendanceSession, error) {
	query := `SELECT s.id, s.user_id, s.day, s.check_in, s.check_out, s.status,
			  s.check_in_remarks, s.check_out_remarks, s.duration_minutes, s.created_at,
			  u.first_name, u.last_name, u.employee_code, u.branch
			  FROM attendance_sessions s
			  JOIN users u ON s.user_id = u.id
			  WHERE 1=1`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Branch != nil {
		conditions = append(conditions, fmt.Sprintf("u.branch = $%d", argIndex))
		args = append(args, *filters.Branch)
		argIndex++
	}

	if filters.Date != "" {
		conditions = append(conditions, fmt.Sprintf("s.day = $%d", argIndex))
		args = append(args, filters.Date)
		argIndex++
	}

	if filters.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("(s.user_id::text = $%d OR u.employee_code = $%d)", argIndex, argIndex))
		args = append(args, filters.EmployeeID)
		argIndex++
	}

	if filters.NameSearch != "" {
		searchPattern := "%" + strings.ToLower(filters.NameSearch) + "%"
		conditions = append(conditions, fmt.Sprintf(`(
			LOWER(u.first_name) LIKE $%d
			OR LOWER(u.last_name) LIKE $%d
		)`, argIndex, argIndex))
		args = append(args, searchPattern)
		argIndex++
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.day DESC, s.check_in DESC"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filters.Limit)
		argIndex++
		if filters.Offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", argIndex)
			args = append(args, filters.Offset)
		}
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []*models.AttendanceSession{}
	for rows.Next() {
		session := &models.AttendanceSession{}
		err := rows.Scan(
			&session.ID, &session.UserID, &session.Day, &session.CheckIn,
			&session.CheckOut, &session.Status, &session.CheckInRemarks,
			&session.CheckOutRemarks, &session.DurationMinutes, &session.CreatedAt,
			&session.FirstName, &session.LastName, &session.EmployeeCode, &session.Branch,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}
