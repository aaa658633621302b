package models

import "time"

// AttendanceSession represents one continuous presence interval for a user on
// a calendar day. At most one active session may exist per (user, day); the
// partial unique index in migrations enforces this.
type AttendanceSession struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Day             string     `json:"date"` // YYYY-MM-DD, server-local
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        *time.Time `json:"check_out,omitempty"`
	Status          string     `json:"status"` // active, completed
	CheckInRemarks  string     `json:"check_in_remarks,omitempty"`
	CheckOutRemarks string     `json:"check_out_remarks,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`

	// Populated on elevated listings
	FirstName    string  `json:"first_name,omitempty"`
	LastName     string  `json:"last_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Branch       *string `json:"branch,omitempty"`
}

// DailyAttendance is the read-time aggregation of a user's sessions for one
// day. TotalMinutes includes the live elapsed time of an open session, so it
// changes between calls while one is active.
type DailyAttendance struct {
	Date           string               `json:"date"`
	Status         string               `json:"status"` // active or inactive
	Sessions       []*AttendanceSession `json:"sessions"`
	TotalMinutes   int                  `json:"total_minutes"`
	TotalFormatted string               `json:"total_formatted"`
}
