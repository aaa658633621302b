package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"staff-portal/app/models"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

const userColumns = `id, email, password, employee_code, first_name, last_name, phone,
		  role, branch, is_active, last_login_at, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.EmployeeCode,
		&user.FirstName, &user.LastName, &user.Phone, &user.Role,
		&user.Branch, &user.IsActive, &user.LastLoginAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(db.QueryRow(query, email))
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(db.QueryRow(query, userID))
}

// CreateUser inserts a new user; the password must already be hashed.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, employee_code, first_name, last_name, phone, role, branch, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		user.Email, user.Password, user.EmployeeCode, user.FirstName,
		user.LastName, user.Phone, user.Role, user.Branch,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	user.IsActive = true
	return nil
}

func UpdateLastLogin(db *sql.DB, userID string, at time.Time) error {
	query := `UPDATE users SET last_login_at = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, at, userID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// SetUserStatus toggles the soft active flag; users are never hard-deleted.
func SetUserStatus(db *sql.DB, userID string, active bool) error {
	query := `UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2`
	result, err := db.Exec(query, active, userID)
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

func SetUserRole(db *sql.DB, userID string, role string) error {
	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`
	result, err := db.Exec(query, role, userID)
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

// UserFilters represents filtering options for user listings.
type UserFilters struct {
	Branch *string // nil means unrestricted
	Role   string
	Search string
}

func ListUsers(db *sql.DB, filters UserFilters) ([]*models.User, error) {
	query := `SELECT id, email, employee_code, first_name, last_name, phone, role, branch, is_active, last_login_at, created_at, updated_at
			  FROM users WHERE 1=1`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Branch != nil {
		conditions = append(conditions, fmt.Sprintf("branch = $%d", argIndex))
		args = append(args, *filters.Branch)
		argIndex++
	}

	if filters.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIndex))
		args = append(args, filters.Role)
		argIndex++
	}

	if filters.Search != "" {
		searchPattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(`(
			LOWER(first_name) LIKE $%d
			OR LOWER(last_name) LIKE $%d
			OR LOWER(email) LIKE $%d
		)`, argIndex, argIndex, argIndex))
		args = append(args, searchPattern)
		argIndex++
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY first_name, last_name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID, &user.Email, &user.EmployeeCode, &user.FirstName,
			&user.LastName, &user.Phone, &user.Role, &user.Branch,
			&user.IsActive, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
