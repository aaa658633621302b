package database

import (
	"database/sql"
	"fmt"
	"strings"

	"staff-portal/app/models"
)

// HolidayFilters narrows the holiday listing. Branch is the effective scope
// resolved from the caller's claims (nil = unrestricted); rows with a NULL
// branch are company-wide and always visible.
type HolidayFilters struct {
	Branch *string
	From   string // YYYY-MM-DD; only holidays on or after this date
}

func GetHolidays(db *sql.DB, filters HolidayFilters) ([]*models.Holiday, error) {
	query := `SELECT id, name, day, branch, created_at FROM holidays WHERE 1=1`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Branch != nil {
		conditions = append(conditions, fmt.Sprintf("(branch IS NULL OR branch = $%d)", argIndex))
		args = append(args, *filters.Branch)
		argIndex++
	}

	if filters.From != "" {
		conditions = append(conditions, fmt.Sprintf("day >= $%d", argIndex))
		args = append(args, filters.From)
		argIndex++
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY day"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := []*models.Holiday{}
	for rows.Next() {
		holiday := &models.Holiday{}
		err := rows.Scan(&holiday.ID, &holiday.Name, &holiday.Day, &holiday.Branch, &holiday.CreatedAt)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}

	return holidays, rows.Err()
}

func CreateHoliday(db *sql.DB, holiday *models.Holiday) error {
	query := `INSERT INTO holidays (name, day, branch, created_at)
			  VALUES ($1, $2, $3, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, holiday.Name, holiday.Day, holiday.Branch).Scan(
		&holiday.ID, &holiday.CreatedAt,
	)
}

func DeleteHoliday(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM holidays WHERE id = $1`, id)
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
