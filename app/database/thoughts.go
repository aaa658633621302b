package database

import (
	"database/sql"
	"fmt"
	"strings"

	"staff-portal/app/models"
)

// ThoughtFilters narrows the thought listing. Branch is the effective scope
// from the caller's claims (nil = unrestricted, superadmin only).
type ThoughtFilters struct {
	Branch     *string
	ActiveOnly bool
}

func GetThoughts(db *sql.DB, filters ThoughtFilters) ([]*models.Thought, error) {
	query := `SELECT id, quote, author, branch, is_active, created_at FROM thoughts WHERE 1=1`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Branch != nil {
		conditions = append(conditions, fmt.Sprintf("branch = $%d", argIndex))
		args = append(args, *filters.Branch)
		argIndex++
	}

	if filters.ActiveOnly {
		conditions = append(conditions, "is_active = true")
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	thoughts := []*models.Thought{}
	for rows.Next() {
		thought := &models.Thought{}
		err := rows.Scan(
			&thought.ID, &thought.Quote, &thought.Author, &thought.Branch,
			&thought.IsActive, &thought.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		thoughts = append(thoughts, thought)
	}

	return thoughts, rows.Err()
}

func CreateThought(db *sql.DB, thought *models.Thought) error {
	query := `INSERT INTO thoughts (quote, author, branch, is_active, created_at)
			  VALUES ($1, $2, $3, true, NOW())
			  RETURNING id, created_at`

	thought.IsActive = true
	return db.QueryRow(query, thought.Quote, thought.Author, thought.Branch).Scan(
		&thought.ID, &thought.CreatedAt,
	)
}

func UpdateThought(db *sql.DB, thought *models.Thought) error {
	query := `UPDATE thoughts
			  SET quote = $1, author = $2, is_active = $3
			  WHERE id = $4`

	result, err := db.Exec(query, thought.Quote, thought.Author, thought.IsActive, thought.ID)
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

func GetThoughtByID(db *sql.DB, id string) (*models.Thought, error) {
	query := `SELECT id, quote, author, branch, is_active, created_at FROM thoughts WHERE id = $1`

	thought := &models.Thought{}
	err := db.QueryRow(query, id).Scan(
		&thought.ID, &thought.Quote, &thought.Author, &thought.Branch,
		&thought.IsActive, &thought.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return thought, nil
}

func DeleteThought(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM thoughts WHERE id = $1`, id)
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
