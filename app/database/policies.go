package database

import (
	"database/sql"

	"staff-portal/app/models"
)

func GetPolicies(db *sql.DB, category string) ([]*models.Policy, error) {
	query := `SELECT id, title, category, body, document_url, created_at, updated_at
			  FROM policies`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY category, title`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	policies := []*models.Policy{}
	for rows.Next() {
		policy := &models.Policy{}
		err := rows.Scan(
			&policy.ID, &policy.Title, &policy.Category, &policy.Body,
			&policy.DocumentURL, &policy.CreatedAt, &policy.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}

	return policies, rows.Err()
}

func CreatePolicy(db *sql.DB, policy *models.Policy) error {
	query := `INSERT INTO policies (title, category, body, document_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		policy.Title, policy.Category, policy.Body, policy.DocumentURL,
	).Scan(&policy.ID, &policy.CreatedAt, &policy.UpdatedAt)
}

func UpdatePolicy(db *sql.DB, policy *models.Policy) error {
	query := `UPDATE policies
			  SET title = $1, category = $2, body = $3, document_url = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := db.Exec(query,
		policy.Title, policy.Category, policy.Body, policy.DocumentURL, policy.ID,
	)
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

func DeletePolicy(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM policies WHERE id = $1`, id)
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
