package database

import (
	"database/sql"

	"staff-portal/app/models"
)

func GetAnnouncements(db *sql.DB, activeOnly bool) ([]*models.Announcement, error) {
	query := `SELECT a.id, a.title, a.body, a.created_by, a.is_active, a.created_at, a.updated_at,
			  CONCAT(u.first_name, ' ', u.last_name) as author_name
			  FROM announcements a
			  JOIN users u ON a.created_by = u.id`
	if activeOnly {
		query += ` WHERE a.is_active = true`
	}
	query += ` ORDER BY a.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := []*models.Announcement{}
	for rows.Next() {
		a := &models.Announcement{}
		err := rows.Scan(
			&a.ID, &a.Title, &a.Body, &a.CreatedBy, &a.IsActive,
			&a.CreatedAt, &a.UpdatedAt, &a.AuthorName,
		)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

func CreateAnnouncement(db *sql.DB, a *models.Announcement) error {
	query := `INSERT INTO announcements (title, body, created_by, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	a.IsActive = true
	return db.QueryRow(query, a.Title, a.Body, a.CreatedBy).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt,
	)
}

func UpdateAnnouncement(db *sql.DB, a *models.Announcement) error {
	query := `UPDATE announcements
			  SET title = $1, body = $2, is_active = $3, updated_at = NOW()
			  WHERE id = $4`

	result, err := db.Exec(query, a.Title, a.Body, a.IsActive, a.ID)
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

func DeleteAnnouncement(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM announcements WHERE id = $1`, id)
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
