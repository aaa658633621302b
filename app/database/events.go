package database

import (
	"database/sql"

	"staff-portal/app/models"
)

func GetEvents(db *sql.DB) ([]*models.Event, error) {
	query := `SELECT id, title, description, event_date, location, created_by, created_at, updated_at
			  FROM events
			  ORDER BY event_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.EventDate,
			&event.Location, &event.CreatedBy, &event.CreatedAt, &event.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func GetEventByID(db *sql.DB, id string) (*models.Event, error) {
	query := `SELECT id, title, description, event_date, location, created_by, created_at, updated_at
			  FROM events WHERE id = $1`

	event := &models.Event{}
	err := db.QueryRow(query, id).Scan(
		&event.ID, &event.Title, &event.Description, &event.EventDate,
		&event.Location, &event.CreatedBy, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func CreateEvent(db *sql.DB, event *models.Event) error {
	query := `INSERT INTO events (title, description, event_date, location, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		event.Title, event.Description, event.EventDate, event.Location, event.CreatedBy,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func UpdateEvent(db *sql.DB, event *models.Event) error {
	query := `UPDATE events
			  SET title = $1, description = $2, event_date = $3, location = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := db.Exec(query,
		event.Title, event.Description, event.EventDate, event.Location, event.ID,
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

func DeleteEvent(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM events WHERE id = $1`, id)
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

func GetEventImages(db *sql.DB, eventID string) ([]*models.EventImage, error) {
	query := `SELECT id, event_id, image_url, created_at
			  FROM event_images WHERE event_id = $1
			  ORDER BY created_at`

	rows, err := db.Query(query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []*models.EventImage{}
	for rows.Next() {
		image := &models.EventImage{}
		if err := rows.Scan(&image.ID, &image.EventID, &image.ImageURL, &image.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, image)
	}

	return images, rows.Err()
}

func CreateEventImage(db *sql.DB, image *models.EventImage) error {
	query := `INSERT INTO event_images (event_id, image_url, created_at)
			  VALUES ($1, $2, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, image.EventID, image.ImageURL).Scan(&image.ID, &image.CreatedAt)
}
