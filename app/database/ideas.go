package database

import (
	"database/sql"

	"staff-portal/app/models"
)

// GetIdeas lists ideas with like/comment counts; viewerID marks which ideas
// the caller has already liked.
func GetIdeas(db *sql.DB, viewerID string) ([]*models.Idea, error) {
	query := `SELECT i.id, i.user_id, i.title, i.body, i.created_at,
			  CONCAT(u.first_name, ' ', u.last_name) as author_name,
			  COALESCE(l.like_count, 0) as like_count,
			  COALESCE(c.comment_count, 0) as comment_count,
			  CASE WHEN ml.user_id IS NOT NULL THEN true ELSE false END as liked_by_me
			  FROM ideas i
			  JOIN users u ON i.user_id = u.id
			  LEFT JOIN (
				  SELECT idea_id, COUNT(*) as like_count
				  FROM idea_likes
				  GROUP BY idea_id
			  ) l ON i.id = l.idea_id
			  LEFT JOIN (
				  SELECT idea_id, COUNT(*) as comment_count
				  FROM idea_comments
				  GROUP BY idea_id
			  ) c ON i.id = c.idea_id
			  LEFT JOIN idea_likes ml ON i.id = ml.idea_id AND ml.user_id = $1
			  ORDER BY i.created_at DESC`

	rows, err := db.Query(query, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ideas := []*models.Idea{}
	for rows.Next() {
		idea := &models.Idea{}
		err := rows.Scan(
			&idea.ID, &idea.UserID, &idea.Title, &idea.Body, &idea.CreatedAt,
			&idea.AuthorName, &idea.LikeCount, &idea.CommentCount, &idea.LikedByMe,
		)
		if err != nil {
			return nil, err
		}
		ideas = append(ideas, idea)
	}

	return ideas, rows.Err()
}

func GetIdeaByID(db *sql.DB, id string) (*models.Idea, error) {
	query := `SELECT id, user_id, title, body, created_at FROM ideas WHERE id = $1`

	idea := &models.Idea{}
	err := db.QueryRow(query, id).Scan(
		&idea.ID, &idea.UserID, &idea.Title, &idea.Body, &idea.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return idea, nil
}

func CreateIdea(db *sql.DB, idea *models.Idea) error {
	query := `INSERT INTO ideas (user_id, title, body, created_at)
			  VALUES ($1, $2, $3, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, idea.UserID, idea.Title, idea.Body).Scan(
		&idea.ID, &idea.CreatedAt,
	)
}

func DeleteIdea(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM ideas WHERE id = $1`, id)
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

// ToggleIdeaLike likes the idea for the user, or removes an existing like.
// Returns true if the idea is liked after the call.
func ToggleIdeaLike(db *sql.DB, ideaID, userID string) (bool, error) {
	result, err := db.Exec(`DELETE FROM idea_likes WHERE idea_id = $1 AND user_id = $2`, ideaID, userID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rowsAffected > 0 {
		return false, nil
	}

	_, err = db.Exec(`INSERT INTO idea_likes (idea_id, user_id, created_at) VALUES ($1, $2, NOW())
					  ON CONFLICT (idea_id, user_id) DO NOTHING`, ideaID, userID)
	if err != nil {
		return false, err
	}
	return true, nil
}

func GetIdeaComments(db *sql.DB, ideaID string) ([]*models.IdeaComment, error) {
	query := `SELECT c.id, c.idea_id, c.user_id, c.body, c.created_at,
			  CONCAT(u.first_name, ' ', u.last_name) as author_name
			  FROM idea_comments c
			  JOIN users u ON c.user_id = u.id
			  WHERE c.idea_id = $1
			  ORDER BY c.created_at`

	rows, err := db.Query(query, ideaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*models.IdeaComment{}
	for rows.Next() {
		comment := &models.IdeaComment{}
		err := rows.Scan(
			&comment.ID, &comment.IdeaID, &comment.UserID, &comment.Body,
			&comment.CreatedAt, &comment.AuthorName,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

func CreateIdeaComment(db *sql.DB, comment *models.IdeaComment) error {
	query := `INSERT INTO idea_comments (idea_id, user_id, body, created_at)
			  VALUES ($1, $2, $3, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, comment.IdeaID, comment.UserID, comment.Body).Scan(
		&comment.ID, &comment.CreatedAt,
	)
}
