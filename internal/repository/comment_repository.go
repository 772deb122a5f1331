package repository

import (
	"database/sql"

	"github.com/callmedory/sport-project/internal/model"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) GetByID(id string) (*model.Comment, error) {
	var c model.Comment
	err := r.db.QueryRow(`
		SELECT id, article_id, author, content, created_at FROM comments WHERE id = $1
	`, id).Scan(&c.ID, &c.ArticleID, &c.Author, &c.Content, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *CommentRepository) Create(c *model.Comment) error {
	_, err := r.db.Exec(`
		INSERT INTO comments(id, article_id, author, content, created_at)
		VALUES($1, $2, $3, $4, $5)
	`, c.ID, c.ArticleID, c.Author, c.Content, c.CreatedAt)
	return err
}

func (r *CommentRepository) Delete(id string) error {
	_, err := r.db.Exec(`
		DELETE FROM comments WHERE id = $1
	`, id)
	return err
}

// DeleteByArticle removes every comment of the article. Safe to re-run: a
// second pass simply matches nothing.
func (r *CommentRepository) DeleteByArticle(articleID string) error {
	_, err := r.db.Exec(`
		DELETE FROM comments WHERE article_id = $1
	`, articleID)
	return err
}

// ListByArticle pages an article's comments newest-first. Page numbers are
// 1-based.
func (r *CommentRepository) ListByArticle(articleID string, pageNumber, pageSize int) ([]model.Comment, error) {
	rows, err := r.db.Query(`
		SELECT id, article_id, author, content, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, articleID, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *CommentRepository) CountByArticle(articleID string) (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM comments WHERE article_id = $1
	`, articleID).Scan(&total)
	return total, err
}
