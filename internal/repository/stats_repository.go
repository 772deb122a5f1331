package repository

import (
	"database/sql"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/google/uuid"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Get(authorID string) (*model.AuthorStatistics, error) {
	var s model.AuthorStatistics
	err := r.db.QueryRow(`
		SELECT id, author_id, article_count
		FROM author_statistics
		WHERE author_id = $1
	`, authorID).Scan(&s.ID, &s.AuthorID, &s.ArticleCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &s, nil
}

// EnsureExists creates a zero-count record unless one is already there. The
// conditional insert avoids the read-then-create race on first use.
func (r *StatsRepository) EnsureExists(authorID string) error {
	_, err := r.db.Exec(`
		INSERT INTO author_statistics(id, author_id, article_count)
		VALUES($1, $2, 0)
		ON CONFLICT (author_id) DO NOTHING
	`, uuid.NewString(), authorID)
	return err
}

// Adjust shifts the published-article count. A missing record makes this a
// no-op; callers that need the record call EnsureExists first.
func (r *StatsRepository) Adjust(authorID string, delta int) error {
	_, err := r.db.Exec(`
		UPDATE author_statistics SET article_count = article_count + $2 WHERE author_id = $1
	`, authorID, delta)
	return err
}

// TopAuthors pages authors with at least one published article, highest count
// first. Page numbers are 1-based.
func (r *StatsRepository) TopAuthors(pageNumber, pageSize int) ([]model.AuthorStatistics, error) {
	rows, err := r.db.Query(`
		SELECT id, author_id, article_count
		FROM author_statistics
		WHERE article_count > 0
		ORDER BY article_count DESC, author_id ASC
		LIMIT $1 OFFSET $2
	`, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.AuthorStatistics
	for rows.Next() {
		var s model.AuthorStatistics
		if err := rows.Scan(&s.ID, &s.AuthorID, &s.ArticleCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
