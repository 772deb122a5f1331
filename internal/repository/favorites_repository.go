package repository

import (
	"database/sql"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/lib/pq"
)

type FavoritesRepository struct {
	db *sql.DB
}

func NewFavoritesRepository(db *sql.DB) *FavoritesRepository {
	return &FavoritesRepository{db: db}
}

func (r *FavoritesRepository) GetByUser(userID string) (*model.Favorites, error) {
	var f model.Favorites
	err := r.db.QueryRow(`
		SELECT id, user_id, article_ids FROM favorites WHERE user_id = $1
	`, userID).Scan(&f.ID, &f.UserID, pq.Array(&f.ArticleIDs))

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &f, nil
}

// Upsert writes the full favorites set, creating the record on first use.
// The conflict target makes lazy creation race-free.
func (r *FavoritesRepository) Upsert(f *model.Favorites) error {
	_, err := r.db.Exec(`
		INSERT INTO favorites(id, user_id, article_ids)
		VALUES($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET article_ids = EXCLUDED.article_ids
	`, f.ID, f.UserID, pq.Array(f.ArticleIDs))
	return err
}

// WithArticle returns every favorites record containing the article.
func (r *FavoritesRepository) WithArticle(articleID string) ([]model.Favorites, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, article_ids FROM favorites WHERE $1 = ANY(article_ids)
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []model.Favorites
	for rows.Next() {
		var f model.Favorites
		if err := rows.Scan(&f.ID, &f.UserID, pq.Array(&f.ArticleIDs)); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return favorites, nil
}
