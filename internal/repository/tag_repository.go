package repository

import (
	"database/sql"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/lib/pq"
)

type TagRepository struct {
	db *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) GetByName(name string) (*model.Tag, error) {
	var t model.Tag
	err := r.db.QueryRow(`
		SELECT id, tag_name, article_ids, published_count
		FROM tags
		WHERE tag_name = $1
	`, name).Scan(&t.ID, &t.TagName, pq.Array(&t.ArticleIDs), &t.PublishedCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *TagRepository) GetByNames(names []string) ([]model.Tag, error) {
	rows, err := r.db.Query(`
		SELECT id, tag_name, article_ids, published_count
		FROM tags
		WHERE tag_name = ANY($1)
	`, pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTags(rows)
}

// GetByArticle returns every tag whose article set contains the article.
func (r *TagRepository) GetByArticle(articleID string) ([]model.Tag, error) {
	rows, err := r.db.Query(`
		SELECT id, tag_name, article_ids, published_count
		FROM tags
		WHERE $1 = ANY(article_ids)
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTags(rows)
}

// TopTags pages tags with at least one published article, most published
// first. Page numbers are 1-based.
func (r *TagRepository) TopTags(pageNumber, pageSize int) ([]model.Tag, error) {
	rows, err := r.db.Query(`
		SELECT id, tag_name, article_ids, published_count
		FROM tags
		WHERE published_count > 0
		ORDER BY published_count DESC, tag_name ASC
		LIMIT $1 OFFSET $2
	`, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTags(rows)
}

func (r *TagRepository) Create(t *model.Tag) error {
	_, err := r.db.Exec(`
		INSERT INTO tags(id, tag_name, article_ids, published_count)
		VALUES($1, $2, $3, $4)
	`, t.ID, t.TagName, pq.Array(t.ArticleIDs), t.PublishedCount)
	return err
}

func (r *TagRepository) Update(t *model.Tag) error {
	_, err := r.db.Exec(`
		UPDATE tags SET article_ids = $2, published_count = $3 WHERE id = $1
	`, t.ID, pq.Array(t.ArticleIDs), t.PublishedCount)
	return err
}

func (r *TagRepository) Delete(id string) error {
	_, err := r.db.Exec(`
		DELETE FROM tags WHERE id = $1
	`, id)
	return err
}

func collectTags(rows *sql.Rows) ([]model.Tag, error) {
	var tags []model.Tag
	for rows.Next() {
		var t model.Tag
		err := rows.Scan(&t.ID, &t.TagName, pq.Array(&t.ArticleIDs), &t.PublishedCount)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}
