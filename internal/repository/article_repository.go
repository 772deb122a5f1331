package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/lib/pq"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

const articleColumns = `id, title, sport, description, image, tags, like_count, liked_user_ids, status, author, created_at, updated_at`

func scanArticle(row interface{ Scan(...any) error }) (*model.Article, error) {
	var a model.Article
	err := row.Scan(&a.ID, &a.Title, &a.Sport, &a.Description, &a.Image,
		pq.Array(&a.Tags), &a.LikeCount, pq.Array(&a.LikedUserIDs),
		&a.Status, &a.Author, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepository) GetByID(id string) (*model.Article, error) {
	a, err := scanArticle(r.db.QueryRow(`
		SELECT `+articleColumns+` FROM articles WHERE id = $1
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *ArticleRepository) GetByTitle(title string) (*model.Article, error) {
	a, err := scanArticle(r.db.QueryRow(`
		SELECT `+articleColumns+` FROM articles WHERE title = $1
	`, title))

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *ArticleRepository) Create(a *model.Article) error {
	_, err := r.db.Exec(`
		INSERT INTO articles(id, title, sport, description, image, tags, like_count, liked_user_ids, status, author, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, a.ID, a.Title, a.Sport, a.Description, a.Image, pq.Array(a.Tags),
		a.LikeCount, pq.Array(a.LikedUserIDs), a.Status, a.Author, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *ArticleRepository) Update(a *model.Article) error {
	_, err := r.db.Exec(`
		UPDATE articles
		SET title = $2, sport = $3, description = $4, image = $5, tags = $6,
			like_count = $7, liked_user_ids = $8, status = $9, updated_at = $10
		WHERE id = $1
	`, a.ID, a.Title, a.Sport, a.Description, a.Image, pq.Array(a.Tags),
		a.LikeCount, pq.Array(a.LikedUserIDs), a.Status, a.UpdatedAt)
	return err
}

func (r *ArticleRepository) Delete(id string) error {
	_, err := r.db.Exec(`
		DELETE FROM articles WHERE id = $1
	`, id)
	return err
}

// buildArticleFilter renders the WHERE clause for a query. Filters are ANDed;
// the explicit id-set intersection is applied last, matching the order the
// query engine evaluates them in.
func buildArticleFilter(q model.ArticleQuery) (string, []any) {
	var clauses []string
	var args []any

	add := func(clause string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if q.Status != "" {
		add("status = $%d", q.Status)
	}
	if q.Author != "" {
		add("author = $%d", q.Author)
	}
	if q.Authors != nil {
		add("author = ANY($%d)", pq.Array(q.Authors))
	}
	if q.Sport != "" {
		add("sport = $%d", q.Sport)
	}
	if q.TitleSubstring != "" {
		add("title ILIKE '%%' || $%d || '%%'", q.TitleSubstring)
	}
	if q.TagSubstring != "" {
		add("EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE '%%' || $%d || '%%')", q.TagSubstring)
	}
	if q.IDs != nil {
		add("id = ANY($%d)", pq.Array(q.IDs))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func orderClause(orderBy string) string {
	switch orderBy {
	case model.OrderByCreatedDateAsc:
		return " ORDER BY created_at ASC"
	case model.OrderTopRated:
		return " ORDER BY like_count DESC, created_at DESC"
	default:
		return " ORDER BY created_at DESC"
	}
}

// List runs one paged article query. Page numbers are 1-based.
func (r *ArticleRepository) List(q model.ArticleQuery) ([]model.Article, error) {
	where, args := buildArticleFilter(q)

	query := `SELECT ` + articleColumns + ` FROM articles` + where + orderClause(q.OrderBy)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.PageSize, (q.PageNumber-1)*q.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) Count(q model.ArticleQuery) (int, error) {
	where, args := buildArticleFilter(q)

	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM articles`+where, args...).Scan(&total)
	return total, err
}

// LikedArticleIDs returns the ids of every article the user has liked.
func (r *ArticleRepository) LikedArticleIDs(userID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT id FROM articles WHERE $1 = ANY(liked_user_ids)
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
