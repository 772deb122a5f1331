package service

import "github.com/callmedory/sport-project/internal/model"

// Store interfaces are declared here, on the consumer side; the repository
// package satisfies them against Postgres and tests satisfy them in memory.

type ArticleStore interface {
	GetByID(id string) (*model.Article, error)
	GetByTitle(title string) (*model.Article, error)
	Create(a *model.Article) error
	Update(a *model.Article) error
	Delete(id string) error
	List(q model.ArticleQuery) ([]model.Article, error)
	Count(q model.ArticleQuery) (int, error)
	LikedArticleIDs(userID string) ([]string, error)
}

type TagStore interface {
	GetByName(name string) (*model.Tag, error)
	GetByNames(names []string) ([]model.Tag, error)
	GetByArticle(articleID string) ([]model.Tag, error)
	TopTags(pageNumber, pageSize int) ([]model.Tag, error)
	Create(t *model.Tag) error
	Update(t *model.Tag) error
	Delete(id string) error
}

type StatsStore interface {
	Get(authorID string) (*model.AuthorStatistics, error)
	EnsureExists(authorID string) error
	Adjust(authorID string, delta int) error
	TopAuthors(pageNumber, pageSize int) ([]model.AuthorStatistics, error)
}

type FavoritesStore interface {
	GetByUser(userID string) (*model.Favorites, error)
	Upsert(f *model.Favorites) error
	WithArticle(articleID string) ([]model.Favorites, error)
}

type CommentStore interface {
	GetByID(id string) (*model.Comment, error)
	Create(c *model.Comment) error
	Delete(id string) error
	DeleteByArticle(articleID string) error
	ListByArticle(articleID string, pageNumber, pageSize int) ([]model.Comment, error)
	CountByArticle(articleID string) (int, error)
}

type UserStore interface {
	GetByID(id string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	Create(u *model.User) error
	Update(u *model.User) error
	List(pageNumber, pageSize int) ([]model.User, error)
	Count() (int, error)
	SearchByName(substring string) ([]model.User, error)
}
