package model

import "time"

const (
	StatusReview    = "Review"
	StatusPublished = "Published"
)

// Order keys accepted by article list queries. Anything else sorts
// newest-first.
const (
	OrderByCreatedDateAsc = "byCreatedDateAsc"
	OrderTopRated         = "topRated"
)

type Article struct {
	ID           string
	Title        string
	Sport        string
	Description  string
	Image        string
	Tags         []string
	LikeCount    int
	LikedUserIDs []string
	Status       string
	Author       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ArticleQuery describes one paged article lookup. Filters combine with AND;
// nil IDs means "no id-set constraint" while an empty non-nil set means the
// caller already knows the result is empty and must not reach the store.
type ArticleQuery struct {
	Status         string
	Author         string
	Authors        []string
	Sport          string
	TitleSubstring string
	TagSubstring   string
	IDs            []string
	OrderBy        string
	PageNumber     int
	PageSize       int
}

// HasTag reports whether the article currently carries the tag.
func (a *Article) HasTag(name string) bool {
	for _, t := range a.Tags {
		if t == name {
			return true
		}
	}
	return false
}

// LikedBy reports whether the user already likes the article.
func (a *Article) LikedBy(userID string) bool {
	for _, id := range a.LikedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
