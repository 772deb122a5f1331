package model

import "time"

type Comment struct {
	ID        string
	ArticleID string
	Author    string
	Content   string
	CreatedAt time.Time
}

// Favorites is one user's set of favorited article ids, created lazily on the
// first add.
type Favorites struct {
	ID         string
	UserID     string
	ArticleIDs []string
}

// Contains reports whether the article is in the favorites set.
func (f *Favorites) Contains(articleID string) bool {
	for _, id := range f.ArticleIDs {
		if id == articleID {
			return true
		}
	}
	return false
}

// Notification is an in-app notice materialized by the notifier worker.
type Notification struct {
	ID        string
	UserID    string
	Subject   string
	Body      string
	CreatedAt time.Time
}
