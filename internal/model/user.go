package model

import "time"

const (
	RoleReader     = "Reader"
	RoleAuthor     = "Author"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

type User struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Password      string
	UserRole      string
	EmailVerified bool
	CreatedAt     time.Time
}

// UserInfo is the public subset of User attached to articles and comments.
type UserInfo struct {
	ID        string
	FirstName string
	LastName  string
}

func (u *User) Info() UserInfo {
	return UserInfo{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}

// AuthorStatistics counts an author's currently published articles. Created
// lazily on first article creation, never deleted.
type AuthorStatistics struct {
	ID           string
	AuthorID     string
	ArticleCount int
}
