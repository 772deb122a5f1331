package db

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id             TEXT PRIMARY KEY,
	first_name     TEXT NOT NULL,
	last_name      TEXT NOT NULL,
	email          TEXT NOT NULL UNIQUE,
	password       TEXT NOT NULL,
	user_role      TEXT NOT NULL,
	email_verified BOOLEAN NOT NULL DEFAULT FALSE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS articles (
	id             TEXT PRIMARY KEY,
	title          TEXT NOT NULL,
	sport          TEXT NOT NULL,
	description    TEXT NOT NULL,
	image          TEXT NOT NULL DEFAULT '',
	tags           TEXT[] NOT NULL DEFAULT '{}',
	like_count     INTEGER NOT NULL DEFAULT 0,
	liked_user_ids TEXT[] NOT NULL DEFAULT '{}',
	status         TEXT NOT NULL,
	author         TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS tags (
	id              TEXT PRIMARY KEY,
	tag_name        TEXT NOT NULL UNIQUE,
	article_ids     TEXT[] NOT NULL DEFAULT '{}',
	published_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS author_statistics (
	id            TEXT PRIMARY KEY,
	author_id     TEXT NOT NULL UNIQUE,
	article_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS favorites (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL UNIQUE,
	article_ids TEXT[] NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS comments (
	id         TEXT PRIMARY KEY,
	article_id TEXT NOT NULL,
	author     TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_comments_article ON comments (article_id);

CREATE TABLE IF NOT EXISTS notifications (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	subject    TEXT NOT NULL,
	body       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id);
`

// EnsureSchema creates the tables on startup if they do not exist yet.
func EnsureSchema() error {
	_, err := DB.Exec(schema)
	return err
}
