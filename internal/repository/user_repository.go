package repository

import (
	"database/sql"

	"github.com/callmedory/sport-project/internal/model"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, password, user_role, email_verified, created_at`

func (r *UserRepository) GetByID(id string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(`
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.UserRole, &u.EmailVerified, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(`
		SELECT `+userColumns+` FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.UserRole, &u.EmailVerified, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) Create(u *model.User) error {
	_, err := r.db.Exec(`
		INSERT INTO users(id, first_name, last_name, email, password, user_role, email_verified, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID, u.FirstName, u.LastName, u.Email, u.Password, u.UserRole, u.EmailVerified, u.CreatedAt)
	return err
}

func (r *UserRepository) Update(u *model.User) error {
	_, err := r.db.Exec(`
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, password = $5, user_role = $6, email_verified = $7
		WHERE id = $1
	`, u.ID, u.FirstName, u.LastName, u.Email, u.Password, u.UserRole, u.EmailVerified)
	return err
}

// List pages every account, newest first. Page numbers are 1-based.
func (r *UserRepository) List(pageNumber, pageSize int) ([]model.User, error) {
	rows, err := r.db.Query(`
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.UserRole, &u.EmailVerified, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&total)
	return total, err
}

// SearchByName matches the substring case-insensitively against the user's
// full display name.
func (r *UserRepository) SearchByName(substring string) ([]model.User, error) {
	rows, err := r.db.Query(`
		SELECT `+userColumns+`
		FROM users
		WHERE first_name || ' ' || last_name ILIKE '%' || $1 || '%'
	`, substring)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.UserRole, &u.EmailVerified, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
