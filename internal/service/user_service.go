package service

import (
	"log/slog"
	"time"

	"github.com/callmedory/sport-project/internal/auth"
	"github.com/callmedory/sport-project/internal/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService is the user directory plus session issuing.
type UserService struct {
	users  UserStore
	tokens *auth.TokenManager
}

func NewUserService(users UserStore, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, tokens: tokens}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates a Reader account with a unique email.
func (s *UserService) Register(input RegisterInput) (*model.User, error) {
	existing, err := s.users.GetByEmail(input.Email)
	if err != nil {
		return nil, wrap(err)
	}
	if existing != nil {
		return nil, fail(MsgEmailRegistered)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, wrap(err)
	}

	user := &model.User{
		ID:        uuid.NewString(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hash),
		UserRole:  model.RoleReader,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(user); err != nil {
		return nil, wrap(err)
	}

	slog.Info("user registered", "user_id", user.ID)
	return user, nil
}

// TokenPair is one issued session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Login verifies credentials and issues a token pair.
func (s *UserService) Login(email, password string) (*TokenPair, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, wrap(err)
	}
	if user == nil {
		return nil, fail(MsgInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, fail(MsgInvalidCredentials)
	}

	return s.issue(user)
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *UserService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, fail(MsgInvalidCredentials)
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, wrap(err)
	}
	if user == nil {
		return nil, fail(MsgInvalidCredentials)
	}

	return s.issue(user)
}

func (s *UserService) issue(user *model.User) (*TokenPair, error) {
	access, err := s.tokens.AccessToken(user.ID, user.Email, user.UserRole)
	if err != nil {
		return nil, wrap(err)
	}
	refresh, err := s.tokens.RefreshToken(user.ID, user.Email, user.UserRole)
	if err != nil {
		return nil, wrap(err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// UserAccount is one row of the admin account listing.
type UserAccount struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      string
	CreatedAt time.Time
}

type UserAccountList struct {
	PageNumber int
	PageSize   int
	TotalCount int
	Users      []UserAccount
}

// ListAccounts pages every registered account for the admin console.
func (s *UserService) ListAccounts(pageNumber, pageSize int) (*UserAccountList, error) {
	total, err := s.users.Count()
	if err != nil {
		return nil, wrap(err)
	}

	users, err := s.users.List(pageNumber, pageSize)
	if err != nil {
		return nil, wrap(err)
	}

	accounts := make([]UserAccount, 0, len(users))
	for _, u := range users {
		accounts = append(accounts, UserAccount{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      u.UserRole,
			CreatedAt: u.CreatedAt,
		})
	}

	return &UserAccountList{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: total,
		Users:      accounts,
	}, nil
}

// GetInfo resolves a user's public info by id.
func (s *UserService) GetInfo(userID string) (*model.UserInfo, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, wrap(err)
	}
	if user == nil {
		return nil, fail(MsgUserNotFound)
	}
	info := user.Info()
	return &info, nil
}

// ChangeRole assigns a new role to the user.
func (s *UserService) ChangeRole(userID, role string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return wrap(err)
	}
	if user == nil {
		return fail(MsgUserNotFound)
	}

	user.UserRole = role
	if err := s.users.Update(user); err != nil {
		return wrap(err)
	}

	slog.Info("user role changed", "user_id", userID, "role", role)
	return nil
}
