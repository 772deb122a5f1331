package service

import (
	"testing"
	"time"

	"github.com/callmedory/sport-project/internal/auth"
	"github.com/callmedory/sport-project/internal/model"
	"github.com/go-playground/assert/v2"
)

func newUserService() (*UserService, *memUsers) {
	users := newMemUsers()
	tokens := auth.NewTokenManager("access-secret", "refresh-secret", "test", time.Minute, time.Hour)
	return NewUserService(users, tokens), users
}

func TestRegister_NewReaderAccount(t *testing.T) {
	svc, users := newUserService()

	user, err := svc.Register(RegisterInput{
		FirstName: "Mia", LastName: "Stone", Email: "mia@example.com", Password: "secret",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RoleReader, user.UserRole)
	assert.NotEqual(t, "secret", user.Password)

	stored, _ := users.GetByEmail("mia@example.com")
	assert.NotEqual(t, nil, stored)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newUserService()

	svc.Register(RegisterInput{Email: "mia@example.com", Password: "secret"})
	_, err := svc.Register(RegisterInput{Email: "mia@example.com", Password: "other"})
	assert.Equal(t, MsgEmailRegistered, serviceMessage(t, err))
}

func TestLogin_VerifiesPassword(t *testing.T) {
	svc, _ := newUserService()
	svc.Register(RegisterInput{Email: "mia@example.com", Password: "secret"})

	pair, err := svc.Login("mia@example.com", "secret")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", pair.AccessToken)
	assert.NotEqual(t, "", pair.RefreshToken)

	_, err = svc.Login("mia@example.com", "wrong")
	assert.Equal(t, MsgInvalidCredentials, serviceMessage(t, err))

	_, err = svc.Login("nobody@example.com", "secret")
	assert.Equal(t, MsgInvalidCredentials, serviceMessage(t, err))
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	svc, _ := newUserService()
	svc.Register(RegisterInput{Email: "mia@example.com", Password: "secret"})

	pair, err := svc.Login("mia@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	fresh, err := svc.Refresh(pair.RefreshToken)
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", fresh.AccessToken)

	_, err = svc.Refresh(pair.AccessToken)
	assert.Equal(t, MsgInvalidCredentials, serviceMessage(t, err))
}

func TestListAccounts_PagesAllUsers(t *testing.T) {
	svc, _ := newUserService()
	svc.Register(RegisterInput{FirstName: "Mia", LastName: "Stone", Email: "mia@example.com", Password: "secret"})
	svc.Register(RegisterInput{FirstName: "Lee", LastName: "Park", Email: "lee@example.com", Password: "secret"})

	list, err := svc.ListAccounts(1, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, list.TotalCount)
	assert.Equal(t, 2, len(list.Users))
	assert.Equal(t, "mia@example.com", list.Users[0].Email)
	assert.Equal(t, model.RoleReader, list.Users[0].Role)
}

func TestChangeRole_UpdatesStoredUser(t *testing.T) {
	svc, users := newUserService()
	user, _ := svc.Register(RegisterInput{Email: "mia@example.com", Password: "secret"})

	if err := svc.ChangeRole(user.ID, model.RoleAuthor); err != nil {
		t.Fatalf("change role: %v", err)
	}

	stored, _ := users.GetByID(user.ID)
	assert.Equal(t, model.RoleAuthor, stored.UserRole)

	err := svc.ChangeRole("missing", model.RoleAuthor)
	assert.Equal(t, MsgUserNotFound, serviceMessage(t, err))
}
