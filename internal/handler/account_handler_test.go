package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/callmedory/sport-project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeUserAPI struct {
	accounts *service.UserAccountList
	err      error

	lastPageNumber int
	lastPageSize   int
}

func (f *fakeUserAPI) Register(input service.RegisterInput) (*model.User, error) {
	return nil, f.err
}

func (f *fakeUserAPI) Login(email, password string) (*service.TokenPair, error) {
	return nil, f.err
}

func (f *fakeUserAPI) Refresh(refreshToken string) (*service.TokenPair, error) {
	return nil, f.err
}

func (f *fakeUserAPI) GetInfo(userID string) (*model.UserInfo, error) {
	return nil, f.err
}

func (f *fakeUserAPI) ChangeRole(userID, role string) error {
	return f.err
}

func (f *fakeUserAPI) ListAccounts(pageNumber, pageSize int) (*service.UserAccountList, error) {
	f.lastPageNumber = pageNumber
	f.lastPageSize = pageSize
	return f.accounts, f.err
}

type fakeNotifications struct {
	notifications []model.Notification
	err           error
}

func (f *fakeNotifications) ListByUser(userID string, pageNumber, pageSize int) ([]model.Notification, error) {
	return f.notifications, f.err
}

func newAccountRouter(users UserAPI, notifications NotificationStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAccountHandler(users, notifications)
	r.GET("/users", h.Users)
	r.GET("/notifications", fakeIdentity("u1", model.RoleReader), h.Notifications)
	return r
}

func TestUsers_ListsAccounts(t *testing.T) {
	api := &fakeUserAPI{accounts: &service.UserAccountList{
		PageNumber: 1,
		PageSize:   10,
		TotalCount: 1,
		Users: []service.UserAccount{
			{ID: "u1", FirstName: "Mia", LastName: "Stone", Email: "mia@example.com", Role: model.RoleReader},
		},
	}}
	r := newAccountRouter(api, &fakeNotifications{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users?page=2&page_size=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, api.lastPageNumber)
	assert.Equal(t, 5, api.lastPageSize)

	var res UserAccountListResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.TotalCount)
	assert.Equal(t, "mia@example.com", res.Users[0].Email)
	assert.Equal(t, model.RoleReader, res.Users[0].Role)
}

func TestNotifications_ListsOwn(t *testing.T) {
	notifications := &fakeNotifications{notifications: []model.Notification{
		{ID: "n1", UserID: "u1", Subject: "Your article is live", Body: "body", CreatedAt: time.Now()},
	}}
	r := newAccountRouter(&fakeUserAPI{}, notifications)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/notifications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []NotificationResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, "Your article is live", res[0].Subject)
}
