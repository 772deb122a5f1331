package handler

import (
	"net/http"
	"time"

	"github.com/callmedory/sport-project/internal/auth"
	"github.com/callmedory/sport-project/internal/model"
	"github.com/callmedory/sport-project/internal/service"
	"github.com/gin-gonic/gin"
)

type UserAPI interface {
	Register(input service.RegisterInput) (*model.User, error)
	Login(email, password string) (*service.TokenPair, error)
	Refresh(refreshToken string) (*service.TokenPair, error)
	GetInfo(userID string) (*model.UserInfo, error)
	ChangeRole(userID, role string) error
	ListAccounts(pageNumber, pageSize int) (*service.UserAccountList, error)
}

type NotificationStore interface {
	ListByUser(userID string, pageNumber, pageSize int) ([]model.Notification, error)
}

type AccountHandler struct {
	users         UserAPI
	notifications NotificationStore
}

func NewAccountHandler(users UserAPI, notifications NotificationStore) *AccountHandler {
	return &AccountHandler{users: users, notifications: notifications}
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.users.Register(service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pair, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AccountHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pair, err := h.users.Refresh(req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (h *AccountHandler) Me(c *gin.Context) {
	info, err := h.users.GetInfo(auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UserInfoResponse{ID: info.ID, FirstName: info.FirstName, LastName: info.LastName})
}

type changeRoleRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func (h *AccountHandler) ChangeRole(c *gin.Context) {
	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.users.ChangeRole(req.UserID, req.Role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Users pages the full account directory for administrators.
func (h *AccountHandler) Users(c *gin.Context) {
	list, err := h.users.ListAccounts(getPageNumber(c), getPageSize(c))
	if err != nil {
		respondError(c, err)
		return
	}

	users := make([]UserAccountResponse, 0, len(list.Users))
	for _, u := range list.Users {
		users = append(users, UserAccountResponse{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, UserAccountListResponse{
		Users:      users,
		TotalCount: list.TotalCount,
		PageNumber: list.PageNumber,
		PageSize:   list.PageSize,
	})
}

func (h *AccountHandler) Notifications(c *gin.Context) {
	notifications, err := h.notifications.ListByUser(auth.UserID(c), getPageNumber(c), getPageSize(c))
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, NotificationResponse{
			ID:        n.ID,
			Subject:   n.Subject,
			Body:      n.Body,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}
