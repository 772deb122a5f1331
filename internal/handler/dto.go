package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/callmedory/sport-project/internal/service"
	"github.com/gin-gonic/gin"
)

type UserInfoResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ArticleResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Sport       string           `json:"sport"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Tags        []string         `json:"tags"`
	LikeCount   int              `json:"like_count"`
	Status      string           `json:"status"`
	Author      UserInfoResponse `json:"author"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

type ArticleListResponse struct {
	Articles   []ArticleResponse `json:"articles"`
	TotalCount int               `json:"total_count"`
	PageNumber int               `json:"page_number"`
	PageSize   int               `json:"page_size"`
}

type ArticleContentResponse struct {
	ArticleResponse
	Content string `json:"content"`
}

type CommentResponse struct {
	ID        string           `json:"id"`
	Author    UserInfoResponse `json:"author"`
	Content   string           `json:"content"`
	CreatedAt string           `json:"created_at"`
}

type CommentListResponse struct {
	Comments   []CommentResponse `json:"comments"`
	TotalCount int               `json:"total_count"`
	PageNumber int               `json:"page_number"`
	PageSize   int               `json:"page_size"`
}

type TagResponse struct {
	TagName        string `json:"tag_name"`
	ArticleCount   int    `json:"article_count"`
	PublishedCount int    `json:"published_count"`
}

type TopAuthorResponse struct {
	AuthorID     string `json:"author_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ArticleCount int    `json:"article_count"`
}

type SportResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type UserAccountResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type UserAccountListResponse struct {
	Users      []UserAccountResponse `json:"users"`
	TotalCount int                   `json:"total_count"`
	PageNumber int                   `json:"page_number"`
	PageSize   int                   `json:"page_size"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func toUserInfoResponse(info service.ArticleListItem) UserInfoResponse {
	return UserInfoResponse{
		ID:        info.Author.ID,
		FirstName: info.Author.FirstName,
		LastName:  info.Author.LastName,
	}
}

func toArticleResponse(item service.ArticleListItem) ArticleResponse {
	a := item.Article
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Sport:       a.Sport,
		Description: a.Description,
		Image:       a.Image,
		Tags:        a.Tags,
		LikeCount:   a.LikeCount,
		Status:      a.Status,
		Author:      toUserInfoResponse(item),
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

func toArticleListResponse(list *service.ArticleList) ArticleListResponse {
	articles := make([]ArticleResponse, 0, len(list.Articles))
	for _, item := range list.Articles {
		articles = append(articles, toArticleResponse(item))
	}
	return ArticleListResponse{
		Articles:   articles,
		TotalCount: list.TotalCount,
		PageNumber: list.PageNumber,
		PageSize:   list.PageSize,
	}
}

// respondError maps a service error to a client response: a display message
// for service failures, a generic body for anything unrecognized.
func respondError(c *gin.Context, err error) {
	var se *service.Error
	if errors.As(err, &se) {
		c.JSON(http.StatusBadRequest, gin.H{"error": se.Message})
		return
	}
	slog.Error("unhandled error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getPageNumber(c *gin.Context) int {
	page := getQueryInt("page", 1, c)
	if page < 1 {
		slog.Warn("invalid query parameter, using default", "param", "page", "value", page, "default", 1)
		return 1
	}
	return page
}

func getPageSize(c *gin.Context) int {
	const (
		defaultSize = 10
		maxSize     = 100
	)

	size := getQueryInt("page_size", defaultSize, c)
	if size < 1 {
		slog.Warn("invalid query parameter, using default", "param", "page_size", "value", size, "default", defaultSize)
		return defaultSize
	}

	if size > maxSize {
		slog.Warn("query parameter exceeds max, clamping", "param", "page_size", "value", size, "max", maxSize)
		return maxSize
	}

	return size
}

func getOrderBy(c *gin.Context) string {
	return c.Query("order_by")
}
