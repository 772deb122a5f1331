package handler

import (
	"net/http"
	"time"

	"github.com/callmedory/sport-project/internal/auth"
	"github.com/callmedory/sport-project/internal/service"
	"github.com/gin-gonic/gin"
)

type CommentAPI interface {
	ListByArticle(articleID string, pageNumber, pageSize int) (*service.CommentList, error)
	Add(articleID, userID, content string) (*service.CommentView, error)
	Delete(commentID, userID string) error
}

type CommentHandler struct {
	comments CommentAPI
}

func NewCommentHandler(comments CommentAPI) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func toCommentResponse(view service.CommentView) CommentResponse {
	return CommentResponse{
		ID: view.CommentID,
		Author: UserInfoResponse{
			ID:        view.Author.ID,
			FirstName: view.Author.FirstName,
			LastName:  view.Author.LastName,
		},
		Content:   view.Content,
		CreatedAt: view.CreatedAt.Format(time.RFC3339),
	}
}

func (h *CommentHandler) List(c *gin.Context) {
	list, err := h.comments.ListByArticle(c.Param("id"), getPageNumber(c), getPageSize(c))
	if err != nil {
		respondError(c, err)
		return
	}

	comments := make([]CommentResponse, 0, len(list.Comments))
	for _, view := range list.Comments {
		comments = append(comments, toCommentResponse(view))
	}

	c.JSON(http.StatusOK, CommentListResponse{
		Comments:   comments,
		TotalCount: list.TotalCount,
		PageNumber: list.PageNumber,
		PageSize:   list.PageSize,
	})
}

type addCommentRequest struct {
	Content string `json:"content"`
}

func (h *CommentHandler) Add(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content of the comment cannot be empty."})
		return
	}

	view, err := h.comments.Add(c.Param("id"), auth.UserID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(*view))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.comments.Delete(c.Param("commentID"), auth.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
