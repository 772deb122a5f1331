package handler

import (
	"net/http"

	"github.com/callmedory/sport-project/internal/auth"
	"github.com/gin-gonic/gin"
)

type FavoritesAPI interface {
	Add(userID, articleID string) error
	Remove(userID, articleID string) error
	ListIDs(userID string) ([]string, error)
}

type LikesAPI interface {
	Add(articleID, userID string) error
	Remove(articleID, userID string) error
	Count(articleID string) (int, error)
	LikedArticles(userID string) ([]string, error)
}

// EngagementHandler serves the favorites and likes endpoints.
type EngagementHandler struct {
	favorites FavoritesAPI
	likes     LikesAPI
}

func NewEngagementHandler(favorites FavoritesAPI, likes LikesAPI) *EngagementHandler {
	return &EngagementHandler{favorites: favorites, likes: likes}
}

func (h *EngagementHandler) AddFavorite(c *gin.Context) {
	if err := h.favorites.Add(auth.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "added"})
}

func (h *EngagementHandler) RemoveFavorite(c *gin.Context) {
	if err := h.favorites.Remove(auth.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (h *EngagementHandler) ListFavoriteIDs(c *gin.Context) {
	ids, err := h.favorites.ListIDs(auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article_ids": ids})
}

func (h *EngagementHandler) AddLike(c *gin.Context) {
	if err := h.likes.Add(c.Param("id"), auth.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "liked"})
}

func (h *EngagementHandler) RemoveLike(c *gin.Context) {
	if err := h.likes.Remove(c.Param("id"), auth.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unliked"})
}

func (h *EngagementHandler) LikeCount(c *gin.Context) {
	count, err := h.likes.Count(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"like_count": count})
}

func (h *EngagementHandler) LikedArticles(c *gin.Context) {
	ids, err := h.likes.LikedArticles(auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article_ids": ids})
}
