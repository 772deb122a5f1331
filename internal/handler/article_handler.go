package handler

import (
	"net/http"
	"time"

	"github.com/callmedory/sport-project/internal/auth"
	"github.com/callmedory/sport-project/internal/model"
	"github.com/callmedory/sport-project/internal/service"
	"github.com/gin-gonic/gin"
)

type ArticleAPI interface {
	PublishedArticles(pageNumber, pageSize int, orderBy string) (*service.ArticleList, error)
	ArticlesForReview(pageNumber, pageSize int, orderBy string) (*service.ArticleList, error)
	AuthorArticles(authorID string, pageNumber, pageSize int, orderBy string) (*service.ArticleList, error)
	ArticlesByTag(tagName string, pageNumber, pageSize int, orderBy string) (*service.ArticleList, error)
	ArticlesBySport(sport string, pageNumber, pageSize int, orderBy string) (*service.ArticleList, error)
	SearchByTitle(substring string, pageNumber, pageSize int, orderBy string) (*service.ArticleList, error)
	SearchByTags(substring string, pageNumber, pageSize int, orderBy string) (*service.ArticleList, error)
	SearchByAuthorName(name string, pageNumber, pageSize int, orderBy string) (*service.ArticleList, error)
	FavoriteArticles(userID string, pageNumber, pageSize int, orderBy string) (*service.ArticleList, error)
	GetWithContent(articleID string) (*service.ArticleWithContent, error)
	Create(input service.CreateArticleInput) (*model.Article, error)
	Update(articleID, editorID string, input service.UpdateArticleInput) (*model.Article, error)
	Delete(articleID string) error
	Publish(articleID string) error
}

type ArticleHandler struct {
	articles ArticleAPI
}

func NewArticleHandler(articles ArticleAPI) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

type listCall func(pageNumber, pageSize int, orderBy string) (*service.ArticleList, error)

func (h *ArticleHandler) respondList(c *gin.Context, call listCall) {
	list, err := call(getPageNumber(c), getPageSize(c), getOrderBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleListResponse(list))
}

func (h *ArticleHandler) GetPublished(c *gin.Context) {
	h.respondList(c, h.articles.PublishedArticles)
}

func (h *ArticleHandler) GetForReview(c *gin.Context) {
	h.respondList(c, h.articles.ArticlesForReview)
}

func (h *ArticleHandler) GetMine(c *gin.Context) {
	userID := auth.UserID(c)
	h.respondList(c, func(page, size int, orderBy string) (*service.ArticleList, error) {
		return h.articles.AuthorArticles(userID, page, size, orderBy)
	})
}

func (h *ArticleHandler) GetByTag(c *gin.Context) {
	tag := c.Param("tag")
	h.respondList(c, func(page, size int, orderBy string) (*service.ArticleList, error) {
		return h.articles.ArticlesByTag(tag, page, size, orderBy)
	})
}

func (h *ArticleHandler) GetBySport(c *gin.Context) {
	sport := c.Param("sport")
	h.respondList(c, func(page, size int, orderBy string) (*service.ArticleList, error) {
		return h.articles.ArticlesBySport(sport, page, size, orderBy)
	})
}

func (h *ArticleHandler) SearchTitle(c *gin.Context) {
	substring := c.Query("q")
	h.respondList(c, func(page, size int, orderBy string) (*service.ArticleList, error) {
		return h.articles.SearchByTitle(substring, page, size, orderBy)
	})
}

func (h *ArticleHandler) SearchTags(c *gin.Context) {
	substring := c.Query("q")
	h.respondList(c, func(page, size int, orderBy string) (*service.ArticleList, error) {
		return h.articles.SearchByTags(substring, page, size, orderBy)
	})
}

func (h *ArticleHandler) SearchAuthor(c *gin.Context) {
	name := c.Query("q")
	h.respondList(c, func(page, size int, orderBy string) (*service.ArticleList, error) {
		return h.articles.SearchByAuthorName(name, page, size, orderBy)
	})
}

func (h *ArticleHandler) GetFavorites(c *gin.Context) {
	userID := auth.UserID(c)
	h.respondList(c, func(page, size int, orderBy string) (*service.ArticleList, error) {
		return h.articles.FavoriteArticles(userID, page, size, orderBy)
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	result, err := h.articles.GetWithContent(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	item := service.ArticleListItem{Article: result.Article, Author: result.Author}
	c.JSON(http.StatusOK, ArticleContentResponse{
		ArticleResponse: toArticleResponse(item),
		Content:         result.Content,
	})
}

type createArticleRequest struct {
	Title       string   `json:"title"`
	Sport       string   `json:"sport"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Content     string   `json:"content"`
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	article, err := h.articles.Create(service.CreateArticleInput{
		Title:       req.Title,
		Sport:       req.Sport,
		Description: req.Description,
		Image:       req.Image,
		Tags:        req.Tags,
		Content:     req.Content,
		Author:      auth.UserID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": article.ID, "status": article.Status})
}

func (h *ArticleHandler) Update(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	article, err := h.articles.Update(c.Param("id"), auth.UserID(c), service.UpdateArticleInput{
		Title:       req.Title,
		Sport:       req.Sport,
		Description: req.Description,
		Image:       req.Image,
		Tags:        req.Tags,
		Content:     req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": article.ID, "updated_at": article.UpdatedAt.Format(time.RFC3339)})
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.articles.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *ArticleHandler) Publish(c *gin.Context) {
	if err := h.articles.Publish(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "published"})
}
