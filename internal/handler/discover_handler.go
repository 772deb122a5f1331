package handler

import (
	"net/http"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/callmedory/sport-project/internal/service"
	"github.com/gin-gonic/gin"
)

type TagsAPI interface {
	TopTags(pageNumber, pageSize int) ([]model.Tag, error)
}

type AuthorsAPI interface {
	TopAuthors(pageNumber, pageSize int) ([]service.TopAuthor, error)
}

type SportsAPI interface {
	SportTypes() []model.SportType
}

// DiscoverHandler serves the ranking and taxonomy endpoints.
type DiscoverHandler struct {
	tags    TagsAPI
	authors AuthorsAPI
	sports  SportsAPI
}

func NewDiscoverHandler(tags TagsAPI, authors AuthorsAPI, sports SportsAPI) *DiscoverHandler {
	return &DiscoverHandler{tags: tags, authors: authors, sports: sports}
}

func (h *DiscoverHandler) TopTags(c *gin.Context) {
	tags, err := h.tags.TopTags(getPageNumber(c), getPageSize(c))
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		res = append(res, TagResponse{
			TagName:        t.TagName,
			ArticleCount:   len(t.ArticleIDs),
			PublishedCount: t.PublishedCount,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *DiscoverHandler) TopAuthors(c *gin.Context) {
	authors, err := h.authors.TopAuthors(getPageNumber(c), getPageSize(c))
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]TopAuthorResponse, 0, len(authors))
	for _, a := range authors {
		res = append(res, TopAuthorResponse{
			AuthorID:     a.AuthorID,
			FirstName:    a.FirstName,
			LastName:     a.LastName,
			ArticleCount: a.ArticleCount,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *DiscoverHandler) Sports(c *gin.Context) {
	res := make([]SportResponse, 0)
	for _, s := range h.sports.SportTypes() {
		res = append(res, SportResponse{Name: s.Name, Description: s.Description})
	}
	c.JSON(http.StatusOK, res)
}
