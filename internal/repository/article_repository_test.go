package repository

import (
	"testing"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/go-playground/assert/v2"
)

func TestBuildArticleFilter_Empty(t *testing.T) {
	where, args := buildArticleFilter(model.ArticleQuery{})
	assert.Equal(t, "", where)
	assert.Equal(t, 0, len(args))
}

func TestBuildArticleFilter_NumbersPlaceholdersInOrder(t *testing.T) {
	where, args := buildArticleFilter(model.ArticleQuery{
		Status: model.StatusPublished,
		Sport:  "Soccer",
	})
	assert.Equal(t, " WHERE status = $1 AND sport = $2", where)
	assert.Equal(t, 2, len(args))
	assert.Equal(t, model.StatusPublished, args[0])
	assert.Equal(t, "Soccer", args[1])
}

func TestBuildArticleFilter_TitleSearch(t *testing.T) {
	where, args := buildArticleFilter(model.ArticleQuery{
		Status:         model.StatusPublished,
		TitleSubstring: "final",
	})
	assert.Equal(t, " WHERE status = $1 AND title ILIKE '%' || $2 || '%'", where)
	assert.Equal(t, 2, len(args))
}

func TestBuildArticleFilter_TagSearchUnnestsArray(t *testing.T) {
	where, args := buildArticleFilter(model.ArticleQuery{TagSubstring: "trans"})
	assert.Equal(t, " WHERE EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE '%' || $1 || '%')", where)
	assert.Equal(t, 1, len(args))
}

func TestBuildArticleFilter_IDSetDistinguishesNilFromEmpty(t *testing.T) {
	where, _ := buildArticleFilter(model.ArticleQuery{IDs: nil})
	assert.Equal(t, "", where)

	where, args := buildArticleFilter(model.ArticleQuery{IDs: []string{}})
	assert.Equal(t, " WHERE id = ANY($1)", where)
	assert.Equal(t, 1, len(args))
}

func TestBuildArticleFilter_AuthorSet(t *testing.T) {
	where, args := buildArticleFilter(model.ArticleQuery{
		Status:  model.StatusPublished,
		Authors: []string{"u1", "u2"},
	})
	assert.Equal(t, " WHERE status = $1 AND author = ANY($2)", where)
	assert.Equal(t, 2, len(args))
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, " ORDER BY created_at ASC", orderClause(model.OrderByCreatedDateAsc))
	assert.Equal(t, " ORDER BY like_count DESC, created_at DESC", orderClause(model.OrderTopRated))
	assert.Equal(t, " ORDER BY created_at DESC", orderClause(""))
	assert.Equal(t, " ORDER BY created_at DESC", orderClause("bogus"))
}
