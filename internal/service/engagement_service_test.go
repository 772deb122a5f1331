package service

import (
	"testing"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/go-playground/assert/v2"
)

func TestLikes_AddIsIdempotent(t *testing.T) {
	env := newTestEnv()
	article := env.mustCreate(t, "Derby Preview")

	env.likesService.Add(article.ID, "reader-1")
	env.likesService.Add(article.ID, "reader-1")
	env.likesService.Add(article.ID, "reader-2")

	count, err := env.likesService.Count(article.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, count)
}

func TestLikes_RemoveAbsentIsNoOp(t *testing.T) {
	env := newTestEnv()
	article := env.mustCreate(t, "Late Winner")

	env.likesService.Add(article.ID, "reader-1")
	if err := env.likesService.Remove(article.ID, "reader-2"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	count, _ := env.likesService.Count(article.ID)
	assert.Equal(t, 1, count)

	env.likesService.Remove(article.ID, "reader-1")
	count, _ = env.likesService.Count(article.ID)
	assert.Equal(t, 0, count)
}

func TestLikes_UnknownArticle(t *testing.T) {
	env := newTestEnv()

	err := env.likesService.Add("missing", "reader-1")
	assert.Equal(t, MsgArticleNotFound, serviceMessage(t, err))
}

func TestLikes_LikedArticles(t *testing.T) {
	env := newTestEnv()
	first := env.mustCreate(t, "Liked One")
	env.mustCreate(t, "Not Liked")
	second := env.mustCreate(t, "Liked Two")

	env.likesService.Add(first.ID, "reader-1")
	env.likesService.Add(second.ID, "reader-1")

	ids, err := env.likesService.LikedArticles("reader-1")
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{first.ID, second.ID}, ids)
}

func TestFavorites_AddAndRemoveIdempotent(t *testing.T) {
	env := newTestEnv()

	env.favoritesService.Add("reader-1", "a1")
	env.favoritesService.Add("reader-1", "a1")
	env.favoritesService.Add("reader-1", "a2")

	ids, _ := env.favoritesService.ListIDs("reader-1")
	assert.Equal(t, []string{"a1", "a2"}, ids)

	env.favoritesService.Remove("reader-1", "a1")
	env.favoritesService.Remove("reader-1", "a1")

	ids, _ = env.favoritesService.ListIDs("reader-1")
	assert.Equal(t, []string{"a2"}, ids)
}

func TestFavorites_EmptyWhenNoRecord(t *testing.T) {
	env := newTestEnv()

	ids, err := env.favoritesService.ListIDs("reader-1")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(ids))
}

func TestFavorites_RemoveArticleEverywhere(t *testing.T) {
	env := newTestEnv()

	env.favoritesService.Add("reader-1", "a1")
	env.favoritesService.Add("reader-1", "a2")
	env.favoritesService.Add("reader-2", "a1")

	if err := env.favoritesService.RemoveArticleEverywhere("a1"); err != nil {
		t.Fatalf("remove everywhere: %v", err)
	}

	first, _ := env.favoritesService.ListIDs("reader-1")
	second, _ := env.favoritesService.ListIDs("reader-2")
	assert.Equal(t, []string{"a2"}, first)
	assert.Equal(t, 0, len(second))
}

func TestStats_AdjustWithoutRecordIsDropped(t *testing.T) {
	env := newTestEnv()

	if err := env.statsService.Adjust("author-x", 1); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	stats, _ := env.stats.Get("author-x")
	assert.Equal(t, nil, stats)
}

func TestStats_TopAuthorsJoinNames(t *testing.T) {
	env := newTestEnv()
	env.statsService.EnsureExists("author-1")
	env.statsService.Adjust("author-1", 3)

	authors, err := env.statsService.TopAuthors(1, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(authors))
	assert.Equal(t, "author-1", authors[0].AuthorID)
	assert.Equal(t, "Dana", authors[0].FirstName)
	assert.Equal(t, 3, authors[0].ArticleCount)
}

func TestComments_AddRequiresArticle(t *testing.T) {
	env := newTestEnv()

	_, err := env.commentService.Add("missing", "author-1", "hello")
	assert.Equal(t, MsgArticleNotFound, serviceMessage(t, err))
}

func TestComments_DeleteOnlyAuthorOrSuperAdmin(t *testing.T) {
	env := newTestEnv()
	article := env.mustCreate(t, "Comment Target")
	env.users.Create(&model.User{ID: "reader-1", UserRole: model.RoleReader})
	env.users.Create(&model.User{ID: "root-1", UserRole: model.RoleSuperAdmin})

	view, err := env.commentService.Add(article.ID, "author-1", "first!")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	err = env.commentService.Delete(view.CommentID, "reader-1")
	assert.Equal(t, MsgCommentNotYours, serviceMessage(t, err))

	if err := env.commentService.Delete(view.CommentID, "root-1"); err != nil {
		t.Fatalf("superadmin delete: %v", err)
	}

	err = env.commentService.Delete(view.CommentID, "author-1")
	assert.Equal(t, MsgCommentNotFound, serviceMessage(t, err))
}

func TestImageUpload_Validation(t *testing.T) {
	env := newTestEnv()
	images := NewImageService(env.blobs)

	_, err := images.Upload("pic.png", nil)
	assert.Equal(t, MsgNoImage, serviceMessage(t, err))

	_, err = images.Upload("pic.gif", []byte{1})
	assert.Equal(t, MsgBadImageFormat, serviceMessage(t, err))

	_, err = images.Upload("pic.png", make([]byte, maxImageBytes+1))
	assert.Equal(t, MsgImageTooLarge, serviceMessage(t, err))

	key, err := images.Upload("pic.JPG", []byte{1, 2, 3})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, env.blobs.has(ImageContainer, key))

	data, err := images.Get(key)
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

func TestSportTypes_Cached(t *testing.T) {
	sports := NewSportsService()

	first := sports.SportTypes()
	second := sports.SportTypes()
	assert.Equal(t, first, second)
	assert.Equal(t, len(model.SportTypes), len(first))
}
