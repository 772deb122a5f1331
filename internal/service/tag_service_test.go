package service

import (
	"testing"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/go-playground/assert/v2"
)

func TestEnsureTagged_IdempotentPerPair(t *testing.T) {
	env := newTestEnv()

	if err := env.tagService.EnsureTagged([]string{"tag1"}, "a1", true); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := env.tagService.EnsureTagged([]string{"tag1"}, "a1", true); err != nil {
		t.Fatalf("second call: %v", err)
	}

	tag, _ := env.tags.GetByName("tag1")
	assert.Equal(t, []string{"a1"}, tag.ArticleIDs)
	assert.Equal(t, 1, tag.PublishedCount)
}

func TestEnsureTagged_ExtendsExistingTag(t *testing.T) {
	env := newTestEnv()

	env.tagService.EnsureTagged([]string{"tag1"}, "a1", false)
	env.tagService.EnsureTagged([]string{"tag1"}, "a2", true)

	tag, _ := env.tags.GetByName("tag1")
	assert.Equal(t, []string{"a1", "a2"}, tag.ArticleIDs)
	assert.Equal(t, 1, tag.PublishedCount)
}

func TestUntag_DeletesTagWhenEmpty(t *testing.T) {
	env := newTestEnv()
	env.tagService.EnsureTagged([]string{"tag1"}, "a1", false)

	if err := env.tagService.Untag([]string{"tag1"}, "a1", false); err != nil {
		t.Fatalf("untag: %v", err)
	}

	tag, _ := env.tags.GetByName("tag1")
	assert.Equal(t, nil, tag)
}

func TestUntag_MissingPairIsNoOp(t *testing.T) {
	env := newTestEnv()
	env.tagService.EnsureTagged([]string{"tag1"}, "a1", false)

	if err := env.tagService.Untag([]string{"tag1", "ghost"}, "a2", false); err != nil {
		t.Fatalf("untag: %v", err)
	}

	tag, _ := env.tags.GetByName("tag1")
	assert.Equal(t, []string{"a1"}, tag.ArticleIDs)
}

func TestMarkPublished_BumpsEveryCarryingTag(t *testing.T) {
	env := newTestEnv()
	env.tagService.EnsureTagged([]string{"tag1", "tag2"}, "a1", false)
	env.tagService.EnsureTagged([]string{"tag2"}, "a2", false)

	if err := env.tagService.MarkPublished("a1"); err != nil {
		t.Fatalf("mark published: %v", err)
	}

	tag1, _ := env.tags.GetByName("tag1")
	tag2, _ := env.tags.GetByName("tag2")
	assert.Equal(t, 1, tag1.PublishedCount)
	assert.Equal(t, 1, tag2.PublishedCount)
}

func TestTopTags_RequirePublishedArticle(t *testing.T) {
	env := newTestEnv()
	env.tags.Create(&model.Tag{ID: "t1", TagName: "drafts", ArticleIDs: []string{"a1"}})
	env.tags.Create(&model.Tag{ID: "t2", TagName: "live", ArticleIDs: []string{"a2"}, PublishedCount: 3})

	tags, err := env.tagService.TopTags(1, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(tags))
	assert.Equal(t, "live", tags[0].TagName)
}
