package service

import (
	"github.com/callmedory/sport-project/internal/model"
	"github.com/google/uuid"
)

// TagService keeps the tag ledger in sync with article state: per tag name,
// the set of articles carrying it and a count of the published ones.
type TagService struct {
	tags TagStore
}

func NewTagService(tags TagStore) *TagService {
	return &TagService{tags: tags}
}

// EnsureTagged associates the article with every named tag, creating tag
// records as needed. Idempotent per (tag, article) pair: an existing
// association is left untouched, so publishedCount moves only on the first
// call even when isPublished is set.
func (s *TagService) EnsureTagged(tagNames []string, articleID string, isPublished bool) error {
	existing, err := s.tags.GetByNames(tagNames)
	if err != nil {
		return wrap(err)
	}

	byName := make(map[string]*model.Tag, len(existing))
	for i := range existing {
		byName[existing[i].TagName] = &existing[i]
	}

	for _, name := range tagNames {
		tag, ok := byName[name]
		if !ok {
			count := 0
			if isPublished {
				count = 1
			}
			newTag := &model.Tag{
				ID:             uuid.NewString(),
				TagName:        name,
				ArticleIDs:     []string{articleID},
				PublishedCount: count,
			}
			if err := s.tags.Create(newTag); err != nil {
				return wrap(err)
			}
			continue
		}

		if tag.References(articleID) {
			continue
		}

		tag.ArticleIDs = append(tag.ArticleIDs, articleID)
		if isPublished {
			tag.PublishedCount++
		}
		if err := s.tags.Update(tag); err != nil {
			return wrap(err)
		}
	}

	return nil
}

// Untag removes the article from every named tag, deleting tags whose
// article set becomes empty. Tags that are already gone are skipped, so a
// repeated Untag of the same pair is a no-op.
func (s *TagService) Untag(tagNames []string, articleID string, wasPublished bool) error {
	for _, name := range tagNames {
		tag, err := s.tags.GetByName(name)
		if err != nil {
			return wrap(err)
		}
		if tag == nil || !tag.References(articleID) {
			continue
		}

		kept := tag.ArticleIDs[:0]
		for _, id := range tag.ArticleIDs {
			if id != articleID {
				kept = append(kept, id)
			}
		}
		tag.ArticleIDs = kept

		if len(tag.ArticleIDs) == 0 {
			if err := s.tags.Delete(tag.ID); err != nil {
				return wrap(err)
			}
			continue
		}

		if wasPublished {
			tag.PublishedCount--
		}
		if err := s.tags.Update(tag); err != nil {
			return wrap(err)
		}
	}

	return nil
}

// Get returns the ledger entry for a tag name, nil when the tag is unknown.
func (s *TagService) Get(name string) (*model.Tag, error) {
	tag, err := s.tags.GetByName(name)
	if err != nil {
		return nil, wrap(err)
	}
	return tag, nil
}

// MarkPublished bumps the published count by one on every tag currently
// carrying the article. Called once, on the Review -> Published transition.
func (s *TagService) MarkPublished(articleID string) error {
	tags, err := s.tags.GetByArticle(articleID)
	if err != nil {
		return wrap(err)
	}
	for i := range tags {
		tags[i].PublishedCount++
		if err := s.tags.Update(&tags[i]); err != nil {
			return wrap(err)
		}
	}
	return nil
}

// TopTags pages tags by published-article count, highest first. Only tags
// with at least one published article rank.
func (s *TagService) TopTags(pageNumber, pageSize int) ([]model.Tag, error) {
	tags, err := s.tags.TopTags(pageNumber, pageSize)
	if err != nil {
		return nil, wrap(err)
	}
	return tags, nil
}
