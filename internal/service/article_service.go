package service

import (
	"log/slog"
	"time"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/callmedory/sport-project/pkg/blob"
	"github.com/callmedory/sport-project/pkg/notify"
	"github.com/google/uuid"
)

// ArticleContainer is the blob container holding article bodies, keyed by
// article id.
const ArticleContainer = "articles"

// ArticleService drives articles through Review -> Published and keeps the
// tag and author-statistics ledgers, the comments, the favorites sets and the
// blob content consistent with each transition. The multi-record writes run
// sequentially with no transaction around them.
type ArticleService struct {
	articles   ArticleStore
	users      UserStore
	tags       *TagService
	stats      *StatsService
	favorites  *FavoritesService
	comments   CommentStore
	blobs      blob.Store
	dispatcher notify.Dispatcher
}

func NewArticleService(articles ArticleStore, users UserStore, tags *TagService,
	stats *StatsService, favorites *FavoritesService, comments CommentStore,
	blobs blob.Store, dispatcher notify.Dispatcher) *ArticleService {
	return &ArticleService{
		articles:   articles,
		users:      users,
		tags:       tags,
		stats:      stats,
		favorites:  favorites,
		comments:   comments,
		blobs:      blobs,
		dispatcher: dispatcher,
	}
}

type CreateArticleInput struct {
	Title       string
	Sport       string
	Description string
	Image       string
	Tags        []string
	Content     string
	Author      string
}

// Create stores a new article in Review status, uploads its body, indexes its
// tags and lazily creates the author's statistics record.
func (s *ArticleService) Create(input CreateArticleInput) (*model.Article, error) {
	existing, err := s.articles.GetByTitle(input.Title)
	if err != nil {
		return nil, wrap(err)
	}
	if existing != nil {
		return nil, fail(MsgTitleExists)
	}

	author, err := s.users.GetByID(input.Author)
	if err != nil {
		return nil, wrap(err)
	}
	if author == nil {
		return nil, fail(MsgUserNotFound)
	}

	if !model.ValidSport(input.Sport) {
		return nil, fail(MsgInvalidSport)
	}

	now := time.Now().UTC()
	article := &model.Article{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Sport:        input.Sport,
		Description:  input.Description,
		Image:        input.Image,
		Tags:         dedupe(input.Tags),
		LikedUserIDs: []string{},
		Status:       model.StatusReview,
		Author:       input.Author,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.blobs.Put(ArticleContainer, article.ID, []byte(input.Content)); err != nil {
		return nil, wrap(err)
	}
	if err := s.articles.Create(article); err != nil {
		return nil, wrap(err)
	}

	if err := s.tags.EnsureTagged(article.Tags, article.ID, false); err != nil {
		return nil, err
	}
	if err := s.stats.EnsureExists(article.Author); err != nil {
		return nil, err
	}

	slog.Info("article created", "article_id", article.ID, "author", article.Author)
	return article, nil
}

type UpdateArticleInput struct {
	Title       string
	Sport       string
	Description string
	Image       string
	Tags        []string
	Content     string
}

// Update rewrites a Review-status article owned by the editor, reconciling
// the tag ledger with the new tag set and overwriting the blob content.
func (s *ArticleService) Update(articleID, editorID string, input UpdateArticleInput) (*model.Article, error) {
	article, err := s.articles.GetByID(articleID)
	if err != nil {
		return nil, wrap(err)
	}
	if article == nil {
		return nil, fail(MsgArticleNotFound)
	}
	if article.Author != editorID {
		return nil, fail(MsgUpdateNotPermitted)
	}
	if article.Status == model.StatusPublished {
		return nil, fail(MsgCantUpdate)
	}

	sameTitle, err := s.articles.GetByTitle(input.Title)
	if err != nil {
		return nil, wrap(err)
	}
	if sameTitle != nil && sameTitle.ID != articleID {
		return nil, fail(MsgTitleExists)
	}

	if !model.ValidSport(input.Sport) {
		return nil, fail(MsgInvalidSport)
	}

	newTags := dedupe(input.Tags)
	wasPublished := article.Status == model.StatusPublished

	var removed []string
	for _, old := range article.Tags {
		if !contains(newTags, old) {
			removed = append(removed, old)
		}
	}

	if err := s.tags.Untag(removed, articleID, wasPublished); err != nil {
		return nil, err
	}
	if err := s.tags.EnsureTagged(newTags, articleID, wasPublished); err != nil {
		return nil, err
	}

	if err := s.blobs.Put(ArticleContainer, articleID, []byte(input.Content)); err != nil {
		return nil, wrap(err)
	}

	article.Title = input.Title
	article.Sport = input.Sport
	article.Description = input.Description
	article.Image = input.Image
	article.Tags = newTags
	article.UpdatedAt = time.Now().UTC()

	if err := s.articles.Update(article); err != nil {
		return nil, wrap(err)
	}

	slog.Info("article updated", "article_id", articleID)
	return article, nil
}

// Delete removes the article and cascades: author statistics (when it was
// published), its comments, its blob content, its tag associations and every
// favorites set referencing it. Each sub-step tolerates already-absent
// targets, so a re-run after a partial failure converges.
func (s *ArticleService) Delete(articleID string) error {
	article, err := s.articles.GetByID(articleID)
	if err != nil {
		return wrap(err)
	}
	if article == nil {
		return fail(MsgArticleNotFound)
	}

	if article.Status == model.StatusPublished {
		if err := s.stats.Adjust(article.Author, -1); err != nil {
			return err
		}
	}

	if err := s.comments.DeleteByArticle(articleID); err != nil {
		return wrap(err)
	}

	if err := s.articles.Delete(articleID); err != nil {
		return wrap(err)
	}
	if err := s.blobs.Delete(ArticleContainer, articleID); err != nil {
		return wrap(err)
	}

	if err := s.tags.Untag(article.Tags, articleID, article.Status == model.StatusPublished); err != nil {
		return err
	}
	if err := s.favorites.RemoveArticleEverywhere(articleID); err != nil {
		return err
	}

	slog.Info("article deleted", "article_id", articleID)
	return nil
}

// Publish flips the article to Published, bumps the published count on each
// of its tags and the author's statistics, then notifies the author. The
// notification goes out only after the status write and never fails the
// operation.
func (s *ArticleService) Publish(articleID string) error {
	article, err := s.articles.GetByID(articleID)
	if err != nil {
		return wrap(err)
	}
	if article == nil {
		return fail(MsgArticleNotFound)
	}

	article.Status = model.StatusPublished
	article.UpdatedAt = time.Now().UTC()
	if err := s.articles.Update(article); err != nil {
		return wrap(err)
	}

	if err := s.tags.MarkPublished(articleID); err != nil {
		return err
	}

	if err := s.stats.EnsureExists(article.Author); err != nil {
		return err
	}
	if err := s.stats.Adjust(article.Author, 1); err != nil {
		return err
	}

	event := notify.PublishedEvent{
		AuthorID:     article.Author,
		ArticleID:    article.ID,
		ArticleTitle: article.Title,
		PublishedAt:  article.UpdatedAt,
	}
	if err := s.dispatcher.ArticlePublished(event); err != nil {
		slog.Error("error dispatching publish notification", "error", err, "article_id", articleID)
	}

	slog.Info("article published", "article_id", articleID, "author", article.Author)
	return nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
