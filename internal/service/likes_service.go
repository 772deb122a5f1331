package service

// LikesService mutates the like set stored inline on the article record. The
// denormalized like count is rewritten to the set's size on every change.
type LikesService struct {
	articles ArticleStore
}

func NewLikesService(articles ArticleStore) *LikesService {
	return &LikesService{articles: articles}
}

// Add records the user's like. Liking twice leaves the article unchanged.
func (s *LikesService) Add(articleID, userID string) error {
	article, err := s.articles.GetByID(articleID)
	if err != nil {
		return wrap(err)
	}
	if article == nil {
		return fail(MsgArticleNotFound)
	}
	if article.LikedBy(userID) {
		return nil
	}

	article.LikedUserIDs = append(article.LikedUserIDs, userID)
	article.LikeCount = len(article.LikedUserIDs)
	return wrap(s.articles.Update(article))
}

// Remove withdraws the user's like; an absent like is a no-op.
func (s *LikesService) Remove(articleID, userID string) error {
	article, err := s.articles.GetByID(articleID)
	if err != nil {
		return wrap(err)
	}
	if article == nil {
		return fail(MsgArticleNotFound)
	}
	if !article.LikedBy(userID) {
		return nil
	}

	kept := article.LikedUserIDs[:0]
	for _, id := range article.LikedUserIDs {
		if id != userID {
			kept = append(kept, id)
		}
	}
	article.LikedUserIDs = kept
	article.LikeCount = len(article.LikedUserIDs)
	return wrap(s.articles.Update(article))
}

func (s *LikesService) Count(articleID string) (int, error) {
	article, err := s.articles.GetByID(articleID)
	if err != nil {
		return 0, wrap(err)
	}
	if article == nil {
		return 0, fail(MsgArticleNotFound)
	}
	return article.LikeCount, nil
}

// LikedArticles returns the ids of every article the user likes.
func (s *LikesService) LikedArticles(userID string) ([]string, error) {
	ids, err := s.articles.LikedArticleIDs(userID)
	if err != nil {
		return nil, wrap(err)
	}
	return ids, nil
}
