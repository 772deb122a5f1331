package service

import (
	"github.com/callmedory/sport-project/internal/model"
)

// ArticleListItem pairs an article with its author's public info.
type ArticleListItem struct {
	Article model.Article
	Author  model.UserInfo
}

// ArticleList is one page of an ordered article query.
type ArticleList struct {
	PageNumber int
	PageSize   int
	TotalCount int
	Articles   []ArticleListItem
}

// ArticleWithContent is a single article joined with its blob body.
type ArticleWithContent struct {
	Article model.Article
	Author  model.UserInfo
	Content string
}

func (s *ArticleService) page(q model.ArticleQuery) (*ArticleList, error) {
	articles, err := s.articles.List(q)
	if err != nil {
		return nil, wrap(err)
	}

	total, err := s.articles.Count(q)
	if err != nil {
		return nil, wrap(err)
	}

	items, err := s.mapArticles(articles)
	if err != nil {
		return nil, err
	}

	return &ArticleList{
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
		TotalCount: total,
		Articles:   items,
	}, nil
}

func (s *ArticleService) mapArticles(articles []model.Article) ([]ArticleListItem, error) {
	items := make([]ArticleListItem, 0, len(articles))
	for _, a := range articles {
		item := ArticleListItem{Article: a}

		user, err := s.users.GetByID(a.Author)
		if err != nil {
			return nil, wrap(err)
		}
		if user != nil {
			item.Author = user.Info()
		}

		items = append(items, item)
	}
	return items, nil
}

func emptyList(pageNumber, pageSize int) *ArticleList {
	return &ArticleList{PageNumber: pageNumber, PageSize: pageSize, Articles: []ArticleListItem{}}
}

// PublishedArticles lists articles visible to readers.
func (s *ArticleService) PublishedArticles(pageNumber, pageSize int, orderBy string) (*ArticleList, error) {
	return s.page(model.ArticleQuery{
		Status:     model.StatusPublished,
		OrderBy:    orderBy,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})
}

// ArticlesForReview lists articles awaiting moderation.
func (s *ArticleService) ArticlesForReview(pageNumber, pageSize int, orderBy string) (*ArticleList, error) {
	return s.page(model.ArticleQuery{
		Status:     model.StatusReview,
		OrderBy:    orderBy,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})
}

// AuthorArticles lists everything the author has written, any status.
func (s *ArticleService) AuthorArticles(authorID string, pageNumber, pageSize int, orderBy string) (*ArticleList, error) {
	return s.page(model.ArticleQuery{
		Author:     authorID,
		OrderBy:    orderBy,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})
}

// ArticlesByTag lists the articles in the tag's ledger entry. A missing tag
// yields an empty page without touching the article store.
func (s *ArticleService) ArticlesByTag(tagName string, pageNumber, pageSize int, orderBy string) (*ArticleList, error) {
	tag, err := s.tags.Get(tagName)
	if err != nil {
		return nil, err
	}
	if tag == nil || len(tag.ArticleIDs) == 0 {
		return emptyList(pageNumber, pageSize), nil
	}

	return s.page(model.ArticleQuery{
		IDs:        tag.ArticleIDs,
		OrderBy:    orderBy,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})
}

// ArticlesBySport lists published articles in one sport category.
func (s *ArticleService) ArticlesBySport(sport string, pageNumber, pageSize int, orderBy string) (*ArticleList, error) {
	if !model.ValidSport(sport) {
		return nil, fail(MsgInvalidSport)
	}
	return s.page(model.ArticleQuery{
		Status:     model.StatusPublished,
		Sport:      sport,
		OrderBy:    orderBy,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})
}

// SearchByTitle finds published articles whose title contains the substring,
// case-insensitively.
func (s *ArticleService) SearchByTitle(substring string, pageNumber, pageSize int, orderBy string) (*ArticleList, error) {
	return s.page(model.ArticleQuery{
		Status:         model.StatusPublished,
		TitleSubstring: substring,
		OrderBy:        orderBy,
		PageNumber:     pageNumber,
		PageSize:       pageSize,
	})
}

// SearchByTags finds published articles carrying a tag that contains the
// substring, case-insensitively.
func (s *ArticleService) SearchByTags(substring string, pageNumber, pageSize int, orderBy string) (*ArticleList, error) {
	return s.page(model.ArticleQuery{
		Status:       model.StatusPublished,
		TagSubstring: substring,
		OrderBy:      orderBy,
		PageNumber:   pageNumber,
		PageSize:     pageSize,
	})
}

// SearchByAuthorName resolves users whose display name contains the substring
// and lists their published articles.
func (s *ArticleService) SearchByAuthorName(name string, pageNumber, pageSize int, orderBy string) (*ArticleList, error) {
	users, err := s.users.SearchByName(name)
	if err != nil {
		return nil, wrap(err)
	}

	authorIDs := make([]string, 0, len(users))
	for _, u := range users {
		authorIDs = append(authorIDs, u.ID)
	}

	return s.page(model.ArticleQuery{
		Status:     model.StatusPublished,
		Authors:    authorIDs,
		OrderBy:    orderBy,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})
}

// FavoriteArticles lists the user's favorited articles. An empty favorites
// set short-circuits to an empty page.
func (s *ArticleService) FavoriteArticles(userID string, pageNumber, pageSize int, orderBy string) (*ArticleList, error) {
	ids, err := s.favorites.ListIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return emptyList(pageNumber, pageSize), nil
	}

	articles, err := s.articles.List(model.ArticleQuery{
		IDs:        ids,
		OrderBy:    orderBy,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})
	if err != nil {
		return nil, wrap(err)
	}

	items, err := s.mapArticles(articles)
	if err != nil {
		return nil, err
	}

	return &ArticleList{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: len(ids),
		Articles:   items,
	}, nil
}

// GetWithContent loads one article together with its blob body and author
// info.
func (s *ArticleService) GetWithContent(articleID string) (*ArticleWithContent, error) {
	article, err := s.articles.GetByID(articleID)
	if err != nil {
		return nil, wrap(err)
	}
	if article == nil {
		return nil, fail(MsgArticleNotFound)
	}

	content, err := s.blobs.Get(ArticleContainer, articleID)
	if err != nil {
		return nil, wrap(err)
	}

	result := &ArticleWithContent{Article: *article, Content: string(content)}

	user, err := s.users.GetByID(article.Author)
	if err != nil {
		return nil, wrap(err)
	}
	if user != nil {
		result.Author = user.Info()
	}

	return result, nil
}
