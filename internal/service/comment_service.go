package service

import (
	"time"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/google/uuid"
)

type CommentService struct {
	comments CommentStore
	articles ArticleStore
	users    UserStore
}

func NewCommentService(comments CommentStore, articles ArticleStore, users UserStore) *CommentService {
	return &CommentService{comments: comments, articles: articles, users: users}
}

// CommentView is a comment joined with its author's public info.
type CommentView struct {
	CommentID string
	Author    model.UserInfo
	Content   string
	CreatedAt time.Time
}

type CommentList struct {
	PageNumber int
	PageSize   int
	TotalCount int
	Comments   []CommentView
}

// ListByArticle pages an article's comments newest-first with author names.
func (s *CommentService) ListByArticle(articleID string, pageNumber, pageSize int) (*CommentList, error) {
	total, err := s.comments.CountByArticle(articleID)
	if err != nil {
		return nil, wrap(err)
	}

	comments, err := s.comments.ListByArticle(articleID, pageNumber, pageSize)
	if err != nil {
		return nil, wrap(err)
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		view := CommentView{CommentID: c.ID, Content: c.Content, CreatedAt: c.CreatedAt}

		user, err := s.users.GetByID(c.Author)
		if err != nil {
			return nil, wrap(err)
		}
		if user != nil {
			view.Author = user.Info()
		}

		views = append(views, view)
	}

	return &CommentList{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: total,
		Comments:   views,
	}, nil
}

// Add attaches a comment to an existing article.
func (s *CommentService) Add(articleID, userID, content string) (*CommentView, error) {
	article, err := s.articles.GetByID(articleID)
	if err != nil {
		return nil, wrap(err)
	}
	if article == nil {
		return nil, fail(MsgArticleNotFound)
	}

	comment := &model.Comment{
		ID:        uuid.NewString(),
		ArticleID: articleID,
		Author:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, wrap(err)
	}

	view := &CommentView{CommentID: comment.ID, Content: comment.Content, CreatedAt: comment.CreatedAt}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, wrap(err)
	}
	if user != nil {
		view.Author = user.Info()
	}

	return view, nil
}

// Delete removes a comment. Only its author or a SuperAdmin may delete it.
func (s *CommentService) Delete(commentID, userID string) error {
	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		return wrap(err)
	}
	if comment == nil {
		return fail(MsgCommentNotFound)
	}

	if comment.Author != userID {
		user, err := s.users.GetByID(userID)
		if err != nil {
			return wrap(err)
		}
		if user == nil || user.UserRole != model.RoleSuperAdmin {
			return fail(MsgCommentNotYours)
		}
	}

	return wrap(s.comments.Delete(commentID))
}
