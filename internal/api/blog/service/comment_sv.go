package blogService

import (
	"time"

	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *commentDomainImpl) CreateComment(ctx context.Context, caller entity.UserLoginData, blogID string, req blogs.CreateCommentRequest) (blogs.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.CommentResponse{}, err
	}
	defer repo.Rollback()

	if _, err := repo.Blogs.GetBlogByID(ctx, blogID); err != nil {
		return blogs.CommentResponse{}, err
	}

	commentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.CommentResponse{}, err
	}

	comment := entity.Comment{
		ID:        commentID,
		BlogID:    blogID,
		UserID:    caller.ID,
		Content:   s.sanitizer.Sanitize(req.Content),
		CreatedAt: time.Now(),
	}

	if err := repo.Comments.CreateComment(ctx, comment); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create comment")
		return blogs.CommentResponse{}, err
	}

	if err := repo.Blogs.AddCommentsCount(ctx, blogID, 1); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to bump comments count")
		return blogs.CommentResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.CommentResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blogID,
		"comment_id": commentID,
	}).Info("Comment created")

	return MakeCommentResponse(comment), nil
}

func (s *commentDomainImpl) GetComments(ctx context.Context, blogID string) (blogs.CommentListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.CommentListResponse{}, err
	}

	if _, err := repo.Blogs.GetBlogByID(ctx, blogID); err != nil {
		return blogs.CommentListResponse{}, err
	}

	comments, err := repo.Comments.GetCommentsByBlogID(ctx, blogID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to get comments")
		return blogs.CommentListResponse{}, err
	}

	res := blogs.CommentListResponse{
		Total:    len(comments),
		Comments: make([]blogs.CommentResponse, 0, len(comments)),
	}
	for _, comment := range comments {
		res.Comments = append(res.Comments, MakeCommentResponse(comment))
	}

	return res, nil
}

func (s *commentDomainImpl) DeleteComment(ctx context.Context, caller entity.UserLoginData, commentID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	comment, err := repo.Comments.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != caller.ID && !callerIsAdmin(ctx, s.log, s.authRepo, caller) {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"comment_id":     commentID,
			"comment_author": comment.UserID,
			"request_user":   caller.ID,
		}).Warn("User is not the author of the comment")
		return blogs.ErrCommentNotOwned
	}

	if err := repo.Comments.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	if err := repo.Blogs.AddCommentsCount(ctx, comment.BlogID, -1); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to drop comments count")
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	return nil
}
