package blogService

import (
	"context"

	blogs "BlogGolang/internal/api/blog"
	authRepository "BlogGolang/internal/api/auth/repository"
	"BlogGolang/internal/entity"

	"github.com/sirupsen/logrus"
)

func MakeBlogResponse(blog entity.Blog) blogs.BlogResponse {
	return blogs.BlogResponse{
		ID:            blog.ID,
		Title:         blog.Title,
		Slug:          blog.Slug,
		Content:       blog.Content,
		Banner:        blog.Banner,
		Author:        blog.Author,
		Status:        blog.Status,
		ViewsCount:    blog.ViewsCount,
		LikesCount:    blog.LikesCount,
		CommentsCount: blog.CommentsCount,
		CreatedAt:     blog.CreatedAt,
		UpdatedAt:     blog.UpdatedAt,
	}
}

func MakeCommentResponse(comment entity.Comment) blogs.CommentResponse {
	return blogs.CommentResponse{
		ID:        comment.ID,
		BlogID:    comment.BlogID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

// callerIsAdmin resolves the caller's stored role. Unknown callers are
// treated as plain users rather than failing the read path.
func callerIsAdmin(c context.Context, log *logrus.Logger, authRepo authRepository.Repository, caller entity.UserLoginData) bool {
	repo, err := authRepo.NewClient(false)
	if err != nil {
		log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to create auth repository client")
		return false
	}

	user, err := repo.Users.GetByID(c, caller.ID)
	if err != nil {
		log.WithFields(logrus.Fields{
			"user_id": caller.ID,
			"error":   err.Error(),
		}).Warn("Failed to resolve caller role")
		return false
	}

	return user.IsAdmin()
}
