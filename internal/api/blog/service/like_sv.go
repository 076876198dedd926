package blogService

import (
	"time"

	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *likeDomainImpl) LikeBlog(ctx context.Context, caller entity.UserLoginData, blogID string) (blogs.LikeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.LikeResponse{}, err
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.GetBlogByID(ctx, blogID)
	if err != nil {
		return blogs.LikeResponse{}, err
	}

	likeID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.LikeResponse{}, err
	}

	like := entity.Like{
		ID:        likeID,
		UserID:    caller.ID,
		BlogID:    blogID,
		CreatedAt: time.Now(),
	}

	// the unique (user_id, blog_id) index turns a double like into a
	// conflict here, the counter bump below never runs for it
	if err := repo.Likes.CreateLike(ctx, like); err != nil {
		return blogs.LikeResponse{}, err
	}

	if err := repo.Blogs.AddLikesCount(ctx, blogID, 1); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to bump likes count")
		return blogs.LikeResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.LikeResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blogID,
		"user_id":    caller.ID,
	}).Info("Blog liked")

	return blogs.LikeResponse{
		BlogID:     blogID,
		LikesCount: blog.LikesCount + 1,
	}, nil
}

func (s *likeDomainImpl) UnlikeBlog(ctx context.Context, caller entity.UserLoginData, blogID string) (blogs.LikeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.LikeResponse{}, err
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.GetBlogByID(ctx, blogID)
	if err != nil {
		return blogs.LikeResponse{}, err
	}

	if err := repo.Likes.DeleteLikeByUserAndBlog(ctx, caller.ID, blogID); err != nil {
		return blogs.LikeResponse{}, err
	}

	if err := repo.Blogs.AddLikesCount(ctx, blogID, -1); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to drop likes count")
		return blogs.LikeResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.LikeResponse{}, err
	}

	count := blog.LikesCount - 1
	if count < 0 {
		count = 0
	}

	return blogs.LikeResponse{
		BlogID:     blogID,
		LikesCount: count,
	}, nil
}
