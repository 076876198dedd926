package blogService

import (
	"context"
	"mime/multipart"

	blogs "BlogGolang/internal/api/blog"
	blogRepository "BlogGolang/internal/api/blog/repository"
	authRepository "BlogGolang/internal/api/auth/repository"
	"BlogGolang/internal/entity"
	"BlogGolang/pkg/s3"
	"BlogGolang/pkg/sanitizer"
	"BlogGolang/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	Blog() BlogDomain
	Comment() CommentDomain
	Like() LikeDomain
}

type BlogDomain interface {
	CreateBlog(ctx context.Context, caller entity.UserLoginData, req blogs.CreateBlogRequest, bannerFile *multipart.FileHeader) (blogs.BlogResponse, error)
	GetBlogs(ctx context.Context, caller entity.UserLoginData, limit, offset int) (blogs.BlogListResponse, error)
	GetBlogsByAuthor(ctx context.Context, caller entity.UserLoginData, authorID string, limit, offset int) (blogs.BlogListResponse, error)
	GetBlogBySlug(ctx context.Context, caller entity.UserLoginData, slug string) (blogs.BlogResponse, error)
	UpdateBlog(ctx context.Context, caller entity.UserLoginData, blogID string, req blogs.UpdateBlogRequest, bannerFile *multipart.FileHeader) (blogs.BlogResponse, error)
	DeleteBlog(ctx context.Context, caller entity.UserLoginData, blogID string) error
}

type CommentDomain interface {
	CreateComment(ctx context.Context, caller entity.UserLoginData, blogID string, req blogs.CreateCommentRequest) (blogs.CommentResponse, error)
	GetComments(ctx context.Context, blogID string) (blogs.CommentListResponse, error)
	DeleteComment(ctx context.Context, caller entity.UserLoginData, commentID string) error
}

type LikeDomain interface {
	LikeBlog(ctx context.Context, caller entity.UserLoginData, blogID string) (blogs.LikeResponse, error)
	UnlikeBlog(ctx context.Context, caller entity.UserLoginData, blogID string) (blogs.LikeResponse, error)
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogRepository.Repository
	authRepo  authRepository.Repository
	s3Client  s3.ItfS3
	utils     utils.IUtils
	sanitizer sanitizer.ISanitizer

	blogDomain    BlogDomain
	commentDomain CommentDomain
	likeDomain    LikeDomain
}

func (s *blogsService) Blog() BlogDomain {
	return s.blogDomain
}

func (s *blogsService) Comment() CommentDomain {
	return s.commentDomain
}

func (s *blogsService) Like() LikeDomain {
	return s.likeDomain
}

type blogDomainImpl struct {
	log       *logrus.Logger
	repo      blogRepository.Repository
	authRepo  authRepository.Repository
	s3Client  s3.ItfS3
	utils     utils.IUtils
	sanitizer sanitizer.ISanitizer
}

type commentDomainImpl struct {
	log       *logrus.Logger
	repo      blogRepository.Repository
	authRepo  authRepository.Repository
	utils     utils.IUtils
	sanitizer sanitizer.ISanitizer
}

type likeDomainImpl struct {
	log   *logrus.Logger
	repo  blogRepository.Repository
	utils utils.IUtils
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogRepository.Repository,
	authRepo authRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
	sanitizer sanitizer.ISanitizer,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		authRepo:  authRepo,
		s3Client:  s3Client,
		utils:     utils,
		sanitizer: sanitizer,

		blogDomain:    &blogDomainImpl{log: log, repo: blogsRepo, authRepo: authRepo, s3Client: s3Client, utils: utils, sanitizer: sanitizer},
		commentDomain: &commentDomainImpl{log: log, repo: blogsRepo, authRepo: authRepo, utils: utils, sanitizer: sanitizer},
		likeDomain:    &likeDomainImpl{log: log, repo: blogsRepo, utils: utils},
	}
}
