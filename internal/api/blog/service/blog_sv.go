package blogService

import (
	"errors"
	"mime/multipart"
	"os"
	"time"

	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"BlogGolang/pkg/s3"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogDomainImpl) uploadBanner(ctx context.Context, bannerFile *multipart.FileHeader) (s3.Asset, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateImageFile(bannerFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid banner file")
		return s3.Asset{}, blogs.ErrInvalidBannerFile
	}

	localPath, err := s.utils.SaveTempFile(bannerFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save banner to temp file")
		return s3.Asset{}, blogs.ErrFailedToUpload
	}

	asset, err := s.s3Client.UploadFile(localPath)
	if err != nil {
		os.Remove(localPath)
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload banner")
		return s3.Asset{}, blogs.ErrFailedToUpload
	}

	return asset, nil
}

func (s *blogDomainImpl) deleteRemoteBanner(requestID string, banner entity.Banner) {
	if banner.URL == "" {
		return
	}

	key := s3.ExtractKey(banner.URL)
	go func() {
		if err := s.s3Client.DeleteFile(key); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"key":        key,
				"error":      err.Error(),
			}).Warn("Failed to delete remote banner")
		}
	}()
}

func (s *blogDomainImpl) CreateBlog(ctx context.Context, caller entity.UserLoginData, req blogs.CreateBlogRequest, bannerFile *multipart.FileHeader) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if bannerFile == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Create blog without banner")
		return blogs.BlogResponse{}, blogs.ErrBannerRequired
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}
	defer repo.Rollback()

	asset, err := s.uploadBanner(ctx, bannerFile)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.BlogResponse{}, err
	}

	now := time.Now()

	blog := entity.Blog{
		ID:      blogID,
		Title:   req.Title,
		Slug:    s.utils.NewSlug(req.Title),
		Content: s.sanitizer.Sanitize(req.Content),
		Banner: entity.Banner{
			ID:     asset.ID,
			URL:    asset.URL,
			Width:  asset.Width,
			Height: asset.Height,
		},
		Author:    caller.ID,
		Status:    req.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blogID,
		"author":     caller.ID,
	}).Info("Blog created")

	return MakeBlogResponse(blog), nil
}

func (s *blogDomainImpl) GetBlogs(ctx context.Context, caller entity.UserLoginData, limit, offset int) (blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogListResponse{}, err
	}

	var list []entity.Blog
	var total int
	if callerIsAdmin(ctx, s.log, s.authRepo, caller) {
		list, total, err = repo.Blogs.GetAllBlogs(ctx, limit, offset)
	} else {
		list, total, err = repo.Blogs.GetVisibleBlogs(ctx, caller.ID, limit, offset)
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return blogs.BlogListResponse{}, err
	}

	return makeBlogList(list, total, limit, offset), nil
}

func (s *blogDomainImpl) GetBlogsByAuthor(ctx context.Context, caller entity.UserLoginData, authorID string, limit, offset int) (blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogListResponse{}, err
	}

	var list []entity.Blog
	var total int
	if caller.ID == authorID || callerIsAdmin(ctx, s.log, s.authRepo, caller) {
		list, total, err = repo.Blogs.GetBlogsByAuthor(ctx, authorID, limit, offset)
	} else {
		list, total, err = repo.Blogs.GetPublishedBlogsByAuthor(ctx, authorID, limit, offset)
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"author":     authorID,
			"error":      err.Error(),
		}).Error("Failed to get blogs by author")
		return blogs.BlogListResponse{}, err
	}

	return makeBlogList(list, total, limit, offset), nil
}

func makeBlogList(list []entity.Blog, total, limit, offset int) blogs.BlogListResponse {
	res := blogs.BlogListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Blogs:  make([]blogs.BlogResponse, 0, len(list)),
	}
	for _, blog := range list {
		res.Blogs = append(res.Blogs, MakeBlogResponse(blog))
	}
	return res
}

func (s *blogDomainImpl) GetBlogBySlug(ctx context.Context, caller entity.UserLoginData, slug string) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	blog, err := repo.Blogs.GetBlogBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"slug":       slug,
			}).Warn("Blog not found")
		}
		return blogs.BlogResponse{}, err
	}

	if blog.Status == entity.StatusDraft && blog.Author != caller.ID && !callerIsAdmin(ctx, s.log, s.authRepo, caller) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       slug,
			"viewer":     caller.ID,
		}).Warn("Draft blog requested by non-author")
		return blogs.BlogResponse{}, blogs.ErrDraftNotVisible
	}

	// view counting is best effort, a failed bump never blocks the read
	if err := repo.Blogs.AddViewsCount(ctx, blog.ID, 1); err == nil {
		blog.ViewsCount++
	}

	return MakeBlogResponse(blog), nil
}

func (s *blogDomainImpl) UpdateBlog(ctx context.Context, caller entity.UserLoginData, blogID string, req blogs.UpdateBlogRequest, bannerFile *multipart.FileHeader) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.GetBlogByID(ctx, blogID)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	if blog.Author != caller.ID && !callerIsAdmin(ctx, s.log, s.authRepo, caller) {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"blog_id":      blogID,
			"blog_author":  blog.Author,
			"request_user": caller.ID,
		}).Warn("User is not the author of the blog")
		return blogs.BlogResponse{}, blogs.ErrBlogNotOwned
	}

	if req.Title != "" {
		blog.Title = req.Title
	}
	if req.Content != "" {
		blog.Content = s.sanitizer.Sanitize(req.Content)
	}
	if req.Status != "" {
		blog.Status = req.Status
	}

	oldBanner := blog.Banner
	if bannerFile != nil {
		asset, err := s.uploadBanner(ctx, bannerFile)
		if err != nil {
			return blogs.BlogResponse{}, err
		}

		blog.Banner = entity.Banner{
			ID:     asset.ID,
			URL:    asset.URL,
			Width:  asset.Width,
			Height: asset.Height,
		}
	}

	blog.UpdatedAt = time.Now()

	if err := repo.Blogs.UpdateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return blogs.BlogResponse{}, blogs.ErrUpdateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.BlogResponse{}, blogs.ErrUpdateBlog
	}

	// the replaced asset is removed only once the new one is committed
	if bannerFile != nil && oldBanner.URL != blog.Banner.URL {
		s.deleteRemoteBanner(requestID, oldBanner)
	}

	return MakeBlogResponse(blog), nil
}

func (s *blogDomainImpl) DeleteBlog(ctx context.Context, caller entity.UserLoginData, blogID string) error {
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

	blog, err := repo.Blogs.GetBlogByID(ctx, blogID)
	if err != nil {
		return err
	}

	if blog.Author != caller.ID && !callerIsAdmin(ctx, s.log, s.authRepo, caller) {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"blog_id":      blogID,
			"blog_author":  blog.Author,
			"request_user": caller.ID,
		}).Warn("User is not the author of the blog")
		return blogs.ErrBlogNotOwned
	}

	// comments and likes go with the blog in the same transaction
	if err := repo.Comments.DeleteCommentsByBlogID(ctx, blogID); err != nil {
		return blogs.ErrDeleteBlog
	}
	if err := repo.Likes.DeleteLikesByBlogID(ctx, blogID); err != nil {
		return blogs.ErrDeleteBlog
	}
	if err := repo.Blogs.DeleteBlog(ctx, blogID); err != nil {
		return blogs.ErrDeleteBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrDeleteBlog
	}

	s.deleteRemoteBanner(requestID, blog.Banner)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blogID,
	}).Info("Blog deleted")

	return nil
}
