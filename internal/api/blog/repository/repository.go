package blogRepository

import (
	"BlogGolang/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:    &blogsRepository{q: sqlExecutor, log: r.log},
		Comments: &commentsRepository{q: sqlExecutor, log: r.log},
		Likes:    &likesRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
		GetBlogBySlug(ctx context.Context, slug string) (entity.Blog, error)
		GetAllBlogs(ctx context.Context, limit, offset int) ([]entity.Blog, int, error)
		GetVisibleBlogs(ctx context.Context, viewerID string, limit, offset int) ([]entity.Blog, int, error)
		GetBlogsByAuthor(ctx context.Context, authorID string, limit, offset int) ([]entity.Blog, int, error)
		GetPublishedBlogsByAuthor(ctx context.Context, authorID string, limit, offset int) ([]entity.Blog, int, error)
		UpdateBlog(ctx context.Context, blog entity.Blog) error
		DeleteBlog(ctx context.Context, id string) error
		AddViewsCount(ctx context.Context, id string, delta int) error
		AddLikesCount(ctx context.Context, id string, delta int) error
		AddCommentsCount(ctx context.Context, id string, delta int) error
	}

	Comments interface {
		CreateComment(ctx context.Context, comment entity.Comment) error
		GetCommentByID(ctx context.Context, id string) (entity.Comment, error)
		GetCommentsByBlogID(ctx context.Context, blogID string) ([]entity.Comment, error)
		DeleteComment(ctx context.Context, id string) error
		DeleteCommentsByBlogID(ctx context.Context, blogID string) error
	}

	Likes interface {
		CreateLike(ctx context.Context, like entity.Like) error
		GetLikeByUserAndBlog(ctx context.Context, userID, blogID string) (entity.Like, error)
		DeleteLikeByUserAndBlog(ctx context.Context, userID, blogID string) error
		DeleteLikesByBlogID(ctx context.Context, blogID string) error
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type commentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type likesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
