package blogRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID            sql.NullString `db:"id"`
	Title         sql.NullString `db:"title"`
	Slug          sql.NullString `db:"slug"`
	Content       sql.NullString `db:"content"`
	BannerID      sql.NullString `db:"banner_id"`
	BannerURL     sql.NullString `db:"banner_url"`
	BannerWidth   sql.NullInt64  `db:"banner_width"`
	BannerHeight  sql.NullInt64  `db:"banner_height"`
	Author        sql.NullString `db:"author"`
	Status        sql.NullString `db:"status"`
	ViewsCount    sql.NullInt64  `db:"views_count"`
	LikesCount    sql.NullInt64  `db:"likes_count"`
	CommentsCount sql.NullInt64  `db:"comments_count"`
	CreatedAt     sql.NullTime   `db:"created_at"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
}

func (r *blogsRepository) CreateBlog(c context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             blog.ID,
		"title":          blog.Title,
		"slug":           blog.Slug,
		"content":        blog.Content,
		"banner_id":      blog.Banner.ID,
		"banner_url":     blog.Banner.URL,
		"banner_width":   blog.Banner.Width,
		"banner_height":  blog.Banner.Height,
		"author":         blog.Author,
		"status":         blog.Status,
		"views_count":    blog.ViewsCount,
		"likes_count":    blog.LikesCount,
		"comments_count": blog.CommentsCount,
		"created_at":     blog.CreatedAt,
		"updated_at":     blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(c context.Context, id string) (entity.Blog, error) {
	return r.getBlog(c, queryGetBlogByID, map[string]interface{}{"id": id}, "GetBlogByID")
}

func (r *blogsRepository) GetBlogBySlug(c context.Context, slug string) (entity.Blog, error) {
	return r.getBlog(c, queryGetBlogBySlug, map[string]interface{}{"slug": slug}, "GetBlogBySlug")
}

func (r *blogsRepository) getBlog(c context.Context, namedQuery string, argsKV map[string]interface{}, op string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(c)
	var blog BlogDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn(op + " no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return entity.Blog{}, err
	}

	return r.makeBlog(blog), nil
}

func (r *blogsRepository) GetAllBlogs(c context.Context, limit, offset int) ([]entity.Blog, int, error) {
	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}
	return r.listBlogs(c, queryGetAllBlogs, queryCountAllBlogs, argsKV, "GetAllBlogs")
}

func (r *blogsRepository) GetVisibleBlogs(c context.Context, viewerID string, limit, offset int) ([]entity.Blog, int, error) {
	argsKV := map[string]interface{}{
		"viewer_id": viewerID,
		"limit":     limit,
		"offset":    offset,
	}
	return r.listBlogs(c, queryGetVisibleBlogs, queryCountVisibleBlogs, argsKV, "GetVisibleBlogs")
}

func (r *blogsRepository) GetBlogsByAuthor(c context.Context, authorID string, limit, offset int) ([]entity.Blog, int, error) {
	argsKV := map[string]interface{}{
		"author": authorID,
		"limit":  limit,
		"offset": offset,
	}
	return r.listBlogs(c, queryGetBlogsByAuthor, queryCountBlogsByAuthor, argsKV, "GetBlogsByAuthor")
}

func (r *blogsRepository) GetPublishedBlogsByAuthor(c context.Context, authorID string, limit, offset int) ([]entity.Blog, int, error) {
	argsKV := map[string]interface{}{
		"author": authorID,
		"limit":  limit,
		"offset": offset,
	}
	return r.listBlogs(c, queryGetPublishedBlogsByAuthor, queryCountPublishedBlogsByAuthor, argsKV, "GetPublishedBlogsByAuthor")
}

func (r *blogsRepository) listBlogs(c context.Context, listQuery, countQuery string, argsKV map[string]interface{}, op string) ([]entity.Blog, int, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(listQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]entity.Blog, 0)
	for rows.Next() {
		var blog BlogDB
		if err := rows.StructScan(&blog); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error(op + " row scan err")
			return nil, 0, err
		}
		list = append(list, r.makeBlog(blog))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// count arguments are the list arguments minus pagination
	countArgs := make(map[string]interface{}, len(argsKV))
	for k, v := range argsKV {
		if k == "limit" || k == "offset" {
			continue
		}
		countArgs[k] = v
	}

	var total int
	if len(countArgs) == 0 {
		err = r.q.QueryRowxContext(c, r.q.Rebind(countQuery)).Scan(&total)
	} else {
		var cq string
		var cargs []interface{}
		cq, cargs, err = sqlx.Named(countQuery, countArgs)
		if err == nil {
			cq = r.q.Rebind(cq)
			err = r.q.QueryRowxContext(c, cq, cargs...).Scan(&total)
		}
	}
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " count err")
		return nil, 0, err
	}

	return list, total, nil
}

func (r *blogsRepository) UpdateBlog(c context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            blog.ID,
		"title":         blog.Title,
		"slug":          blog.Slug,
		"content":       blog.Content,
		"banner_id":     blog.Banner.ID,
		"banner_url":    blog.Banner.URL,
		"banner_width":  blog.Banner.Width,
		"banner_height": blog.Banner.Height,
		"status":        blog.Status,
		"updated_at":    time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog execution err")
		return err
	}

	return nil
}

func (r *blogsRepository) DeleteBlog(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog execution err")
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteBlog no rows found")
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) AddViewsCount(c context.Context, id string, delta int) error {
	return r.addCounter(c, queryAddViewsCount, id, delta, "AddViewsCount")
}

func (r *blogsRepository) AddLikesCount(c context.Context, id string, delta int) error {
	return r.addCounter(c, queryAddLikesCount, id, delta, "AddLikesCount")
}

func (r *blogsRepository) AddCommentsCount(c context.Context, id string, delta int) error {
	return r.addCounter(c, queryAddCommentsCount, id, delta, "AddCommentsCount")
}

func (r *blogsRepository) addCounter(c context.Context, namedQuery, id string, delta int, op string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":    id,
		"delta": delta,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn(op + " no rows found")
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) makeBlog(blog BlogDB) entity.Blog {
	var createdAt, updatedAt time.Time

	if blog.CreatedAt.Valid {
		createdAt = blog.CreatedAt.Time
	}

	if blog.UpdatedAt.Valid {
		updatedAt = blog.UpdatedAt.Time
	}

	return entity.Blog{
		ID:      blog.ID.String,
		Title:   blog.Title.String,
		Slug:    blog.Slug.String,
		Content: blog.Content.String,
		Banner: entity.Banner{
			ID:     blog.BannerID.String,
			URL:    blog.BannerURL.String,
			Width:  int(blog.BannerWidth.Int64),
			Height: int(blog.BannerHeight.Int64),
		},
		Author:        blog.Author.String,
		Status:        blog.Status.String,
		ViewsCount:    int(blog.ViewsCount.Int64),
		LikesCount:    int(blog.LikesCount.Int64),
		CommentsCount: int(blog.CommentsCount.Int64),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
