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
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type LikeDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	BlogID    sql.NullString `db:"blog_id"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (r *likesRepository) CreateLike(c context.Context, like entity.Like) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         like.ID,
		"user_id":    like.UserID,
		"blog_id":    like.BlogID,
		"created_at": like.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateLike, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateLike")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Blog already liked by user")
			return blogs.ErrAlreadyLiked
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating like")
		return err
	}

	return nil
}

func (r *likesRepository) GetLikeByUserAndBlog(c context.Context, userID, blogID string) (entity.Like, error) {
	requestID := contextPkg.GetRequestID(c)
	var like LikeDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryGetLikeByUserAndBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLikeByUserAndBlog named query preparation err")
		return entity.Like{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&like); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Like{}, blogs.ErrLikeNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLikeByUserAndBlog execution err")
		return entity.Like{}, err
	}

	var createdAt time.Time
	if like.CreatedAt.Valid {
		createdAt = like.CreatedAt.Time
	}

	return entity.Like{
		ID:        like.ID.String,
		UserID:    like.UserID.String,
		BlogID:    like.BlogID.String,
		CreatedAt: createdAt,
	}, nil
}

func (r *likesRepository) DeleteLikeByUserAndBlog(c context.Context, userID, blogID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryDeleteLikeByUserAndBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLikeByUserAndBlog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLikeByUserAndBlog execution err")
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteLikeByUserAndBlog no rows found")
		return blogs.ErrLikeNotFound
	}

	return nil
}

func (r *likesRepository) DeleteLikesByBlogID(c context.Context, blogID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryDeleteLikesByBlogID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLikesByBlogID named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLikesByBlogID execution err")
		return err
	}

	return nil
}
