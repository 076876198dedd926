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

type CommentDB struct {
	ID        sql.NullString `db:"id"`
	BlogID    sql.NullString `db:"blog_id"`
	UserID    sql.NullString `db:"user_id"`
	Content   sql.NullString `db:"content"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (r *commentsRepository) CreateComment(c context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         comment.ID,
		"blog_id":    comment.BlogID,
		"user_id":    comment.UserID,
		"content":    comment.Content,
		"created_at": comment.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateComment")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentsRepository) GetCommentByID(c context.Context, id string) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(c)
	var comment CommentDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCommentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID named query preparation err")
		return entity.Comment{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetCommentByID no rows found")
			return entity.Comment{}, blogs.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID execution err")
		return entity.Comment{}, err
	}

	return r.makeComment(comment), nil
}

func (r *commentsRepository) GetCommentsByBlogID(c context.Context, blogID string) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryGetCommentsByBlogID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByBlogID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByBlogID execution err")
		return nil, err
	}
	defer rows.Close()

	comments := make([]entity.Comment, 0)
	for rows.Next() {
		var comment CommentDB
		if err := rows.StructScan(&comment); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("GetCommentsByBlogID row scan err")
			return nil, err
		}
		comments = append(comments, r.makeComment(comment))
	}

	return comments, rows.Err()
}

func (r *commentsRepository) DeleteComment(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment execution err")
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteComment no rows found")
		return blogs.ErrCommentNotFound
	}

	return nil
}

func (r *commentsRepository) DeleteCommentsByBlogID(c context.Context, blogID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryDeleteCommentsByBlogID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCommentsByBlogID named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCommentsByBlogID execution err")
		return err
	}

	return nil
}

func (r *commentsRepository) makeComment(comment CommentDB) entity.Comment {
	var createdAt time.Time
	if comment.CreatedAt.Valid {
		createdAt = comment.CreatedAt.Time
	}

	return entity.Comment{
		ID:        comment.ID.String,
		BlogID:    comment.BlogID.String,
		UserID:    comment.UserID.String,
		Content:   comment.Content.String,
		CreatedAt: createdAt,
	}
}
