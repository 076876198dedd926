package entity

import "time"

// Like references exactly one of blog or comment. The comment side is
// schema capability only, nothing writes it yet.
type Like struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	BlogID    string    `db:"blog_id"`
	CommentID string    `db:"comment_id"`
	CreatedAt time.Time `db:"created_at"`
}
