package entity

import "time"

type Comment struct {
	ID        string    `db:"id"`
	BlogID    string    `db:"blog_id"`
	UserID    string    `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}
