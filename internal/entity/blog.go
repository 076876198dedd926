package entity

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Banner is the blog cover image, stored in external object storage
// with its metadata cached on the blog record.
type Banner struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Blog struct {
	ID            string    `db:"id"`
	Title         string    `db:"title"`
	Slug          string    `db:"slug"`
	Content       string    `db:"content"`
	Banner        Banner    `db:"-"`
	Author        string    `db:"author"`
	Status        string    `db:"status"`
	ViewsCount    int       `db:"views_count"`
	LikesCount    int       `db:"likes_count"`
	CommentsCount int       `db:"comments_count"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
