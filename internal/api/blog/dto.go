package blogs

import (
	"time"

	"BlogGolang/internal/entity"
)

type CreateBlogRequest struct {
	Title   string `json:"title" validate:"required,min=3,max=100"`
	Content string `json:"content" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=draft published"`
}

type UpdateBlogRequest struct {
	Title   string `json:"title" validate:"omitempty,min=3,max=100"`
	Content string `json:"content" validate:"omitempty"`
	Status  string `json:"status" validate:"omitempty,oneof=draft published"`
}

type BlogResponse struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Content       string        `json:"content"`
	Banner        entity.Banner `json:"banner"`
	Author        string        `json:"author"`
	Status        string        `json:"status"`
	ViewsCount    int           `json:"views_count"`
	LikesCount    int           `json:"likes_count"`
	CommentsCount int           `json:"comments_count"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type BlogListResponse struct {
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
	Total  int            `json:"total"`
	Blogs  []BlogResponse `json:"blogs"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	BlogID    string    `json:"blog_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentListResponse struct {
	Total    int               `json:"total"`
	Comments []CommentResponse `json:"comments"`
}

type LikeResponse struct {
	BlogID     string `json:"blog_id"`
	LikesCount int    `json:"likes_count"`
}
