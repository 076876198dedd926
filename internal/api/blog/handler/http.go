package blogHandler

import (
	blogsService "BlogGolang/internal/api/blog/service"
	"BlogGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogsService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs", h.middleware.NewTokenMiddleware)

	blogs.Post("/create", h.CreateBlog)
	blogs.Get("/", h.GetBlogs)
	blogs.Get("/user/:userId", h.GetBlogsByAuthor)

	blogs.Post("/like/:blogId", h.LikeBlog)
	blogs.Delete("/like/:blogId", h.UnlikeBlog)

	blogs.Post("/comment/:blogId", h.CreateComment)
	blogs.Get("/comment/:blogId", h.GetComments)
	blogs.Delete("/comment/:commentId", h.DeleteComment)

	// slug route goes last so the fixed prefixes above keep winning
	blogs.Get("/:slug", h.GetBlogBySlug)
	blogs.Put("/:blogId", h.UpdateBlog)
	blogs.Delete("/:blogId", h.DeleteBlog)
}
