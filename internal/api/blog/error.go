package blogs

import (
	"BlogGolang/pkg/response"
	"net/http"
)

var (
	ErrBlogNotFound      = response.NewError(http.StatusNotFound, "blog not found")
	ErrBlogNotOwned      = response.NewError(http.StatusForbidden, "you are not the author of this blog")
	ErrDraftNotVisible   = response.NewError(http.StatusForbidden, "blog is not published")
	ErrAlreadyLiked      = response.NewError(http.StatusConflict, "blog already liked")
	ErrLikeNotFound      = response.NewError(http.StatusNotFound, "like not found")
	ErrCommentNotFound   = response.NewError(http.StatusNotFound, "comment not found")
	ErrCommentNotOwned   = response.NewError(http.StatusForbidden, "you are not the author of this comment")
	ErrBannerRequired    = response.NewError(http.StatusBadRequest, "banner image is required")
	ErrInvalidBannerFile = response.NewError(http.StatusBadRequest, "banner must be an image of at most 2MB")
	ErrFailedToUpload    = response.NewError(http.StatusInternalServerError, "failed to upload banner")
	ErrCreateBlog        = response.NewError(http.StatusInternalServerError, "failed to create blog")
	ErrUpdateBlog        = response.NewError(http.StatusInternalServerError, "failed to update blog")
	ErrDeleteBlog        = response.NewError(http.StatusInternalServerError, "failed to delete blog")
)
