package blogService

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"BlogGolang/internal/api/auth"
	authRepository "BlogGolang/internal/api/auth/repository"
	blogs "BlogGolang/internal/api/blog"
	blogRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/internal/entity"
	"BlogGolang/pkg/s3"
	"BlogGolang/pkg/sanitizer"
	"BlogGolang/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlogStore struct {
	blogs    map[string]entity.Blog
	comments map[string]entity.Comment
	likes    map[string]entity.Like
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{
		blogs:    map[string]entity.Blog{},
		comments: map[string]entity.Comment{},
		likes:    map[string]entity.Like{},
	}
}

func likeKey(userID, blogID string) string {
	return userID + "|" + blogID
}

func (f *fakeBlogStore) CreateBlog(_ context.Context, blog entity.Blog) error {
	f.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogStore) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	blog, ok := f.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	return blog, nil
}

func (f *fakeBlogStore) GetBlogBySlug(_ context.Context, slug string) (entity.Blog, error) {
	for _, blog := range f.blogs {
		if blog.Slug == slug {
			return blog, nil
		}
	}
	return entity.Blog{}, blogs.ErrBlogNotFound
}

func (f *fakeBlogStore) listWhere(keep func(entity.Blog) bool, limit, offset int) ([]entity.Blog, int, error) {
	var all []entity.Blog
	for _, blog := range f.blogs {
		if keep(blog) {
			all = append(all, blog)
		}
	}
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (f *fakeBlogStore) GetAllBlogs(_ context.Context, limit, offset int) ([]entity.Blog, int, error) {
	return f.listWhere(func(entity.Blog) bool { return true }, limit, offset)
}

func (f *fakeBlogStore) GetVisibleBlogs(_ context.Context, viewerID string, limit, offset int) ([]entity.Blog, int, error) {
	return f.listWhere(func(b entity.Blog) bool {
		return b.Status == entity.StatusPublished || b.Author == viewerID
	}, limit, offset)
}

func (f *fakeBlogStore) GetBlogsByAuthor(_ context.Context, authorID string, limit, offset int) ([]entity.Blog, int, error) {
	return f.listWhere(func(b entity.Blog) bool { return b.Author == authorID }, limit, offset)
}

func (f *fakeBlogStore) GetPublishedBlogsByAuthor(_ context.Context, authorID string, limit, offset int) ([]entity.Blog, int, error) {
	return f.listWhere(func(b entity.Blog) bool {
		return b.Author == authorID && b.Status == entity.StatusPublished
	}, limit, offset)
}

func (f *fakeBlogStore) UpdateBlog(_ context.Context, blog entity.Blog) error {
	if _, ok := f.blogs[blog.ID]; !ok {
		return blogs.ErrBlogNotFound
	}
	f.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogStore) DeleteBlog(_ context.Context, id string) error {
	if _, ok := f.blogs[id]; !ok {
		return blogs.ErrBlogNotFound
	}
	delete(f.blogs, id)
	return nil
}

func (f *fakeBlogStore) addCounter(id string, bump func(*entity.Blog)) error {
	blog, ok := f.blogs[id]
	if !ok {
		return blogs.ErrBlogNotFound
	}
	bump(&blog)
	f.blogs[id] = blog
	return nil
}

func (f *fakeBlogStore) AddViewsCount(_ context.Context, id string, delta int) error {
	return f.addCounter(id, func(b *entity.Blog) { b.ViewsCount = clamp(b.ViewsCount + delta) })
}

func (f *fakeBlogStore) AddLikesCount(_ context.Context, id string, delta int) error {
	return f.addCounter(id, func(b *entity.Blog) { b.LikesCount = clamp(b.LikesCount + delta) })
}

func (f *fakeBlogStore) AddCommentsCount(_ context.Context, id string, delta int) error {
	return f.addCounter(id, func(b *entity.Blog) { b.CommentsCount = clamp(b.CommentsCount + delta) })
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func (f *fakeBlogStore) CreateComment(_ context.Context, comment entity.Comment) error {
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeBlogStore) GetCommentByID(_ context.Context, id string) (entity.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return entity.Comment{}, blogs.ErrCommentNotFound
	}
	return comment, nil
}

func (f *fakeBlogStore) GetCommentsByBlogID(_ context.Context, blogID string) ([]entity.Comment, error) {
	var list []entity.Comment
	for _, comment := range f.comments {
		if comment.BlogID == blogID {
			list = append(list, comment)
		}
	}
	return list, nil
}

func (f *fakeBlogStore) DeleteComment(_ context.Context, id string) error {
	if _, ok := f.comments[id]; !ok {
		return blogs.ErrCommentNotFound
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeBlogStore) DeleteCommentsByBlogID(_ context.Context, blogID string) error {
	for id, comment := range f.comments {
		if comment.BlogID == blogID {
			delete(f.comments, id)
		}
	}
	return nil
}

func (f *fakeBlogStore) CreateLike(_ context.Context, like entity.Like) error {
	key := likeKey(like.UserID, like.BlogID)
	if _, ok := f.likes[key]; ok {
		return blogs.ErrAlreadyLiked
	}
	f.likes[key] = like
	return nil
}

func (f *fakeBlogStore) GetLikeByUserAndBlog(_ context.Context, userID, blogID string) (entity.Like, error) {
	like, ok := f.likes[likeKey(userID, blogID)]
	if !ok {
		return entity.Like{}, blogs.ErrLikeNotFound
	}
	return like, nil
}

func (f *fakeBlogStore) DeleteLikeByUserAndBlog(_ context.Context, userID, blogID string) error {
	key := likeKey(userID, blogID)
	if _, ok := f.likes[key]; !ok {
		return blogs.ErrLikeNotFound
	}
	delete(f.likes, key)
	return nil
}

func (f *fakeBlogStore) DeleteLikesByBlogID(_ context.Context, blogID string) error {
	for key, like := range f.likes {
		if like.BlogID == blogID {
			delete(f.likes, key)
		}
	}
	return nil
}

type fakeBlogRepo struct {
	store      *fakeBlogStore
	committed  bool
	rolledBack bool
}

func (f *fakeBlogRepo) NewClient(_ bool) (blogRepository.Client, error) {
	f.committed = false
	f.rolledBack = false
	return blogRepository.Client{
		Blogs:    f.store,
		Comments: f.store,
		Likes:    f.store,
		Commit: func() error {
			f.committed = true
			return nil
		},
		Rollback: func() error {
			if !f.committed {
				f.rolledBack = true
			}
			return nil
		},
	}, nil
}

type fakeUsers struct {
	users map[string]entity.User
}

func (f *fakeUsers) CreateUser(_ context.Context, user entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserWithEmailNotFound
}

func (f *fakeUsers) GetAllUsers(_ context.Context, _, _ int) ([]entity.User, error) {
	return nil, nil
}

func (f *fakeUsers) CountUsers(_ context.Context) (int, error) {
	return len(f.users), nil
}

func (f *fakeUsers) UpdateUser(_ context.Context, user entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fakeAuthRepo struct {
	users *fakeUsers
}

func (f *fakeAuthRepo) NewClient(_ bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeS3 struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (f *fakeS3) UploadFile(localPath string) (s3.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploaded = append(f.uploaded, localPath)
	os.Remove(localPath)
	key := "blog_uploads/banner-" + time.Now().Format("150405.000000")
	return s3.Asset{
		ID:     key,
		URL:    "https://bucket.s3.amazonaws.com/" + key,
		Width:  640,
		Height: 480,
	}, nil
}

func (f *fakeS3) DeleteFile(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeS3) deletedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

type blogFixture struct {
	svc      IBlogsService
	store    *fakeBlogStore
	repo     *fakeBlogRepo
	users    *fakeUsers
	s3Client *fakeS3
}

func newBlogFixture() *blogFixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := newFakeBlogStore()
	repo := &fakeBlogRepo{store: store}
	users := &fakeUsers{users: map[string]entity.User{
		"author-1": {ID: "author-1", Role: entity.RoleUser},
		"author-2": {ID: "author-2", Role: entity.RoleUser},
		"admin-1":  {ID: "admin-1", Role: entity.RoleAdmin},
	}}
	s3Client := &fakeS3{}

	svc := NewBlogsService(logger, repo, &fakeAuthRepo{users: users}, s3Client, utils.New(), sanitizer.New())
	return &blogFixture{svc: svc, store: store, repo: repo, users: users, s3Client: s3Client}
}

func seedBlog(f *blogFixture, id, author, status string) entity.Blog {
	blog := entity.Blog{
		ID:      id,
		Title:   "Seeded " + id,
		Slug:    "seeded-" + id,
		Content: "<p>content</p>",
		Banner: entity.Banner{
			ID:  "blog_uploads/" + id,
			URL: "https://bucket.s3.amazonaws.com/blog_uploads/" + id,
		},
		Author:    author,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.store.blogs[id] = blog
	return blog
}

func makeBannerFile(t *testing.T) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="banner"; filename="banner.png"`)
	header.Set("Content-Type", "image/png")

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("not-a-real-png-but-good-enough"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["banner"][0]
}

func TestCreateBlog_RequiresBanner(t *testing.T) {
	f := newBlogFixture()

	_, err := f.svc.Blog().CreateBlog(context.Background(), entity.UserLoginData{ID: "author-1"}, blogs.CreateBlogRequest{
		Title:   "No banner",
		Content: "text",
		Status:  entity.StatusPublished,
	}, nil)
	assert.True(t, errors.Is(err, blogs.ErrBannerRequired))
}

func TestCreateBlog(t *testing.T) {
	f := newBlogFixture()

	resp, err := f.svc.Blog().CreateBlog(context.Background(), entity.UserLoginData{ID: "author-1"}, blogs.CreateBlogRequest{
		Title:   "My First Post",
		Content: `<p>hello</p><script>alert("x")</script>`,
		Status:  entity.StatusPublished,
	}, makeBannerFile(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Slug, "my-first-post-"))
	assert.Equal(t, "author-1", resp.Author)
	assert.Contains(t, resp.Content, "<p>hello</p>")
	assert.NotContains(t, resp.Content, "<script>")
	assert.NotEmpty(t, resp.Banner.URL)
	assert.True(t, f.repo.committed)
	assert.Len(t, f.store.blogs, 1)
}

func TestGetBlogs_Visibility(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-published", "author-1", entity.StatusPublished)
	seedBlog(f, "blog-draft-a1", "author-1", entity.StatusDraft)
	seedBlog(f, "blog-draft-a2", "author-2", entity.StatusDraft)

	resp, err := f.svc.Blog().GetBlogs(context.Background(), entity.UserLoginData{ID: "author-1"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total, "published plus own draft")

	resp, err = f.svc.Blog().GetBlogs(context.Background(), entity.UserLoginData{ID: "author-2"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = f.svc.Blog().GetBlogs(context.Background(), entity.UserLoginData{ID: "admin-1"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total, "admins see drafts of everyone")
}

func TestGetBlogsByAuthor(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-published", "author-1", entity.StatusPublished)
	seedBlog(f, "blog-draft", "author-1", entity.StatusDraft)

	resp, err := f.svc.Blog().GetBlogsByAuthor(context.Background(), entity.UserLoginData{ID: "author-2"}, "author-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total, "other users only see published posts")

	resp, err = f.svc.Blog().GetBlogsByAuthor(context.Background(), entity.UserLoginData{ID: "author-1"}, "author-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = f.svc.Blog().GetBlogsByAuthor(context.Background(), entity.UserLoginData{ID: "admin-1"}, "author-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestGetBlogBySlug(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-1", "author-1", entity.StatusPublished)

	resp, err := f.svc.Blog().GetBlogBySlug(context.Background(), entity.UserLoginData{ID: "author-2"}, "seeded-blog-1")
	require.NoError(t, err)
	assert.Equal(t, "blog-1", resp.ID)
	assert.Equal(t, 1, resp.ViewsCount)
	assert.Equal(t, 1, f.store.blogs["blog-1"].ViewsCount)
}

func TestGetBlogBySlug_NotFound(t *testing.T) {
	f := newBlogFixture()

	_, err := f.svc.Blog().GetBlogBySlug(context.Background(), entity.UserLoginData{ID: "author-1"}, "missing")
	assert.True(t, errors.Is(err, blogs.ErrBlogNotFound))
}

func TestGetBlogBySlug_DraftVisibility(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-draft", "author-1", entity.StatusDraft)

	_, err := f.svc.Blog().GetBlogBySlug(context.Background(), entity.UserLoginData{ID: "author-2"}, "seeded-blog-draft")
	assert.True(t, errors.Is(err, blogs.ErrDraftNotVisible))

	_, err = f.svc.Blog().GetBlogBySlug(context.Background(), entity.UserLoginData{ID: "author-1"}, "seeded-blog-draft")
	assert.NoError(t, err)

	_, err = f.svc.Blog().GetBlogBySlug(context.Background(), entity.UserLoginData{ID: "admin-1"}, "seeded-blog-draft")
	assert.NoError(t, err)
}

func TestUpdateBlog_NotOwned(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-1", "author-1", entity.StatusPublished)

	_, err := f.svc.Blog().UpdateBlog(context.Background(), entity.UserLoginData{ID: "author-2"}, "blog-1", blogs.UpdateBlogRequest{
		Title: "Hijacked",
	}, nil)
	assert.True(t, errors.Is(err, blogs.ErrBlogNotOwned))
}

func TestUpdateBlog_PartialFields(t *testing.T) {
	f := newBlogFixture()
	seeded := seedBlog(f, "blog-1", "author-1", entity.StatusDraft)

	resp, err := f.svc.Blog().UpdateBlog(context.Background(), entity.UserLoginData{ID: "author-1"}, "blog-1", blogs.UpdateBlogRequest{
		Status: entity.StatusPublished,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPublished, resp.Status)
	assert.Equal(t, seeded.Title, resp.Title)
	assert.Equal(t, seeded.Slug, resp.Slug, "slug never changes after creation")
	assert.Equal(t, seeded.Content, resp.Content)
	assert.True(t, f.repo.committed)
}

func TestUpdateBlog_AdminOverride(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-1", "author-1", entity.StatusPublished)

	resp, err := f.svc.Blog().UpdateBlog(context.Background(), entity.UserLoginData{ID: "admin-1"}, "blog-1", blogs.UpdateBlogRequest{
		Title: "Moderated Title",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Moderated Title", resp.Title)
}

func TestUpdateBlog_ReplacesBanner(t *testing.T) {
	f := newBlogFixture()
	seeded := seedBlog(f, "blog-1", "author-1", entity.StatusPublished)

	resp, err := f.svc.Blog().UpdateBlog(context.Background(), entity.UserLoginData{ID: "author-1"}, "blog-1", blogs.UpdateBlogRequest{}, makeBannerFile(t))
	require.NoError(t, err)
	assert.NotEqual(t, seeded.Banner.URL, resp.Banner.URL)

	oldKey := s3.ExtractKey(seeded.Banner.URL)
	assert.Eventually(t, func() bool {
		for _, key := range f.s3Client.deletedKeys() {
			if key == oldKey {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond, "old banner removed after commit")
}

func TestDeleteBlog_NotOwned(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-1", "author-1", entity.StatusPublished)

	err := f.svc.Blog().DeleteBlog(context.Background(), entity.UserLoginData{ID: "author-2"}, "blog-1")
	assert.True(t, errors.Is(err, blogs.ErrBlogNotOwned))
	assert.Len(t, f.store.blogs, 1)
}

func TestDeleteBlog_Cascades(t *testing.T) {
	f := newBlogFixture()
	seeded := seedBlog(f, "blog-1", "author-1", entity.StatusPublished)
	f.store.comments["comment-1"] = entity.Comment{ID: "comment-1", BlogID: "blog-1", UserID: "author-2"}
	f.store.likes[likeKey("author-2", "blog-1")] = entity.Like{ID: "like-1", UserID: "author-2", BlogID: "blog-1"}

	require.NoError(t, f.svc.Blog().DeleteBlog(context.Background(), entity.UserLoginData{ID: "author-1"}, "blog-1"))

	assert.Empty(t, f.store.blogs)
	assert.Empty(t, f.store.comments)
	assert.Empty(t, f.store.likes)
	assert.True(t, f.repo.committed)

	bannerKey := s3.ExtractKey(seeded.Banner.URL)
	assert.Eventually(t, func() bool {
		for _, key := range f.s3Client.deletedKeys() {
			if key == bannerKey {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestCreateComment_BlogNotFound(t *testing.T) {
	f := newBlogFixture()

	_, err := f.svc.Comment().CreateComment(context.Background(), entity.UserLoginData{ID: "author-1"}, "missing", blogs.CreateCommentRequest{
		Content: "hi",
	})
	assert.True(t, errors.Is(err, blogs.ErrBlogNotFound))
}

func TestCreateComment(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-1", "author-1", entity.StatusPublished)

	resp, err := f.svc.Comment().CreateComment(context.Background(), entity.UserLoginData{ID: "author-2"}, "blog-1", blogs.CreateCommentRequest{
		Content: `nice <script>alert("x")</script> post`,
	})
	require.NoError(t, err)

	assert.Equal(t, "author-2", resp.UserID)
	assert.NotContains(t, resp.Content, "<script>")
	assert.Equal(t, 1, f.store.blogs["blog-1"].CommentsCount)
	assert.True(t, f.repo.committed)
}

func TestGetComments_EmptyList(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-1", "author-1", entity.StatusPublished)

	resp, err := f.svc.Comment().GetComments(context.Background(), "blog-1")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Comments)
}

func TestGetComments_BlogNotFound(t *testing.T) {
	f := newBlogFixture()

	_, err := f.svc.Comment().GetComments(context.Background(), "missing")
	assert.True(t, errors.Is(err, blogs.ErrBlogNotFound))
}

func TestDeleteComment_NotOwned(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-1", "author-1", entity.StatusPublished)
	f.store.comments["comment-1"] = entity.Comment{ID: "comment-1", BlogID: "blog-1", UserID: "author-2"}

	err := f.svc.Comment().DeleteComment(context.Background(), entity.UserLoginData{ID: "author-1"}, "comment-1")
	assert.True(t, errors.Is(err, blogs.ErrCommentNotOwned))
}

func TestDeleteComment(t *testing.T) {
	f := newBlogFixture()
	blog := seedBlog(f, "blog-1", "author-1", entity.StatusPublished)
	blog.CommentsCount = 1
	f.store.blogs["blog-1"] = blog
	f.store.comments["comment-1"] = entity.Comment{ID: "comment-1", BlogID: "blog-1", UserID: "author-2"}

	require.NoError(t, f.svc.Comment().DeleteComment(context.Background(), entity.UserLoginData{ID: "author-2"}, "comment-1"))

	assert.Empty(t, f.store.comments)
	assert.Equal(t, 0, f.store.blogs["blog-1"].CommentsCount)
}

func TestDeleteComment_AdminOverride(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-1", "author-1", entity.StatusPublished)
	f.store.comments["comment-1"] = entity.Comment{ID: "comment-1", BlogID: "blog-1", UserID: "author-2"}

	require.NoError(t, f.svc.Comment().DeleteComment(context.Background(), entity.UserLoginData{ID: "admin-1"}, "comment-1"))
	assert.Empty(t, f.store.comments)
}

func TestLikeBlog(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-1", "author-1", entity.StatusPublished)

	resp, err := f.svc.Like().LikeBlog(context.Background(), entity.UserLoginData{ID: "author-2"}, "blog-1")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.LikesCount)
	assert.Equal(t, 1, f.store.blogs["blog-1"].LikesCount)
	assert.True(t, f.repo.committed)
}

func TestLikeBlog_Twice(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-1", "author-1", entity.StatusPublished)
	caller := entity.UserLoginData{ID: "author-2"}

	_, err := f.svc.Like().LikeBlog(context.Background(), caller, "blog-1")
	require.NoError(t, err)

	_, err = f.svc.Like().LikeBlog(context.Background(), caller, "blog-1")
	assert.True(t, errors.Is(err, blogs.ErrAlreadyLiked))
	assert.Equal(t, 1, f.store.blogs["blog-1"].LikesCount, "conflict never bumps the counter")
	assert.False(t, f.repo.committed)
	assert.True(t, f.repo.rolledBack)
}

func TestLikeBlog_BlogNotFound(t *testing.T) {
	f := newBlogFixture()

	_, err := f.svc.Like().LikeBlog(context.Background(), entity.UserLoginData{ID: "author-1"}, "missing")
	assert.True(t, errors.Is(err, blogs.ErrBlogNotFound))
}

func TestUnlikeBlog(t *testing.T) {
	f := newBlogFixture()
	blog := seedBlog(f, "blog-1", "author-1", entity.StatusPublished)
	blog.LikesCount = 1
	f.store.blogs["blog-1"] = blog
	f.store.likes[likeKey("author-2", "blog-1")] = entity.Like{ID: "like-1", UserID: "author-2", BlogID: "blog-1"}

	resp, err := f.svc.Like().UnlikeBlog(context.Background(), entity.UserLoginData{ID: "author-2"}, "blog-1")
	require.NoError(t, err)

	assert.Equal(t, 0, resp.LikesCount)
	assert.Equal(t, 0, f.store.blogs["blog-1"].LikesCount)
	assert.Empty(t, f.store.likes)
}

func TestUnlikeBlog_NotLiked(t *testing.T) {
	f := newBlogFixture()
	seedBlog(f, "blog-1", "author-1", entity.StatusPublished)

	_, err := f.svc.Like().UnlikeBlog(context.Background(), entity.UserLoginData{ID: "author-2"}, "blog-1")
	assert.True(t, errors.Is(err, blogs.ErrLikeNotFound))
}
