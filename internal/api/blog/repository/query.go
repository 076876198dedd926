package blogRepository

const (
	blogColumns = `
		id,
		title,
		slug,
		content,
		banner_id,
		banner_url,
		banner_width,
		banner_height,
		author,
		status,
		views_count,
		likes_count,
		comments_count,
		created_at,
		updated_at`

	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			slug,
			content,
			banner_id,
			banner_url,
			banner_width,
			banner_height,
			author,
			status,
			views_count,
			likes_count,
			comments_count,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:slug,
			:content,
			:banner_id,
			:banner_url,
			:banner_width,
			:banner_height,
			:author,
			:status,
			:views_count,
			:likes_count,
			:comments_count,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE id = :id
	`

	queryGetBlogBySlug = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE slug = :slug
	`

	queryGetAllBlogs = `
		SELECT ` + blogColumns + `
		FROM blogs
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllBlogs = `
		SELECT COUNT(*)
		FROM blogs
	`

	queryGetVisibleBlogs = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE status = 'published' OR author = :viewer_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountVisibleBlogs = `
		SELECT COUNT(*)
		FROM blogs
		WHERE status = 'published' OR author = :viewer_id
	`

	queryGetBlogsByAuthor = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE author = :author
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBlogsByAuthor = `
		SELECT COUNT(*)
		FROM blogs
		WHERE author = :author
	`

	queryGetPublishedBlogsByAuthor = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE author = :author AND status = 'published'
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountPublishedBlogsByAuthor = `
		SELECT COUNT(*)
		FROM blogs
		WHERE author = :author AND status = 'published'
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			slug = :slug,
			content = :content,
			banner_id = :banner_id,
			banner_url = :banner_url,
			banner_width = :banner_width,
			banner_height = :banner_height,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryAddViewsCount = `
		UPDATE blogs
		SET views_count = views_count + :delta
		WHERE id = :id
	`

	queryAddLikesCount = `
		UPDATE blogs
		SET likes_count = GREATEST(likes_count + :delta, 0)
		WHERE id = :id
	`

	queryAddCommentsCount = `
		UPDATE blogs
		SET comments_count = GREATEST(comments_count + :delta, 0)
		WHERE id = :id
	`

	queryCreateComment = `
		INSERT INTO comments (id, blog_id, user_id, content, created_at)
		VALUES (:id, :blog_id, :user_id, :content, :created_at)
	`

	queryGetCommentByID = `
		SELECT id, blog_id, user_id, content, created_at
		FROM comments
		WHERE id = :id
	`

	queryGetCommentsByBlogID = `
		SELECT id, blog_id, user_id, content, created_at
		FROM comments
		WHERE blog_id = :blog_id
		ORDER BY created_at DESC
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`

	queryDeleteCommentsByBlogID = `
		DELETE FROM comments
		WHERE blog_id = :blog_id
	`

	queryCreateLike = `
		INSERT INTO likes (id, user_id, blog_id, created_at)
		VALUES (:id, :user_id, :blog_id, :created_at)
	`

	queryGetLikeByUserAndBlog = `
		SELECT id, user_id, blog_id, created_at
		FROM likes
		WHERE user_id = :user_id AND blog_id = :blog_id
	`

	queryDeleteLikeByUserAndBlog = `
		DELETE FROM likes
		WHERE user_id = :user_id AND blog_id = :blog_id
	`

	queryDeleteLikesByBlogID = `
		DELETE FROM likes
		WHERE blog_id = :blog_id
	`
)
