package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, username, email, password, role, first_name, last_name,
                   website, facebook, instagram, x, youtube, linked_in, created_at, updated_at)
VALUES (:id, :username, :email, :password, :role, :first_name, :last_name,
        :website, :facebook, :instagram, :x, :youtube, :linked_in, :created_at, :updated_at)`

	queryGetByID = `
SELECT id, username, email, password, role, first_name, last_name,
       website, facebook, instagram, x, youtube, linked_in, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, username, email, password, role, first_name, last_name,
       website, facebook, instagram, x, youtube, linked_in, created_at, updated_at
FROM users
    WHERE email = :email`

	queryGetAllUsers = `
SELECT id, username, email, password, role, first_name, last_name,
       website, facebook, instagram, x, youtube, linked_in, created_at, updated_at
FROM users
ORDER BY created_at DESC
LIMIT :limit OFFSET :offset`

	queryCountUsers = `
SELECT COUNT(*) FROM users`

	queryUpdateUser = `
UPDATE users
SET username = :username,
    email = :email,
    password = :password,
    first_name = :first_name,
    last_name = :last_name,
    website = :website,
    facebook = :facebook,
    instagram = :instagram,
    x = :x,
    youtube = :youtube,
    linked_in = :linked_in,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteUser = `
DELETE FROM users
WHERE id = :id`
)
