package authService

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"BlogGolang/internal/api/auth"
	authRepository "BlogGolang/internal/api/auth/repository"
	"BlogGolang/internal/entity"
	bcryptPkg "BlogGolang/pkg/bcrypt"
	jwtPkg "BlogGolang/pkg/jwt"
	"BlogGolang/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users map[string]entity.User
}

func (f *fakeUserStore) CreateUser(_ context.Context, user entity.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return auth.ErrEmailAlreadyExists
		}
		if existing.Username == user.Username {
			return auth.ErrUsernameAlreadyExists
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserWithEmailNotFound
}

func (f *fakeUserStore) GetAllUsers(_ context.Context, limit, offset int) ([]entity.User, error) {
	users := make([]entity.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	if offset >= len(users) {
		return nil, nil
	}
	users = users[offset:]
	if limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}

func (f *fakeUserStore) CountUsers(_ context.Context) (int, error) {
	return len(f.users), nil
}

func (f *fakeUserStore) UpdateUser(_ context.Context, user entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return auth.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) DeleteUser(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return auth.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeAuthRepo struct {
	store *fakeUserStore
}

func (f *fakeAuthRepo) NewClient(_ bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeRedis struct {
	revoked map[string]bool
}

func (f *fakeRedis) RevokeToken(_ context.Context, token string, _ time.Time) error {
	if f.revoked == nil {
		f.revoked = map[string]bool{}
	}
	f.revoked[token] = true
	return nil
}

func (f *fakeRedis) IsTokenRevoked(_ context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func newTestService(store *fakeUserStore) (AuthService, *fakeRedis) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	redisServer := &fakeRedis{}
	svc := New(logger, &fakeAuthRepo{store: store}, redisServer, bcryptPkg.NewWithCost(4), utils.New())
	return svc, redisServer
}

func seedUser(t *testing.T, store *fakeUserStore, id, email, password, role string) entity.User {
	t.Helper()

	hashed, err := bcryptPkg.NewWithCost(4).HashPassword(password)
	require.NoError(t, err)

	user := entity.User{
		ID:       id,
		Username: "user-" + id[:6],
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	store.users[id] = user
	return user
}

func TestRegister(t *testing.T) {
	t.Setenv(jwtPkg.SecretEnvKey, "test-secret")
	store := &fakeUserStore{users: map[string]entity.User{}}
	svc, _ := newTestService(store)

	resp, err := svc.Auth().Register(context.Background(), auth.RegisterUserRequest{
		Email:    "new@mail.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	assert.Equal(t, "new@mail.com", resp.User.Email)
	assert.Equal(t, entity.RoleUser, resp.User.Role)
	assert.True(t, strings.HasPrefix(resp.User.Username, "user-"))
	assert.Len(t, store.users, 1)
}

func TestRegister_ExplicitAdminRole(t *testing.T) {
	t.Setenv(jwtPkg.SecretEnvKey, "test-secret")
	store := &fakeUserStore{users: map[string]entity.User{}}
	svc, _ := newTestService(store)

	resp, err := svc.Auth().Register(context.Background(), auth.RegisterUserRequest{
		Email:    "boss@mail.com",
		Password: "password123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Setenv(jwtPkg.SecretEnvKey, "test-secret")
	store := &fakeUserStore{users: map[string]entity.User{}}
	seedUser(t, store, "existing-user-1", "taken@mail.com", "password123", entity.RoleUser)
	svc, _ := newTestService(store)

	_, err := svc.Auth().Register(context.Background(), auth.RegisterUserRequest{
		Email:    "taken@mail.com",
		Password: "password123",
	})
	assert.True(t, errors.Is(err, auth.ErrEmailAlreadyExists))
}

func TestLogin(t *testing.T) {
	t.Setenv(jwtPkg.SecretEnvKey, "test-secret")
	store := &fakeUserStore{users: map[string]entity.User{}}
	seedUser(t, store, "login-user-01", "reader@mail.com", "password123", entity.RoleUser)
	svc, _ := newTestService(store)

	resp, err := svc.Auth().Login(context.Background(), auth.LoginUserRequest{
		Email:    "reader@mail.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "login-user-01", resp.User.ID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Setenv(jwtPkg.SecretEnvKey, "test-secret")
	store := &fakeUserStore{users: map[string]entity.User{}}
	svc, _ := newTestService(store)

	_, err := svc.Auth().Login(context.Background(), auth.LoginUserRequest{
		Email:    "nobody@mail.com",
		Password: "password123",
	})
	assert.True(t, errors.Is(err, auth.ErrUserWithEmailNotFound))
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv(jwtPkg.SecretEnvKey, "test-secret")
	store := &fakeUserStore{users: map[string]entity.User{}}
	seedUser(t, store, "login-user-02", "reader@mail.com", "password123", entity.RoleUser)
	svc, _ := newTestService(store)

	_, err := svc.Auth().Login(context.Background(), auth.LoginUserRequest{
		Email:    "reader@mail.com",
		Password: "not-the-password",
	})
	assert.True(t, errors.Is(err, auth.ErrInvalidPassword))
}

func TestLogout(t *testing.T) {
	t.Setenv(jwtPkg.SecretEnvKey, "test-secret")
	store := &fakeUserStore{users: map[string]entity.User{}}
	svc, redisServer := newTestService(store)

	token, _, err := jwtPkg.Sign(map[string]interface{}{"id": "x"}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.Auth().Logout(context.Background(), token))
	assert.True(t, redisServer.revoked[token])
}

func TestLogout_InvalidToken(t *testing.T) {
	t.Setenv(jwtPkg.SecretEnvKey, "test-secret")
	store := &fakeUserStore{users: map[string]entity.User{}}
	svc, _ := newTestService(store)

	err := svc.Auth().Logout(context.Background(), "garbage")
	assert.True(t, errors.Is(err, auth.ErrorInvalidToken))
}

func TestGetCurrentUser(t *testing.T) {
	store := &fakeUserStore{users: map[string]entity.User{}}
	seedUser(t, store, "current-user-1", "me@mail.com", "password123", entity.RoleUser)
	svc, _ := newTestService(store)

	resp, err := svc.User().GetCurrentUser(context.Background(), entity.UserLoginData{ID: "current-user-1"})
	require.NoError(t, err)
	assert.Equal(t, "me@mail.com", resp.Email)
}

func TestUpdateUser_PartialFields(t *testing.T) {
	store := &fakeUserStore{users: map[string]entity.User{}}
	seedUser(t, store, "update-user-1", "me@mail.com", "password123", entity.RoleUser)
	svc, _ := newTestService(store)

	resp, err := svc.User().UpdateUser(context.Background(), entity.UserLoginData{ID: "update-user-1"}, auth.UpdateUserRequest{
		FirstName: "Ada",
		Website:   "https://ada.dev",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", resp.FirstName)
	assert.Equal(t, "https://ada.dev", resp.Website)
	assert.Equal(t, "me@mail.com", resp.Email, "untouched fields keep their values")
}

func TestUpdateUser_RehashesPassword(t *testing.T) {
	store := &fakeUserStore{users: map[string]entity.User{}}
	seedUser(t, store, "update-user-2", "me@mail.com", "password123", entity.RoleUser)
	svc, _ := newTestService(store)

	_, err := svc.User().UpdateUser(context.Background(), entity.UserLoginData{ID: "update-user-2"}, auth.UpdateUserRequest{
		Password: "new-password",
	})
	require.NoError(t, err)

	stored := store.users["update-user-2"]
	assert.NotEqual(t, "new-password", stored.Password)
	assert.NoError(t, bcryptPkg.NewWithCost(4).ComparePassword(stored.Password, "new-password"))
}

func TestDeleteSelf(t *testing.T) {
	store := &fakeUserStore{users: map[string]entity.User{}}
	seedUser(t, store, "delete-user-1", "me@mail.com", "password123", entity.RoleUser)
	svc, _ := newTestService(store)

	require.NoError(t, svc.User().DeleteSelf(context.Background(), entity.UserLoginData{ID: "delete-user-1"}))
	assert.Empty(t, store.users)
}

func TestGetAllUsers_AdminGate(t *testing.T) {
	store := &fakeUserStore{users: map[string]entity.User{}}
	seedUser(t, store, "admin-user-01", "admin@mail.com", "password123", entity.RoleAdmin)
	seedUser(t, store, "plain-user-01", "plain@mail.com", "password123", entity.RoleUser)
	svc, _ := newTestService(store)

	_, err := svc.User().GetAllUsers(context.Background(), entity.UserLoginData{ID: "plain-user-01"}, 10, 0)
	assert.True(t, errors.Is(err, auth.ErrAdminOnly))

	resp, err := svc.User().GetAllUsers(context.Background(), entity.UserLoginData{ID: "admin-user-01"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Users, 2)
}

func TestGetUserByID_AdminGate(t *testing.T) {
	store := &fakeUserStore{users: map[string]entity.User{}}
	seedUser(t, store, "admin-user-02", "admin@mail.com", "password123", entity.RoleAdmin)
	seedUser(t, store, "plain-user-02", "plain@mail.com", "password123", entity.RoleUser)
	svc, _ := newTestService(store)

	_, err := svc.User().GetUserByID(context.Background(), entity.UserLoginData{ID: "plain-user-02"}, "admin-user-02")
	assert.True(t, errors.Is(err, auth.ErrAdminOnly))

	resp, err := svc.User().GetUserByID(context.Background(), entity.UserLoginData{ID: "admin-user-02"}, "plain-user-02")
	require.NoError(t, err)
	assert.Equal(t, "plain@mail.com", resp.Email)
}

func TestDeleteUserByID_AdminGate(t *testing.T) {
	store := &fakeUserStore{users: map[string]entity.User{}}
	seedUser(t, store, "admin-user-03", "admin@mail.com", "password123", entity.RoleAdmin)
	seedUser(t, store, "plain-user-03", "plain@mail.com", "password123", entity.RoleUser)
	svc, _ := newTestService(store)

	err := svc.User().DeleteUserByID(context.Background(), entity.UserLoginData{ID: "plain-user-03"}, "admin-user-03")
	assert.True(t, errors.Is(err, auth.ErrAdminOnly))

	require.NoError(t, svc.User().DeleteUserByID(context.Background(), entity.UserLoginData{ID: "admin-user-03"}, "plain-user-03"))
	_, ok := store.users["plain-user-03"]
	assert.False(t, ok)

	err = svc.User().DeleteUserByID(context.Background(), entity.UserLoginData{ID: "admin-user-03"}, "plain-user-03")
	assert.True(t, errors.Is(err, auth.ErrUserNotFound))
}
