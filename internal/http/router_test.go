package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/bookmarks-api/internal/auth"
	"github.com/redmonkez12/bookmarks-api/internal/bookmark"
	"github.com/redmonkez12/bookmarks-api/internal/config"
	"github.com/redmonkez12/bookmarks-api/internal/logging"
	"github.com/redmonkez12/bookmarks-api/internal/user"
)

// in-memory user.Store

type fakeUserStore struct {
	users  map[int64]*user.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*user.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, email, passwordHash string, firstName, lastName *string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return nil, user.ErrDuplicateEmail
		}
	}
	u := &user.User{
		ID:           f.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[u.ID] = u
	f.nextID++
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) Update(_ context.Context, id int64, patch user.Patch) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrNotFound
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FirstName != nil {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = patch.LastName
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	u.UpdatedAt = time.Now()
	return nil
}

// in-memory bookmark.Store

type fakeBookmarkStore struct {
	bookmarks map[int64]*bookmark.Bookmark
	nextID    int64
}

func newFakeBookmarkStore() *fakeBookmarkStore {
	return &fakeBookmarkStore{bookmarks: map[int64]*bookmark.Bookmark{}, nextID: 1}
}

func (f *fakeBookmarkStore) Create(_ context.Context, b *bookmark.Bookmark) (*bookmark.Bookmark, error) {
	stored := *b
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = time.Now()
	f.bookmarks[stored.ID] = &stored
	f.nextID++
	return &stored, nil
}

func (f *fakeBookmarkStore) ListByUser(_ context.Context, userID int64) ([]bookmark.Bookmark, error) {
	result := []bookmark.Bookmark{}
	for _, b := range f.bookmarks {
		if b.UserID == userID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (f *fakeBookmarkStore) GetByID(_ context.Context, id int64) (*bookmark.Bookmark, error) {
	b, ok := f.bookmarks[id]
	if !ok {
		return nil, bookmark.ErrNotFound
	}
	return b, nil
}

func (f *fakeBookmarkStore) Update(_ context.Context, id int64, patch bookmark.Patch) error {
	b, ok := f.bookmarks[id]
	if !ok {
		return bookmark.ErrNotFound
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Description != nil {
		b.Description = patch.Description
	}
	if patch.Link != nil {
		b.Link = *patch.Link
	}
	b.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBookmarkStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookmarks[id]; !ok {
		return bookmark.ErrNotFound
	}
	delete(f.bookmarks, id)
	return nil
}

type testEnv struct {
	router    http.Handler
	userStore *fakeUserStore
	tokens    auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "prod" // no swagger route in tests

	logger := logging.NewLogger(true)
	tokens, err := auth.NewPasetoService(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	userStore := newFakeUserStore()
	bookmarkStore := newFakeBookmarkStore()

	hasher := auth.NewArgon2Hasher()
	authService := auth.NewService(userStore, hasher, tokens, logger, time.Hour)
	userService := user.NewService(userStore, hasher)
	bookmarkService := bookmark.NewService(bookmarkStore)

	handlers := Handlers{
		Auth:     auth.NewHandler(authService),
		User:     user.NewHandler(userService),
		Bookmark: bookmark.NewHandler(bookmarkService),
	}
	guard := auth.NewMiddleware(tokens, userStore)

	return &testEnv{
		router:    NewRouter(cfg, handlers, guard, logger),
		userStore: userStore,
		tokens:    tokens,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) registerAndLogin(t *testing.T, email, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"email":     email,
		"password":  password,
		"firstName": "user",
		"lastName":  "test",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = e.do(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestRegister(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	t.Run("missing email is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/auth/register", "", map[string]any{
			"password": "admin@123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/auth/register", "", map[string]any{
			"email":    "not-an-email",
			"password": "admin@123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("registers and rejects the duplicate", func(t *testing.T) {
		body := map[string]any{
			"email":     "user@gmail.com",
			"password":  "admin@123",
			"firstName": "user",
			"lastName":  "test",
		}

		rec := env.do(t, http.MethodPost, "/auth/register", "", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message": "Registered successfully"}`, rec.Body.String())

		rec = env.do(t, http.MethodPost, "/auth/register", "", body)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email already in use")
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"email":    "user@gmail.com",
		"password": "admin@123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("success returns user and token", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/auth/login", "", map[string]any{
			"email":    "user@gmail.com",
			"password": "admin@123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["token"])

		userBody, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "user@gmail.com", userBody["email"])
		assert.NotContains(t, userBody, "passwordHash")
		assert.NotContains(t, userBody, "password")
		assert.NotContains(t, userBody, "updatedAt")
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		wrongPassword := env.do(t, http.MethodPost, "/auth/login", "", map[string]any{
			"email":    "user@gmail.com",
			"password": "wrong",
		})
		unknownEmail := env.do(t, http.MethodPost, "/auth/login", "", map[string]any{
			"email":    "nobody@gmail.com",
			"password": "admin@123",
		})

		assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
		assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)
		assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	})
}

func TestProfile(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "user@gmail.com", "admin@123")

	t.Run("requires authentication", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/user/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns the public projection", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/user/profile", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "user@gmail.com", body["email"])
		assert.Equal(t, "user", body["firstName"])
		assert.NotContains(t, body, "passwordHash")
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "updatedAt")
	})

	t.Run("patch updates fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/user/profile", token, map[string]any{
			"firstName": "renamed",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message": "User updated"}`, rec.Body.String())

		rec = env.do(t, http.MethodGet, "/user/profile", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "renamed")
	})
}

func TestBookmarks(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "user@gmail.com", "admin@123")

	t.Run("requires authentication", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/bookmark", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects partial and invalid bodies", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/bookmark", token, map[string]any{
			"title": "First",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = env.do(t, http.MethodPost, "/bookmark", token, map[string]any{
			"title": "First",
			"link":  "not-a-url",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	var bookmarkID int64

	t.Run("creates a bookmark owned by the caller", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/bookmark", token, map[string]any{
			"title":       "First",
			"description": "lorem ipsum dolor sit amet",
			"link":        "https://github.com/golang/go",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["userId"])
		bookmarkID = int64(body["id"].(float64))
	})

	t.Run("lists and fetches", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/bookmark", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 1)

		rec = env.do(t, http.MethodGet, fmt.Sprintf("/bookmark/%d", bookmarkID), token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "First")

		rec = env.do(t, http.MethodGet, "/bookmark/9999", token, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Bookmark not found")
	})

	t.Run("updates with confirmation message", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, fmt.Sprintf("/bookmark/%d", bookmarkID), token, map[string]any{
			"title": "Renamed",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message": "Bookmark updated"}`, rec.Body.String())

		rec = env.do(t, http.MethodPatch, "/bookmark/9999", token, map[string]any{
			"title": "Renamed",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Bookmark not found")
	})

	t.Run("deletes with confirmation message", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, fmt.Sprintf("/bookmark/%d", bookmarkID), token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message": "Bookmark deleted"}`, rec.Body.String())

		rec = env.do(t, http.MethodDelete, fmt.Sprintf("/bookmark/%d", bookmarkID), token, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Bookmark not found")
	})
}

func TestDeletedUserTokenIsRejected(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "user@gmail.com", "admin@123")

	// drop the account after the token was issued
	delete(env.userStore.users, 1)

	rec := env.do(t, http.MethodGet, "/user/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "api is running"}`, rec.Body.String())
}
