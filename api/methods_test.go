package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"minired-cli/auth"
	shared "minired-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withStubServer(t *testing.T, handler http.Handler) {
	t.Helper()

	server := httptest.NewServer(handler)
	prevHost := apiHost
	apiHost = server.URL

	t.Cleanup(func() {
		apiHost = prevHost
		server.Close()
	})
}

func signInAs(t *testing.T, user *shared.User) {
	t.Helper()

	auth.Current = user
	t.Cleanup(func() {
		auth.Current = nil
	})
}

func TestSignInDecodesUser(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	withStubServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("X-User-ID"))

		var req shared.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test@example.com", req.Email)
		assert.Equal(t, "123456", req.Password)

		json.NewEncoder(w).Encode(shared.User{
			ID:        1,
			Email:     "test@example.com",
			Username:  "testuser",
			CreatedAt: createdAt,
		})
	}))

	user, apiErr := Client.SignIn(shared.LoginRequest{Email: "test@example.com", Password: "123456"})

	require.Nil(t, apiErr)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "testuser", user.Username)
	assert.True(t, user.CreatedAt.Equal(createdAt))
}

func TestSignInExtractsNestedErrorMessage(t *testing.T) {
	withStubServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Credenciales inválidas"})
	}))

	user, apiErr := Client.SignIn(shared.LoginRequest{Email: "wrong@example.com", Password: "wrongpass"})

	assert.Nil(t, user)
	require.NotNil(t, apiErr)
	assert.Equal(t, "Credenciales inválidas", apiErr.Msg)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, shared.ApiErrorTypeUnauthorized, apiErr.Type)
}

func TestSignInFallsBackToRawBody(t *testing.T) {
	withStubServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("bad gateway\n"))
	}))

	_, apiErr := Client.SignIn(shared.LoginRequest{Email: "a@b.c", Password: "x"})

	require.NotNil(t, apiErr)
	assert.Equal(t, "bad gateway", apiErr.Msg)
	assert.Equal(t, shared.ApiErrorTypeOther, apiErr.Type)
}

func TestListPostsHasNoAuthHeader(t *testing.T) {
	signInAs(t, &shared.User{ID: 7, Username: "testuser"})

	withStubServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Empty(t, r.Header.Get("X-User-ID"))
		json.NewEncoder(w).Encode([]*shared.Post{})
	}))

	posts, apiErr := Client.ListPosts()

	require.Nil(t, apiErr)
	assert.Empty(t, posts)
}

func TestCreatePostAttachesUserIdHeader(t *testing.T) {
	signInAs(t, &shared.User{ID: 7, Username: "testuser"})

	withStubServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "7", r.Header.Get("X-User-ID"))

		var req shared.CreatePostRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(shared.Post{
			ID:       1,
			Title:    req.Title,
			Content:  req.Content,
			UserID:   7,
			Username: "testuser",
		})
	}))

	post, apiErr := Client.CreatePost(shared.CreatePostRequest{
		Title:   "Mi primer post",
		Content: "Contenido inicial",
	})

	require.Nil(t, apiErr)
	assert.Equal(t, "Mi primer post", post.Title)
	assert.Equal(t, "testuser", post.Username)
}

func TestGetPostNotFoundIsNotAnError(t *testing.T) {
	withStubServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Post no encontrado"})
	}))

	post, apiErr := Client.GetPost(99)

	assert.Nil(t, post)
	assert.Nil(t, apiErr)
}

func TestDeleteCommentPathAndHeader(t *testing.T) {
	signInAs(t, &shared.User{ID: 3, Username: "testuser"})

	var gotMethod, gotPath, gotUserId string
	withStubServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotUserId = r.Header.Get("X-User-ID")
		w.WriteHeader(http.StatusNoContent)
	}))

	apiErr := Client.DeleteComment(5, 12)

	require.Nil(t, apiErr)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/posts/5/comments/12", gotPath)
	assert.Equal(t, "3", gotUserId)
}

func TestDeletePostForbiddenSurfacesServerMessage(t *testing.T) {
	signInAs(t, &shared.User{ID: 2, Username: "otheruser"})

	withStubServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "No puedes eliminar posts de otros usuarios"})
	}))

	apiErr := Client.DeletePost(1)

	require.NotNil(t, apiErr)
	assert.Equal(t, "No puedes eliminar posts de otros usuarios", apiErr.Msg)
	assert.Equal(t, shared.ApiErrorTypeUnauthorized, apiErr.Type)
}
