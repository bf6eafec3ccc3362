package auth

import (
	"net/http"
	"testing"

	shared "minired-cli/shared"
	"minired-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubApiClient struct {
	types.ApiClient

	user *shared.User
	err  *shared.ApiError

	lastLogin    shared.LoginRequest
	lastRegister shared.RegisterRequest
}

func (s *stubApiClient) SignIn(req shared.LoginRequest) (*shared.User, *shared.ApiError) {
	s.lastLogin = req
	return s.user, s.err
}

func (s *stubApiClient) CreateAccount(req shared.RegisterRequest) (*shared.User, *shared.ApiError) {
	s.lastRegister = req
	return s.user, s.err
}

func withStubClient(t *testing.T, stub *stubApiClient) {
	t.Helper()

	prev := apiClient
	prevCurrent := Current
	apiClient = stub
	Current = nil

	t.Cleanup(func() {
		apiClient = prev
		Current = prevCurrent
	})
}

func TestSetAuthHeaderRequiresSession(t *testing.T) {
	withStubClient(t, &stubApiClient{})

	req, err := http.NewRequest(http.MethodDelete, "http://localhost:8080/api/posts/1", nil)
	require.NoError(t, err)

	err = SetAuthHeader(req)
	assert.Error(t, err)
	assert.Empty(t, req.Header.Get("X-User-ID"))
}

func TestSetAuthHeaderSetsUserId(t *testing.T) {
	withStubClient(t, &stubApiClient{})
	Current = &shared.User{ID: 42, Username: "testuser"}

	req, err := http.NewRequest(http.MethodPost, "http://localhost:8080/api/posts", nil)
	require.NoError(t, err)

	require.NoError(t, SetAuthHeader(req))
	assert.Equal(t, "42", req.Header.Get("X-User-ID"))
}

func TestSignInSetsCurrent(t *testing.T) {
	user := &shared.User{ID: 1, Email: "test@example.com", Username: "testuser"}
	stub := &stubApiClient{user: user}
	withStubClient(t, stub)

	got, apiErr := SignIn("test@example.com", "123456")

	require.Nil(t, apiErr)
	assert.Equal(t, user, got)
	assert.Equal(t, user, Current)
	assert.Equal(t, "test@example.com", stub.lastLogin.Email)
	assert.Equal(t, "123456", stub.lastLogin.Password)
}

func TestSignInFailureLeavesCurrentNil(t *testing.T) {
	stub := &stubApiClient{err: &shared.ApiError{Status: 401, Msg: "Credenciales inválidas"}}
	withStubClient(t, stub)

	got, apiErr := SignIn("wrong@example.com", "wrongpass")

	assert.Nil(t, got)
	require.NotNil(t, apiErr)
	assert.Equal(t, "Credenciales inválidas", apiErr.Msg)
	assert.Nil(t, Current)
}

func TestRegisterSetsCurrent(t *testing.T) {
	user := &shared.User{ID: 2, Email: "new@example.com", Username: "nuevo"}
	stub := &stubApiClient{user: user}
	withStubClient(t, stub)

	got, apiErr := Register("new@example.com", "nuevo", "123456")

	require.Nil(t, apiErr)
	assert.Equal(t, user, got)
	assert.Equal(t, user, Current)
	assert.Equal(t, "nuevo", stub.lastRegister.Username)
}

func TestSignOutClearsCurrent(t *testing.T) {
	withStubClient(t, &stubApiClient{})
	Current = &shared.User{ID: 1}

	SignOut()

	assert.Nil(t, Current)
}
