package auth

import (
	"fmt"
	"net/http"
	"strconv"

	shared "minired-cli/shared"
	"minired-cli/types"
)

// Current is the signed-in user for this process. It's never persisted:
// every run starts unauthenticated.
var Current *shared.User

var apiClient types.ApiClient

func SetApiClient(client types.ApiClient) {
	apiClient = client
}

// SetAuthHeader attaches the acting user's id to a mutating request. The
// X-User-ID header is the backend's only authorization signal.
func SetAuthHeader(req *http.Request) error {
	if Current == nil {
		return fmt.Errorf("error setting auth header: not signed in")
	}

	req.Header.Set("X-User-ID", strconv.Itoa(Current.ID))

	return nil
}

func SignIn(email, password string) (*shared.User, *shared.ApiError) {
	user, apiErr := apiClient.SignIn(shared.LoginRequest{
		Email:    email,
		Password: password,
	})
	if apiErr != nil {
		return nil, apiErr
	}

	Current = user
	return user, nil
}

func Register(email, username, password string) (*shared.User, *shared.ApiError) {
	user, apiErr := apiClient.CreateAccount(shared.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	})
	if apiErr != nil {
		return nil, apiErr
	}

	Current = user
	return user, nil
}

func SignOut() {
	Current = nil
}
