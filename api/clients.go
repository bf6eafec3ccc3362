package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"minired-cli/auth"
	"minired-cli/types"
)

const dialTimeout = 10 * time.Second
const reqTimeout = 30 * time.Second

type Api struct{}

var apiHost string

var Client types.ApiClient = (*Api)(nil)

func init() {
	if host := os.Getenv("MINIRED_HOST"); host != "" {
		apiHost = host
	} else {
		apiHost = "http://localhost:8080"
	}
}

func getApiHost() string {
	return apiHost + "/api"
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction and adds the X-User-ID header
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	auth.SetAuthHeader(req)
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: reqTimeout,
}

var authenticatedClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: reqTimeout,
}
