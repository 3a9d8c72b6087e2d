// Package supabase is the REST client for the hosted provider: GoTrue for
// identity, PostgREST for table access. Row-level rules live on the provider
// side; this side only forwards calls and decodes what comes back.
package supabase

import (
	"strings"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	rest *resty.Client
}

// New builds the single process-wide client. The anon key doubles as the
// default bearer, same as the hosted provider's own SDKs.
func New(baseURL, anonKey string) *Client {
	rest := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("apikey", anonKey).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(anonKey)

	return &Client{rest: rest}
}

// fail turns a non-2xx response into the decoded APIError, keeping the
// upstream message text verbatim.
func fail(resp *resty.Response) error {
	apiErr, ok := resp.Error().(*APIError)
	if !ok || apiErr == nil {
		apiErr = &APIError{}
	}
	apiErr.Status = resp.StatusCode()
	return apiErr
}
