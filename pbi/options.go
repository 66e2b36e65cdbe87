package pbi

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Azure AD endpoints used for service principal authentication.
const (
	TokenURLTemplate = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
	PowerBIScope     = "https://analysis.windows.net/powerbi/api/.default"
)

// Option customizes a Client at construction time.
type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTPClient = h } }
func WithUserAgent(ua string) Option       { return func(c *Client) { c.UserAgent = ua } }
func WithRetries(max int) Option           { return func(c *Client) { c.MaxRetries = max } }
func WithBackoff(init, max time.Duration) Option {
	return func(c *Client) {
		c.InitialBackoff = init
		c.MaxBackoff = max
	}
}
func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.Logger = l } }
func WithMetrics(m *Metrics) Option   { return func(c *Client) { c.Metrics = m } }
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) {
		c.TokenSource = ts
		c.credentials = nil
	}
}

// WithAccessToken authenticates every request with a fixed bearer token.
func WithAccessToken(token string) Option {
	return WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
}

// WithClientCredentials authenticates as an Azure AD service principal.
// Tokens are fetched lazily with the client's HTTPClient and the context of
// the call that needs them, and refreshed shortly before they expire.
func WithClientCredentials(tenantID, clientID, clientSecret string) Option {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     fmt.Sprintf(TokenURLTemplate, tenantID),
		Scopes:       []string{PowerBIScope},
	}
	return func(c *Client) {
		c.TokenSource = nil
		c.credentials = &credentialsSource{cfg: cfg}
	}
}

// CallOption customizes a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	headers   http.Header
	requestID string
}

// WithRequestID overrides the generated x-ms-client-request-id for one call.
func WithRequestID(id string) CallOption {
	return func(co *callOptions) { co.requestID = id }
}

// WithHeader adds an arbitrary header to a single API call.
func WithHeader(key, value string) CallOption {
	return func(co *callOptions) {
		if co.headers == nil {
			co.headers = http.Header{}
		}
		co.headers.Add(key, value)
	}
}
