package pbi

import (
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Client contains shared configuration and HTTP plumbing for the SDK. It is
// the Doer used by the resource wrappers and holds no per-call state, so a
// single Client may be shared between goroutines. Construct it with New;
// the HTTP and retry fields are read once there.
type Client struct {
	// HTTPClient is the underlying HTTP client. A tuned default is provided
	// and can be replaced via WithHTTPClient.
	HTTPClient *http.Client

	// TokenSource supplies the bearer token for every request. Nil sends no
	// Authorization header unless WithClientCredentials is used.
	TokenSource oauth2.TokenSource

	// UserAgent is added to each request.
	UserAgent string

	// Retry configuration for connection errors, 429 and 5xx responses.
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// Observability.
	Logger  *zap.Logger
	Metrics *Metrics

	credentials *credentialsSource
	retry       *retryablehttp.Client
}

// New constructs a Client with safe defaults. Options can override defaults.
func New(opts ...Option) *Client {
	c := &Client{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		UserAgent:      "pbi-go/0.1 (+https://github.com/steven3002/pbi-go)",
		MaxRetries:     3,
		InitialBackoff: 300 * time.Millisecond,
		MaxBackoff:     3 * time.Second,
		Logger:         zap.NewNop(),
	}
	for _, f := range opts {
		f(c)
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.credentials != nil {
		c.credentials.hc = c.HTTPClient
	}
	c.retry = c.newRetryClient()
	return c
}

// Reports returns the report wrapper bound to this client.
func (c *Client) Reports() *Reports { return NewReports(c) }

func (c *Client) newRetryClient() *retryablehttp.Client {
	waitMin, waitMax := normalizeBackoff(c.InitialBackoff, c.MaxBackoff)
	rc := retryablehttp.NewClient()
	rc.HTTPClient = c.HTTPClient
	rc.RetryMax = normalizeRetries(c.MaxRetries)
	rc.RetryWaitMin = waitMin
	rc.RetryWaitMax = waitMax
	rc.Logger = retryablehttp.LeveledLogger(leveledZap{c.Logger.Sugar()})
	// The last response is handed back as-is so GenerateResponse can build
	// an APIError from it.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.CheckRetry = c.checkRetry
	rc.RequestLogHook = c.logRequest
	rc.ResponseLogHook = c.logResponse
	return rc
}
