package pbi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

// rewriteTransport sends every request to the test server while keeping the
// original path, so the fixed api.powerbi.com URLs can be exercised.
type rewriteTransport struct {
	target *url.URL
	base   http.RoundTripper
}

func (t rewriteTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.URL.Scheme = t.target.Scheme
	r.URL.Host = t.target.Host
	return t.base.RoundTrip(r)
}

func newTestServer(t *testing.T, handler http.HandlerFunc, opts ...Option) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cl := New(append([]Option{
		WithHTTPClient(testHTTPClient(t, srv)),
		WithRetries(2),
		WithBackoff(10*time.Millisecond, 50*time.Millisecond),
	}, opts...)...)
	return srv, cl
}

// testHTTPClient routes every host, login.microsoftonline.com included, to srv.
func testHTTPClient(t *testing.T, srv *httptest.Server) *http.Client {
	t.Helper()
	target, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Client{
		Timeout:   5 * time.Second,
		Transport: rewriteTransport{target: target, base: http.DefaultTransport},
	}
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

type recordedCall struct {
	method string
	url    string
	body   any
	opts   []CallOption
}

// recordingDoer stands in for the shared client. It records Request calls and
// hands back canned results from both halves of the Doer contract.
type recordingDoer struct {
	calls []recordedCall

	rawRes *http.Response
	rawErr error

	gotRes *http.Response
	gotErr error

	res *Response
	err error
}

func (d *recordingDoer) Request(_ context.Context, method, url string, body any, opts ...CallOption) (*http.Response, error) {
	d.calls = append(d.calls, recordedCall{method: method, url: url, body: body, opts: opts})
	return d.rawRes, d.rawErr
}

func (d *recordingDoer) GenerateResponse(res *http.Response, err error) (*Response, error) {
	d.gotRes, d.gotErr = res, err
	return d.res, d.err
}
