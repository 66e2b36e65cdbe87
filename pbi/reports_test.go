package pbi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportsURL(t *testing.T) {
	tests := []struct {
		name    string
		groupID string
		want    string
	}{
		{"no workspace", "", "https://api.powerbi.com/v1.0/myorg/reports"},
		{"workspace", "g1", "https://api.powerbi.com/v1.0/myorg/groups/g1/reports"},
		{"guid workspace", "f089354e-8366-4e18-aea3-4cb4a3a50b48", "https://api.powerbi.com/v1.0/myorg/groups/f089354e-8366-4e18-aea3-4cb4a3a50b48/reports"},
		{"opaque characters kept verbatim", "a b%2F", "https://api.powerbi.com/v1.0/myorg/groups/a b%2F/reports"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reportsURL(tt.groupID))
		})
	}
}

func TestReports_List(t *testing.T) {
	for _, groupID := range []string{"", "g1"} {
		d := &recordingDoer{res: &Response{StatusCode: http.StatusOK}}
		res, err := NewReports(d).List(context.Background(), groupID)
		require.NoError(t, err)
		assert.Same(t, d.res, res)

		require.Len(t, d.calls, 1)
		assert.Equal(t, http.MethodGet, d.calls[0].method)
		assert.Equal(t, reportsURL(groupID), d.calls[0].url)
		assert.Nil(t, d.calls[0].body)
	}
}

func TestReports_EmbedToken(t *testing.T) {
	const wantURL = "https://api.powerbi.com/v1.0/myorg/groups/g1/reports/r1/GenerateToken"

	tests := []struct {
		name        string
		accessLevel string
		wantBody    string
	}{
		{"default access level", "", `{"accessLevel":"view"}`},
		{"edit", "edit", `{"accessLevel":"edit"}`},
		{"unknown level is forwarded", "Owner", `{"accessLevel":"Owner"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &recordingDoer{res: &Response{StatusCode: http.StatusOK}}
			_, err := NewReports(d).EmbedToken(context.Background(), "r1", "g1", tt.accessLevel)
			require.NoError(t, err)

			require.Len(t, d.calls, 1)
			assert.Equal(t, http.MethodPost, d.calls[0].method)
			assert.Equal(t, wantURL, d.calls[0].url)
			b, err := json.Marshal(d.calls[0].body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantBody, string(b))
		})
	}
}

func TestReports_Rebind(t *testing.T) {
	d := &recordingDoer{res: &Response{StatusCode: http.StatusOK}}
	_, err := NewReports(d).Rebind(context.Background(), "g1", "r1", "d1")
	require.NoError(t, err)

	require.Len(t, d.calls, 1)
	assert.Equal(t, http.MethodPost, d.calls[0].method)
	assert.Equal(t, "https://api.powerbi.com/v1.0/myorg/groups/g1/reports/r1/", d.calls[0].url)
	b, err := json.Marshal(d.calls[0].body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"datasetId":"d1"}`, string(b))
}

func TestReports_ForwardsCallOptions(t *testing.T) {
	d := &recordingDoer{}
	_, _ = NewReports(d).List(context.Background(), "g1", WithRequestID("abc"), WithHeader("x-extra", "1"))

	require.Len(t, d.calls, 1)
	assert.Len(t, d.calls[0].opts, 2)
}

func TestReports_PassThrough(t *testing.T) {
	apiErr := &APIError{StatusCode: http.StatusUnauthorized, Code: "TokenExpired"}
	transportErr := errors.New("connection reset")
	raw := &http.Response{StatusCode: http.StatusUnauthorized}

	calls := map[string]func(*Reports) (*Response, error){
		"list": func(r *Reports) (*Response, error) {
			return r.List(context.Background(), "")
		},
		"embed token": func(r *Reports) (*Response, error) {
			return r.EmbedToken(context.Background(), "r1", "g1", "view")
		},
		"rebind": func(r *Reports) (*Response, error) {
			return r.Rebind(context.Background(), "g1", "r1", "d1")
		},
	}
	for name, call := range calls {
		t.Run(name+"/error response", func(t *testing.T) {
			d := &recordingDoer{
				rawRes: raw,
				res:    &Response{StatusCode: http.StatusUnauthorized},
				err:    apiErr,
			}
			res, err := call(NewReports(d))

			assert.Len(t, d.calls, 1)
			assert.Same(t, raw, d.gotRes)
			assert.Same(t, d.res, res)
			assert.Same(t, apiErr, err)
		})
		t.Run(name+"/transport error", func(t *testing.T) {
			d := &recordingDoer{rawErr: transportErr, err: transportErr}
			res, err := call(NewReports(d))

			assert.Len(t, d.calls, 1)
			assert.Nil(t, d.gotRes)
			assert.Same(t, transportErr, d.gotErr)
			assert.Nil(t, res)
			assert.Same(t, transportErr, err)
		})
	}
}
