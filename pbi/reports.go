package pbi

import (
	"context"
	"fmt"
	"net/http"
)

// Report endpoint templates. Identifiers are substituted verbatim, workspace
// first.
const (
	ReportsURL           = "https://api.powerbi.com/v1.0/myorg/reports"
	GroupReportsURL      = "https://api.powerbi.com/v1.0/myorg/groups/%s/reports"
	GroupReportRebindURL = "https://api.powerbi.com/v1.0/myorg/groups/%s/reports/%s/"
	GroupReportEmbedURL  = "https://api.powerbi.com/v1.0/myorg/groups/%s/reports/%s/GenerateToken"
)

// DefaultAccessLevel is requested by EmbedToken when no access level is given.
const DefaultAccessLevel = "view"

// Doer is the part of the shared client the resource wrappers depend on.
// Request performs the transport call; GenerateResponse normalizes its result.
type Doer interface {
	Request(ctx context.Context, method, url string, body any, opts ...CallOption) (*http.Response, error)
	GenerateResponse(res *http.Response, err error) (*Response, error)
}

// Reports wraps the report endpoints. It formats URLs and bodies and forwards
// whatever the Doer returns, errors included, without inspecting it.
type Reports struct {
	client Doer
}

// NewReports binds a report wrapper to a Doer.
func NewReports(client Doer) *Reports { return &Reports{client: client} }

// List retrieves the reports in a workspace, or in "My workspace" when
// groupID is empty.
func (r *Reports) List(ctx context.Context, groupID string, opts ...CallOption) (*Response, error) {
	res, err := r.client.Request(ctx, http.MethodGet, reportsURL(groupID), nil, opts...)
	return r.client.GenerateResponse(res, err)
}

// EmbedToken generates an embed token for a report. An empty accessLevel
// requests DefaultAccessLevel, so an empty string can never be sent as-is;
// other values are sent unvalidated and the service decides whether they are
// acceptable.
func (r *Reports) EmbedToken(ctx context.Context, reportID, groupID, accessLevel string, opts ...CallOption) (*Response, error) {
	if accessLevel == "" {
		accessLevel = DefaultAccessLevel
	}
	url := fmt.Sprintf(GroupReportEmbedURL, groupID, reportID)
	res, err := r.client.Request(ctx, http.MethodPost, url, GenerateTokenRequest{AccessLevel: accessLevel}, opts...)
	return r.client.GenerateResponse(res, err)
}

// Rebind points a report at a different dataset. When the dataset lives in
// another workspace the service creates a shared dataset in the report's
// workspace.
func (r *Reports) Rebind(ctx context.Context, groupID, reportID, datasetID string, opts ...CallOption) (*Response, error) {
	url := fmt.Sprintf(GroupReportRebindURL, groupID, reportID)
	res, err := r.client.Request(ctx, http.MethodPost, url, RebindRequest{DatasetID: datasetID}, opts...)
	return r.client.GenerateResponse(res, err)
}

func reportsURL(groupID string) string {
	if groupID != "" {
		return fmt.Sprintf(GroupReportsURL, groupID)
	}
	return ReportsURL
}
