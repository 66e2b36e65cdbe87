package pbi

import "context"

// Group is a light-weight handle bound to a specific workspace ID.
// It exposes helpers that forward to the Reports wrapper.
type Group struct {
	ID      string
	reports *Reports
}

// Group returns a handle for a given workspace ID.
func (c *Client) Group(id string) Group { return Group{ID: id, reports: c.Reports()} }

// Reports lists the reports in the bound workspace.
func (g Group) Reports(ctx context.Context, opts ...CallOption) (*Response, error) {
	return g.reports.List(ctx, g.ID, opts...)
}

// EmbedToken generates an embed token for a report in the bound workspace.
func (g Group) EmbedToken(ctx context.Context, reportID, accessLevel string, opts ...CallOption) (*Response, error) {
	return g.reports.EmbedToken(ctx, reportID, g.ID, accessLevel, opts...)
}

// Rebind points a report in the bound workspace at another dataset.
func (g Group) Rebind(ctx context.Context, reportID, datasetID string, opts ...CallOption) (*Response, error) {
	return g.reports.Rebind(ctx, g.ID, reportID, datasetID, opts...)
}
