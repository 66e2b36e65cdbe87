package pbi

// ---- Request bodies ----

type GenerateTokenRequest struct {
	AccessLevel string `json:"accessLevel"`
}

type RebindRequest struct {
	DatasetID string `json:"datasetId"`
}

// ---- Response models ----

type Report struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	WebURL     string `json:"webUrl,omitempty"`
	EmbedURL   string `json:"embedUrl,omitempty"`
	DatasetID  string `json:"datasetId,omitempty"`
	ReportType string `json:"reportType,omitempty"`
}

// ReportList is the OData collection returned by the list endpoints.
type ReportList struct {
	ODataContext string   `json:"@odata.context,omitempty"`
	Value        []Report `json:"value"`
}

// EmbedToken is the credential returned by GenerateToken. Expiration is kept
// as the RFC 3339 string the service sends.
type EmbedToken struct {
	Token      string `json:"token"`
	TokenID    string `json:"tokenId"`
	Expiration string `json:"expiration"`
}
