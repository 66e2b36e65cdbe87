package pbi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// HeaderRequestID is the response header the service uses to identify a call
// in support requests.
const HeaderRequestID = "RequestId"

// Response is the normalized form of an API response. Body holds the raw
// payload; use Decode or the generic Decode function to map it to a model.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool { return r.StatusCode/100 == 2 }

// RequestID returns the service-assigned request ID, if any.
func (r *Response) RequestID() string { return r.Header.Get(HeaderRequestID) }

// Decode unmarshals the JSON body into out. An empty body leaves out untouched.
func (r *Response) Decode(out any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode response: %w (body=%s)", err, string(r.Body))
	}
	return nil
}

// Decode maps the result of a wrapper call into T. It is meant to be applied
// directly to a call:
//
//	list, err := pbi.Decode[pbi.ReportList](client.Reports().List(ctx, ""))
func Decode[T any](res *Response, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := res.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
