package devcli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"

	"github.com/steven3002/pbi-go/pbi"
)

// PrintJSON writes v as pretty-printed JSON.
func PrintJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// PrintResponse writes a response body, indenting it when it is JSON.
// Empty bodies print the status line instead.
func PrintResponse(w io.Writer, res *pbi.Response) error {
	if len(res.Body) == 0 {
		_, err := fmt.Fprintf(w, "%d %s\n", res.StatusCode, http.StatusText(res.StatusCode))
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, res.Body, "", "  "); err != nil {
		_, err = fmt.Fprintln(w, string(res.Body))
		return err
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}

// PrintReports writes a report list as a table.
func PrintReports(w io.Writer, reports []pbi.Report) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "No reports found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDATASET\tTYPE")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, truncate(r.Name, 40), r.DatasetID, r.ReportType)
	}
	return tw.Flush()
}

// PrintEmbedToken writes an embed token as key/value lines.
func PrintEmbedToken(w io.Writer, tok pbi.EmbedToken) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Token ID:\t%s\n", tok.TokenID)
	fmt.Fprintf(tw, "Expiration:\t%s\n", tok.Expiration)
	fmt.Fprintf(tw, "Token:\t%s\n", tok.Token)
	return tw.Flush()
}

// truncate shortens s to max runes, never splitting a multi-byte character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
