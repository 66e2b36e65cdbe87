// Package pbi provides a Go client for the Power BI REST API report
// endpoints: listing reports, generating embed tokens and rebinding a report
// to another dataset.
//
// A Client carries the shared plumbing (authentication, retries, logging and
// metrics). Resource wrappers such as Reports only format URLs and request
// bodies, call Client.Request, and return the result of
// Client.GenerateResponse unchanged:
//
//	client := pbi.New(
//	    pbi.WithClientCredentials(tenantID, clientID, clientSecret),
//	    pbi.WithLogger(logger),
//	)
//	res, err := client.Reports().EmbedToken(ctx, reportID, groupID, "")
//	if err != nil {
//	    var apiErr *pbi.APIError
//	    if errors.As(err, &apiErr) {
//	        // apiErr.Code, apiErr.Message; res still holds the raw response.
//	    }
//	    return err
//	}
//	var tok pbi.EmbedToken
//	err = res.Decode(&tok)
package pbi
