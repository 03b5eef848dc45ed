// Package fetch issues single-attempt HTTP GET requests against external catalog sources.
//
// A Template turns one identifier (or a comma-joined identifier list for batch-capable
// sources) into a source URL. The Client performs exactly one request per call and
// classifies the result into an Outcome:
//
//	200        -> Success
//	404        -> NotFound
//	429, 503   -> RateLimited
//	other 5xx  -> ServerFault
//	other 4xx  -> ClientFault
//	otherwise  -> TransportFault (including timeouts)
//
// Retry and backoff are deliberately left to the caller.
//
// # Usage
//
//	client := fetch.NewClient(fetch.Template{
//	    Pattern: "http://www.boardgamegeek.com/xmlapi/boardgame/<id>?stats=1",
//	    Marker:  "<id>",
//	    Batch:   true,
//	}, fetch.Options{Timeout: 15 * time.Second})
//
//	outcome := client.Fetch(ctx, 155987, 155988)
//	if err := outcome.Err(); err != nil {
//	    return err
//	}
package fetch
