// Package webhook implements the Zoom webhook receiver.
//
// The receiver has two modes of operation per request: answering the
// endpoint.url_validation ownership challenge with an HMAC-SHA256 digest of
// the provided plain token, and relaying recognized events (chat messages,
// meeting lifecycle, completed recordings) to an external notifier.
//
// Once a request body parses as JSON the receiver always responds 200,
// regardless of notification outcome, so the provider never retry-storms
// the endpoint. Malformed bodies get a 400.
package webhook
