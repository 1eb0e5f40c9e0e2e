// Package zoom provides a client for the Zoom REST API using
// Server-to-Server OAuth.
//
// The package covers:
//   - Token acquisition and caching (account_credentials grant, file-backed
//     cache with a 60 second expiry margin)
//   - An authenticated request wrapper with bounded retry on rate limits
//   - Typed operations for meetings, recordings, users, chat, phone logs,
//     and AI companion meeting summaries
//   - Streaming downloads of recordings, transcripts, and summaries
package zoom
