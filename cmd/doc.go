// Package cmd implements the command-line interface for zoomctl.
//
// This package provides the following command groups:
//   - meetings: list, live, get, create, update, delete, rtms-start, rtms-stop
//   - recordings: list, get, delete, download, download-transcript
//   - users: me, get, list
//   - chat: channels, messages, send, dm, contacts
//   - phone: calls
//   - summary: list, get, download
//   - serve: run the webhook receiver
//   - generate-docs: generate markdown documentation for the CLI
//   - version: print the version number
package cmd
