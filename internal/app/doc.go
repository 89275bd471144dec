// Package app wires the certview pieces together: configuration discovery,
// the bastion API client, the shared state store, the background poller,
// and the UI. The cmd layer calls Run with parsed flags; everything after
// that is driven by the poll loop and user input until the context is
// cancelled.
package app
