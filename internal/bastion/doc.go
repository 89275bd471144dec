// Package bastion provides an HTTP client for the Bastion daemon API.
//
// # Overview
//
// This package defines the API client for communicating with the Bastion
// certificate-management daemon. It handles HTTP communication, JSON
// serialization, and type-safe representation of the six resource
// collections the console displays: certificates, authorities, signing
// requests, templates, trust anchors, and approvals.
//
// # Client Usage
//
// Create a client using the API bind address from configuration:
//
//	client, err := bastion.NewClient("127.0.0.1:8632")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	status, err := client.FetchStatus(ctx)
//	certs, err := client.FetchCertificates(ctx)
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and User-Agent headers
//   - Carry a fresh X-Request-ID for server-side correlation
//   - Have a 5-second timeout
//   - Return wrapped errors with context about what failed
//
// The two mutations (RevokeCertificate, ResolveApproval) POST small JSON
// bodies; everything else is read-only. Collections are fetched wholesale:
// the daemon has no server-side pagination, and filtering, sorting, and
// paging all happen client-side in the tableview engine.
//
// # Timestamps
//
// The daemon emits RFC 3339 timestamps; older releases used a local
// "2006-01-02 15:04:05" layout. parseTime accepts both and returns the zero
// time for anything else, which downstream display code renders as "-".
package bastion
