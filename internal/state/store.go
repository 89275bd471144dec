package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/bastionhq/certview/internal/audit"
	"github.com/bastionhq/certview/internal/bastion"
)

// Resources bundles the collections the console displays: the six resource
// types served by the daemon API plus the local audit trail. The poller
// replaces them wholesale on every successful refresh.
type Resources struct {
	Certificates []bastion.Certificate
	Authorities  []bastion.Authority
	Requests     []bastion.SigningRequest
	Templates    []bastion.Template
	TrustAnchors []bastion.TrustAnchor
	Approvals    []bastion.Approval
	AuditTrail   []audit.Entry
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Status              bastion.StatusResponse
	HasStatus           bool
	Resources           Resources
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. The poller is the
// single writer; the UI refresh loop reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(status *bastion.StatusResponse, resources Resources, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Resources = cloneResources(resources)
	if status != nil {
		s.snapshot.Status = *status
		s.snapshot.HasStatus = true
	} else {
		s.snapshot.HasStatus = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Resources = cloneResources(s.snapshot.Resources)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneResources(r Resources) Resources {
	return Resources{
		Certificates: cloneSlice(r.Certificates),
		Authorities:  cloneSlice(r.Authorities),
		Requests:     cloneSlice(r.Requests),
		Templates:    cloneSlice(r.Templates),
		TrustAnchors: cloneSlice(r.TrustAnchors),
		Approvals:    cloneSlice(r.Approvals),
		AuditTrail:   cloneSlice(r.AuditTrail),
	}
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
