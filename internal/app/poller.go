package app

import (
	"context"
	"log"
	"time"

	"github.com/bastionhq/certview/internal/audit"
	"github.com/bastionhq/certview/internal/bastion"
	"github.com/bastionhq/certview/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off exponentially while the daemon is unreachable.
// It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client *bastion.Client, auditPath string, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(ctx, store, client, auditPath)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff. Zero failures polls at the base cadence.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

const auditTailLines = 500

func refresh(ctx context.Context, store *state.Store, client *bastion.Client, auditPath string) {
	status, err := client.FetchStatus(ctx)
	if err != nil {
		store.Update(nil, state.Resources{}, err)
		log.Printf("status poll failed: %v", err)
		return
	}

	resources, err := fetchResources(ctx, client)
	if err != nil {
		store.Update(nil, state.Resources{}, err)
		log.Printf("resource poll failed: %v", err)
		return
	}

	// The audit trail is a local file; a read failure should not mark the
	// daemon unreachable.
	resources.AuditTrail, err = audit.Read(auditPath, auditTailLines)
	if err != nil {
		log.Printf("audit trail read failed: %v", err)
	}

	store.Update(status, resources, nil)
}

func fetchResources(ctx context.Context, client *bastion.Client) (state.Resources, error) {
	var resources state.Resources
	var err error

	if resources.Certificates, err = client.FetchCertificates(ctx); err != nil {
		return state.Resources{}, err
	}
	if resources.Authorities, err = client.FetchAuthorities(ctx); err != nil {
		return state.Resources{}, err
	}
	if resources.Requests, err = client.FetchSigningRequests(ctx); err != nil {
		return state.Resources{}, err
	}
	if resources.Templates, err = client.FetchTemplates(ctx); err != nil {
		return state.Resources{}, err
	}
	if resources.TrustAnchors, err = client.FetchTrustAnchors(ctx); err != nil {
		return state.Resources{}, err
	}
	if resources.Approvals, err = client.FetchApprovals(ctx); err != nil {
		return state.Resources{}, err
	}
	return resources, nil
}
