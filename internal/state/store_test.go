package state

import (
	"errors"
	"testing"

	"github.com/bastionhq/certview/internal/bastion"
)

func TestStore_UpdateReplacesSnapshot(t *testing.T) {
	store := &Store{}
	status := &bastion.StatusResponse{Running: true, Version: "1.4.0"}
	resources := Resources{
		Certificates: []bastion.Certificate{{ID: 1, CommonName: "web.example.com"}},
	}

	store.Update(status, resources, nil)

	snap := store.Snapshot()
	if !snap.HasStatus || !snap.Status.Running {
		t.Fatalf("snapshot status = %#v, want running", snap.Status)
	}
	if len(snap.Resources.Certificates) != 1 {
		t.Fatalf("certificates len = %d, want 1", len(snap.Resources.Certificates))
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestStore_ErrorKeepsPreviousData(t *testing.T) {
	store := &Store{}
	store.Update(&bastion.StatusResponse{Running: true}, Resources{
		Certificates: []bastion.Certificate{{ID: 1}},
	}, nil)

	store.Update(nil, Resources{}, errors.New("connection refused"))

	snap := store.Snapshot()
	if len(snap.Resources.Certificates) != 1 {
		t.Fatalf("error update should keep previous data, got %d certs", len(snap.Resources.Certificates))
	}
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want recorded error")
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatalf("one failure should not be offline yet")
	}

	store.Update(nil, Resources{}, errors.New("still down"))
	if !store.Snapshot().IsOffline() {
		t.Fatalf("two consecutive failures should be offline")
	}
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := &Store{}
	store.Update(nil, Resources{
		Certificates: []bastion.Certificate{{ID: 1, CommonName: "a"}},
	}, nil)

	snap := store.Snapshot()
	snap.Resources.Certificates[0].CommonName = "mutated"

	if store.Snapshot().Resources.Certificates[0].CommonName != "a" {
		t.Fatalf("snapshot mutation leaked into the store")
	}
}
