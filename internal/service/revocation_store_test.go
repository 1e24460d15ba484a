package service

import (
	"context"
	"testing"
	"time"
)

func TestInMemoryRevocationStoreRoundTrip(t *testing.T) {
	store := NewInMemoryRevocationStore()
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "tok-1")
	if err != nil || revoked {
		t.Fatalf("fresh token should not be revoked, got revoked=%v err=%v", revoked, err)
	}

	if err := store.Revoke(ctx, "tok-1", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	revoked, err = store.IsRevoked(ctx, "tok-1")
	if err != nil || !revoked {
		t.Fatalf("expected revoked, got revoked=%v err=%v", revoked, err)
	}
}

func TestInMemoryRevocationStoreEntryExpires(t *testing.T) {
	store := NewInMemoryRevocationStore()
	ctx := context.Background()

	if err := store.Revoke(ctx, "tok-short", 10*time.Millisecond); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	revoked, err := store.IsRevoked(ctx, "tok-short")
	if err != nil || revoked {
		t.Fatalf("expired entry should read as not revoked, got revoked=%v err=%v", revoked, err)
	}
	store.mu.RLock()
	_, stillThere := store.entries["tok-short"]
	store.mu.RUnlock()
	if stillThere {
		t.Fatal("expired entry should be dropped on read")
	}
}

func TestInMemoryRevocationStoreSweepsWithoutReads(t *testing.T) {
	store := NewInMemoryRevocationStore()
	ctx := context.Background()

	// A logged-out token is normally never presented again, so its entry
	// must be purged by the sweep in Revoke, not by a lookup.
	if err := store.Revoke(ctx, "tok-logout", 10*time.Millisecond); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	store.mu.Lock()
	store.nextSweep = time.Time{}
	store.mu.Unlock()
	if err := store.Revoke(ctx, "tok-other", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	store.mu.RLock()
	_, stale := store.entries["tok-logout"]
	_, live := store.entries["tok-other"]
	store.mu.RUnlock()
	if stale {
		t.Fatal("expired entry should be swept on the next revoke")
	}
	if !live {
		t.Fatal("unexpired entry must survive the sweep")
	}
}

func TestInMemoryRevocationStoreIgnoresNonPositiveTTL(t *testing.T) {
	store := NewInMemoryRevocationStore()
	ctx := context.Background()

	if err := store.Revoke(ctx, "tok-expired", 0); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if err := store.Revoke(ctx, "tok-negative", -time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	for _, token := range []string{"tok-expired", "tok-negative"} {
		revoked, err := store.IsRevoked(ctx, token)
		if err != nil || revoked {
			t.Fatalf("%s: expected not revoked, got revoked=%v err=%v", token, revoked, err)
		}
	}
}
