package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "links.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.CreateTables(context.Background()); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return store
}

func sampleLink(slug string, expiresAt time.Time) *ShareLink {
	return &ShareLink{
		Slug:       slug,
		Sport:      "soccer",
		Home:       "Arsenal",
		Away:       "Chelsea",
		League:     "Premier League",
		MatchDate:  "2026-09-12",
		ResultJSON: `{"outcomeProbabilities":{"home":55,"draw":25,"away":20}}`,
		CreatedAt:  time.Now().UTC(),
		ExpiresAt:  expiresAt,
	}
}

func TestShareLinkRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	link := sampleLink("arsenal-vs-chelsea-abc12345", time.Now().UTC().Add(time.Hour))
	if err := store.UpsertShareLink(ctx, link); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := store.GetShareLink(ctx, link.Slug)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Sport != "soccer" || got.Home != "Arsenal" || got.League != "Premier League" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.ResultJSON != link.ResultJSON {
		t.Error("result JSON changed in round trip")
	}
}

func TestShareLinkUnknownSlug(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.GetShareLink(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestShareLinkExpired(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	link := sampleLink("expired-link-12345678", time.Now().UTC().Add(-time.Minute))
	if err := store.UpsertShareLink(ctx, link); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := store.GetShareLink(ctx, link.Slug); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for expired link", err)
	}

	pruned, err := store.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if pruned != 1 {
		t.Errorf("pruned = %d, want 1", pruned)
	}
}

func TestShareLinkUpsertRefreshes(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := sampleLink("refresh-link-12345678", time.Now().UTC().Add(time.Minute))
	if err := store.UpsertShareLink(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := sampleLink("refresh-link-12345678", time.Now().UTC().Add(24*time.Hour))
	second.ResultJSON = `{"outcomeProbabilities":{"home":60,"draw":22,"away":18}}`
	if err := store.UpsertShareLink(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := store.GetShareLink(ctx, first.Slug)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ResultJSON != second.ResultJSON {
		t.Error("upsert did not refresh the stored result")
	}
}
