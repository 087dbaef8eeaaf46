package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maplecrest/listings-api/internal/domain/listing"
	"github.com/maplecrest/listings-api/internal/domain/search"
	"github.com/maplecrest/listings-api/internal/storage/redis"
)

// --- Mocks ---

type mockStore struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	lastTTL time.Duration
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string][]byte{}}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	data, ok := m.data[key]
	if !ok {
		return nil, redis.ErrKeyNotFound
	}
	return data, nil
}

func (m *mockStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.lastTTL = ttl
	return nil
}

type payload struct {
	Total    int      `json:"total"`
	Listings []string `json:"listings"`
}

// --- Tests ---

func TestRoundTrip(t *testing.T) {
	store := newMockStore()
	c := New(store, DefaultTTLs())
	ctx := context.Background()

	in := payload{Total: 2, Listings: []string{"W100", "C200"}}
	c.SetJSON(ctx, "search:abc:1:20:newest", in, c.TTLs().Search)

	var out payload
	if !c.GetJSON(ctx, "search:abc:1:20:newest", &out) {
		t.Fatal("expected cache hit")
	}
	if out.Total != in.Total || len(out.Listings) != 2 || out.Listings[0] != "W100" {
		t.Errorf("round-trip mismatch: %+v", out)
	}
	if store.lastTTL != 180*time.Second {
		t.Errorf("expected search TTL 180s, got %v", store.lastTTL)
	}
}

func TestGetJSON_MissAndErrorsBehaveAlike(t *testing.T) {
	ctx := context.Background()

	store := newMockStore()
	c := New(store, DefaultTTLs())
	var out payload
	if c.GetJSON(ctx, "absent", &out) {
		t.Error("expected miss for absent key")
	}

	store.getErr = errors.New("connection refused")
	if c.GetJSON(ctx, "any", &out) {
		t.Error("expected store failure to read as a miss")
	}
}

func TestGetJSON_UndecodableEntryIsMiss(t *testing.T) {
	store := newMockStore()
	store.data["k"] = []byte("{not json")
	c := New(store, DefaultTTLs())

	var out payload
	if c.GetJSON(context.Background(), "k", &out) {
		t.Error("expected undecodable entry to read as a miss")
	}
}

func TestSetJSON_WriteFailureIsSilent(t *testing.T) {
	store := newMockStore()
	store.setErr = errors.New("oom")
	c := New(store, DefaultTTLs())

	// Must not panic or propagate.
	c.SetJSON(context.Background(), "k", payload{}, time.Minute)
}

func TestDisabled(t *testing.T) {
	c := Disabled()
	if c.Enabled() {
		t.Fatal("disabled cache reports enabled")
	}

	var out payload
	if c.GetJSON(context.Background(), "k", &out) {
		t.Error("disabled cache must always miss")
	}
	c.SetJSON(context.Background(), "k", payload{}, time.Minute) // no-op
}

func TestSearchKey_CoversAllParameters(t *testing.T) {
	price := 100000.0
	beds := 3
	res := listing.Residential

	base := search.Filters{}
	variants := []search.Filters{
		{MinPrice: &price},
		{Bedrooms: &beds},
		{PropertyType: &res},
	}

	seen := map[string]bool{SearchKey(base, 1, 20, search.Newest): true}
	for _, f := range variants {
		k := SearchKey(f, 1, 20, search.Newest)
		if seen[k] {
			t.Errorf("filter variant %+v collided with a prior key", f)
		}
		seen[k] = true
	}

	if SearchKey(base, 1, 20, search.Newest) == SearchKey(base, 2, 20, search.Newest) {
		t.Error("page must be part of the key")
	}
	if SearchKey(base, 1, 20, search.Newest) == SearchKey(base, 1, 40, search.Newest) {
		t.Error("limit must be part of the key")
	}
	if SearchKey(base, 1, 20, search.Newest) == SearchKey(base, 1, 20, search.PriceAsc) {
		t.Error("sort must be part of the key")
	}
}

func TestSearchKey_Deterministic(t *testing.T) {
	price := 250000.0
	f := search.Filters{MaxPrice: &price}
	if SearchKey(f, 1, 20, search.Newest) != SearchKey(f, 1, 20, search.Newest) {
		t.Error("identical parameters must derive identical keys")
	}
}

func TestStaticKeys(t *testing.T) {
	if got := DetailKey("W100"); got != "detail:W100" {
		t.Errorf("DetailKey = %q", got)
	}
	if got := MediaKey("W100", ""); got != "media:W100:all" {
		t.Errorf("MediaKey(no size) = %q", got)
	}
	if got := MediaKey("W100", "Thumbnail"); got != "media:W100:Thumbnail" {
		t.Errorf("MediaKey = %q", got)
	}
	if got := FeaturedKey("OFF1", "", 12, ""); got != "featured:OFF1:all:12:all" {
		t.Errorf("FeaturedKey = %q", got)
	}
	if got := SimilarKey("W100", 5); got != "similar:W100:5" {
		t.Errorf("SimilarKey = %q", got)
	}
}
