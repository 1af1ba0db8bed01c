package storage

import (
	"errors"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/echolytics/persona-engine/core"
)

func testStore(t *testing.T) *BadgerStore {
	t.Helper()

	config := DefaultConfig(t.TempDir())
	config.GCInterval = 0
	config.SyncWrites = false

	s, err := OpenWithConfig(config)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPersona(username string) *core.Persona {
	return &core.Persona{
		ID:         "test-id-" + username,
		Username:   username,
		ProfileURL: core.ProfileURL(username),
		Behavior: []core.Characteristic{
			{Name: "Activity Level", Value: "Moderately active user", Confidence: 0.9},
		},
		Metadata: core.Metadata{
			TotalPosts:    1,
			TotalComments: 2,
			Subreddits:    []string{"general"},
			AnalysisDate:  time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestPersonaRoundTrip(t *testing.T) {
	s := testStore(t)

	original := testPersona("kojied")
	if err := s.SavePersona(original); err != nil {
		t.Fatalf("SavePersona failed: %v", err)
	}

	loaded, err := s.GetPersona("kojied")
	if err != nil {
		t.Fatalf("GetPersona failed: %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, original)
	}
}

func TestGetPersonaMissing(t *testing.T) {
	s := testStore(t)

	if _, err := s.GetPersona("missing"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("GetPersona = %v, want ErrNotFound", err)
	}
}

func TestListAndDeletePersonas(t *testing.T) {
	s := testStore(t)

	for _, u := range []string{"alpha", "beta"} {
		if err := s.SavePersona(testPersona(u)); err != nil {
			t.Fatalf("SavePersona(%s) failed: %v", u, err)
		}
	}

	usernames, err := s.ListPersonas()
	if err != nil {
		t.Fatalf("ListPersonas failed: %v", err)
	}
	sort.Strings(usernames)
	if !reflect.DeepEqual(usernames, []string{"alpha", "beta"}) {
		t.Errorf("ListPersonas = %v", usernames)
	}

	if err := s.DeletePersona("alpha"); err != nil {
		t.Fatalf("DeletePersona failed: %v", err)
	}
	if _, err := s.GetPersona("alpha"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("deleted persona still present: %v", err)
	}
	if _, err := s.GetPersona("beta"); err != nil {
		t.Errorf("unrelated persona lost: %v", err)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := testStore(t)

	rec := core.FallbackRecord("cached-user")
	if err := s.SaveRecord(rec); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	loaded, err := s.GetRecord("cached-user")
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if !reflect.DeepEqual(rec, loaded) {
		t.Errorf("record round trip mismatch")
	}
}

func TestGenericOpsAndMetrics(t *testing.T) {
	s := testStore(t)

	if err := s.Put("k1", []byte("v1")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := s.Get("k1")
	if err != nil || string(got) != "v1" {
		t.Fatalf("Get = %q, %v", got, err)
	}

	// Missing key is nil value, not an error.
	got, err = s.Get("absent")
	if err != nil || got != nil {
		t.Errorf("Get(absent) = %v, %v, want nil, nil", got, err)
	}

	if err := s.Delete("k1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	stats := s.Stats()
	if stats.PutCount == 0 || stats.GetCount == 0 || stats.DeleteCount == 0 {
		t.Errorf("metrics not recorded: %+v", stats)
	}
}

func TestGetPersonaSingleRead(t *testing.T) {
	s := testStore(t)

	if err := s.SavePersona(testPersona("kojied")); err != nil {
		t.Fatalf("SavePersona failed: %v", err)
	}

	before := s.Stats().GetCount
	if _, err := s.GetPersona("kojied"); err != nil {
		t.Fatalf("GetPersona failed: %v", err)
	}
	if reads := s.Stats().GetCount - before; reads != 1 {
		t.Errorf("GetPersona performed %d reads, want 1", reads)
	}

	before = s.Stats().GetCount
	if _, err := s.GetPersona("missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("GetPersona(missing) = %v, want ErrNotFound", err)
	}
	if reads := s.Stats().GetCount - before; reads != 1 {
		t.Errorf("GetPersona miss performed %d reads, want 1", reads)
	}
}

func TestOpenReturnsSharedInstance(t *testing.T) {
	dir := t.TempDir()

	a, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })

	b, err := Open(dir)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	if a != b {
		t.Error("Open should return the shared instance for the same directory")
	}
}
