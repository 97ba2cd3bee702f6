package interior

import (
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndRecent(t *testing.T) {
	store, err := NewStore(testDB(t))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for i, text := range []string{"turn one", "turn two", "turn three"} {
		if err := store.Save(i+1, "Alpha", text); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	if err := store.Save(1, "Beta", "other actor"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Window of 2: most recent two, oldest first.
	got, err := store.Recent("Alpha", 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	want := []string{"turn two", "turn three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recent = %v, want %v", got, want)
	}

	// Window larger than history returns everything.
	got, err = store.Recent("Alpha", 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("recent = %v, want all 3", got)
	}

	// Memory is private per actor.
	got, err = store.Recent("Beta", 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"other actor"}) {
		t.Errorf("Beta memory = %v", got)
	}

	got, err = store.Recent("Ghost", 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unknown actor memory = %v, want empty", got)
	}
}
