package norm

import (
	"math"
	"testing"
)

func TestRecordOutcomeStrengthNudges(t *testing.T) {
	tests := []struct {
		name     string
		behavior Behavior
		want     float64
	}{
		{"comply nudges up", Comply, 0.51},
		{"violate erodes twice as fast", Violate, 0.48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(map[string]float64{"sovereignty": 0.5})
			l.RecordOutcome("Alpha", map[string]Behavior{"sovereignty": tt.behavior})
			got := l.Status()["sovereignty"].Strength
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("strength = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdopterContesterSetsAreCumulative(t *testing.T) {
	l := NewLedger(map[string]float64{"free_trade": 0.7})

	l.RecordOutcome("Alpha", map[string]Behavior{"free_trade": Comply})
	l.RecordOutcome("Alpha", map[string]Behavior{"free_trade": Comply})
	l.RecordOutcome("Beta", map[string]Behavior{"free_trade": Violate})

	if got := l.Adopters("free_trade"); len(got) != 1 || got[0] != "Alpha" {
		t.Errorf("adopters = %v, want [Alpha]", got)
	}
	if got := l.Contesters("free_trade"); len(got) != 1 || got[0] != "Beta" {
		t.Errorf("contesters = %v, want [Beta]", got)
	}

	// Sets never reset: Alpha later violating lands it in both sets.
	l.RecordOutcome("Alpha", map[string]Behavior{"free_trade": Violate})
	if got := l.Adopters("free_trade"); len(got) != 1 {
		t.Errorf("adopters after violation = %v, want Alpha retained", got)
	}
	if got := l.Contesters("free_trade"); len(got) != 2 {
		t.Errorf("contesters after violation = %v, want [Alpha Beta]", got)
	}
}

func TestAdoptionRate(t *testing.T) {
	l := NewLedger(map[string]float64{"multilateralism": 0.6})

	// No contributions yet: denominator floors at 1, rate reads 0.
	if got := l.Status()["multilateralism"].AdoptionRate; got != 0 {
		t.Errorf("untouched adoption rate = %v, want 0", got)
	}

	l.RecordOutcome("Alpha", map[string]Behavior{"multilateralism": Comply})
	l.RecordOutcome("Beta", map[string]Behavior{"multilateralism": Violate})
	if got := l.Status()["multilateralism"].AdoptionRate; got != 0.5 {
		t.Errorf("adoption rate = %v, want 0.5", got)
	}
}

func TestRecordOutcomeSkipsUnknownNorms(t *testing.T) {
	l := NewLedger(map[string]float64{"sovereignty": 0.9})
	l.RecordOutcome("Alpha", map[string]Behavior{"made_up_norm": Comply})

	if _, ok := l.Status()["made_up_norm"]; ok {
		t.Error("unknown norm was auto-seeded")
	}
	if got := l.Status()["sovereignty"].Strength; got != 0.9 {
		t.Errorf("unrelated strength moved to %v", got)
	}
}

func TestSeedReplacesEntry(t *testing.T) {
	l := NewLedger(DefaultSeeds())
	l.RecordOutcome("Alpha", map[string]Behavior{"sovereignty": Comply})
	l.Seed("sovereignty", 0.4)

	if got := l.Status()["sovereignty"].Strength; got != 0.4 {
		t.Errorf("re-seeded strength = %v, want 0.4", got)
	}
	if got := l.Adopters("sovereignty"); len(got) != 0 {
		t.Errorf("re-seed kept adopters %v", got)
	}
}

func TestDefaultSeeds(t *testing.T) {
	seeds := DefaultSeeds()
	want := map[string]float64{
		"sovereignty":      0.9,
		"human_rights":     0.6,
		"free_trade":       0.7,
		"non_intervention": 0.5,
		"multilateralism":  0.6,
	}
	if len(seeds) != len(want) {
		t.Fatalf("seed count = %d, want %d", len(seeds), len(want))
	}
	for name, v := range want {
		if seeds[name] != v {
			t.Errorf("seed %s = %v, want %v", name, seeds[name], v)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	l := NewLedger(DefaultSeeds())
	names := l.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestCatalog(t *testing.T) {
	if len(Catalog) != 10 {
		t.Fatalf("catalog size = %d, want 10", len(Catalog))
	}
	if !InCatalog("multilateral_cooperation") {
		t.Error("multilateral_cooperation missing from catalog")
	}
	if InCatalog("sovereignty") {
		t.Error("global ledger norm should not appear in the bipolar catalog")
	}
	names := CatalogNames()
	if len(names) != len(Catalog) {
		t.Fatalf("CatalogNames length = %d, want %d", len(names), len(Catalog))
	}
	for i, def := range Catalog {
		if names[i] != def.Name {
			t.Errorf("CatalogNames[%d] = %s, want %s (vector order)", i, names[i], def.Name)
		}
	}
}
