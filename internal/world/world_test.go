package world

import (
	"reflect"
	"testing"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
)

func TestResolveActionsNormTags(t *testing.T) {
	tests := []struct {
		action string
		want   map[string]norm.Behavior
	}{
		{"sanction", map[string]norm.Behavior{"sovereignty": norm.Violate, "non_intervention": norm.Violate}},
		{"intervene", map[string]norm.Behavior{"sovereignty": norm.Violate, "non_intervention": norm.Violate}},
		{"cooperate", map[string]norm.Behavior{"free_trade": norm.Comply, "multilateralism": norm.Comply}},
		{"defect", nil},
		{"signal", nil},
		{"negotiate", nil},
		{"build_coalition", nil},
		{"contest_norm", nil},
		{"abstain", nil},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			s := New()
			outcomes := s.ResolveActions([]ActorAction{{Actor: "Alpha", Action: tt.action}})
			got, ok := outcomes["Alpha"]
			if !ok {
				t.Fatal("no outcome for Alpha")
			}
			if got.ActionTaken != tt.action {
				t.Errorf("action taken = %s, want %s", got.ActionTaken, tt.action)
			}
			if !got.Success {
				t.Error("deterministic resolution should report success")
			}
			if !reflect.DeepEqual(got.NormBehavior, tt.want) {
				t.Errorf("norm behavior = %v, want %v", got.NormBehavior, tt.want)
			}
		})
	}
}

func TestResolveActionsBatch(t *testing.T) {
	s := New()
	outcomes := s.ResolveActions([]ActorAction{
		{Actor: "Alpha", Action: "cooperate"},
		{Actor: "Beta", Action: "sanction"},
	})
	if len(outcomes) != 2 {
		t.Fatalf("outcome count = %d, want 2", len(outcomes))
	}
	if s.EventCount() != 2 {
		t.Errorf("event count = %d, want 2", s.EventCount())
	}
}

func TestSnapshotWindowsRecentEvents(t *testing.T) {
	s := New("seed one", "seed two")
	for i := 0; i < 6; i++ {
		s.ResolveActions([]ActorAction{{Actor: "Alpha", Action: "signal"}})
	}

	snap := s.Snapshot()
	if len(snap.RecentEvents) != 5 {
		t.Fatalf("snapshot events = %d, want 5", len(snap.RecentEvents))
	}
	for _, ev := range snap.RecentEvents {
		if ev == "seed one" {
			t.Error("oldest seed event survived the 5-event window")
		}
	}
	if s.EventCount() != 8 {
		t.Errorf("total events = %d, want 8 (window does not truncate history)", s.EventCount())
	}
}

func TestWorldSideEffects(t *testing.T) {
	s := New()
	s.AddCrisis("border standoff")

	s.ResolveActions([]ActorAction{{Actor: "Alpha", Action: "negotiate"}})
	s.ResolveActions([]ActorAction{{Actor: "Beta", Action: "build_coalition"}})
	s.ResolveActions([]ActorAction{{Actor: "Alpha", Action: "negotiate"}})
	s.ResolveActions([]ActorAction{{Actor: "Beta", Action: "sanction"}})

	snap := s.Snapshot()
	if !reflect.DeepEqual(snap.Crises, []string{"border standoff"}) {
		t.Errorf("crises = %v", snap.Crises)
	}
	// Alpha's second negotiate refreshes its entry to the tail instead of duplicating.
	wantNegotiations := []string{"Beta-led talks", "Alpha-led talks"}
	if !reflect.DeepEqual(snap.Negotiations, wantNegotiations) {
		t.Errorf("negotiations = %v, want %v", snap.Negotiations, wantNegotiations)
	}
	if len(snap.Disputes) != 1 {
		t.Errorf("disputes = %v, want one sanction entry", snap.Disputes)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New("seed")
	snap := s.Snapshot()
	snap.RecentEvents[0] = "mutated"
	if got := s.Snapshot().RecentEvents[0]; got != "seed" {
		t.Errorf("snapshot mutation leaked into state: %s", got)
	}
}
