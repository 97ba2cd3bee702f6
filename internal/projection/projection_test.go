package projection

import (
	"strings"
	"testing"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/world"
)

func TestIdentityContext(t *testing.T) {
	a := &actor.Actor{
		Name:              "Alpha",
		Identity:          map[string]any{"core": "trading state"},
		Relationships:     map[string]float64{"Beta": 0.5},
		NormsInternalized: []string{"free trade"},
		NormsContested:    []string{"spheres of influence"},
	}
	got := IdentityContext(a)

	for _, want := range []string{
		"You are Alpha",
		"trading state",
		"free trade",
		"spheres of influence",
		`"Beta": 0.5`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("identity context missing %q", want)
		}
	}
}

func TestPerceptionPrompt(t *testing.T) {
	snap := world.Snapshot{RecentEvents: []string{"Beta chose sanction"}}
	got := PerceptionPrompt("Alpha", snap, []string{"last turn I cooperated"})

	for _, want := range []string{
		"Beta chose sanction",
		"last turn I cooperated",
		"As Alpha",
		"threat_level",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("perception prompt missing %q", want)
		}
	}

	// No memory section when there is nothing to remember.
	empty := PerceptionPrompt("Alpha", snap, nil)
	if strings.Contains(empty, "private memory") {
		t.Error("memory section present without memory")
	}
}

func TestMessagesPrompt(t *testing.T) {
	got := MessagesPrompt([]string{"Beta", "Gamma"})
	if !strings.Contains(got, "Beta, Gamma") {
		t.Errorf("messages prompt missing recipients: %s", got)
	}
}

func TestInterpretationPrompt(t *testing.T) {
	got := InterpretationPrompt(map[string]string{"Beta": "stand down"})
	if !strings.Contains(got, "stand down") {
		t.Errorf("interpretation prompt missing message text: %s", got)
	}
}

func TestActionPrompt(t *testing.T) {
	got := ActionPrompt("Alpha", world.Snapshot{}, []string{"cooperate", "defect"})
	if !strings.Contains(got, "[cooperate, defect]") {
		t.Errorf("action prompt missing menu: %s", got)
	}
	if !strings.Contains(got, "selected_action") {
		t.Error("action prompt missing response shape")
	}
}

func TestRelationshipPrompt(t *testing.T) {
	outcomes := map[string]world.Outcome{
		"Beta": {ActionTaken: "sanction", Success: true},
	}
	got := RelationshipPrompt(outcomes)
	if !strings.Contains(got, "sanction") {
		t.Errorf("relationship prompt missing outcomes: %s", got)
	}
	if !strings.Contains(got, "-1.0") {
		t.Error("relationship prompt missing value range")
	}
}

func TestAnalystPrompt(t *testing.T) {
	got := AnalystPrompt(
		[]string{"turn 1 actions Alpha:cooperate"},
		map[string]string{"Alpha": `{"cooperate":1.0}`},
		[]string{"turn 4: sanctions spiral"},
	)
	for _, want := range []string{
		"multilateral_cooperation",
		"turn 1 actions Alpha:cooperate",
		"ACTION PROFILES",
		"turn 4: sanctions spiral",
		`"proposals"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("analyst prompt missing %q", want)
		}
	}

	// Optional sections collapse when their inputs are empty.
	bare := AnalystPrompt(nil, nil, nil)
	for _, absent := range []string{"RECENT TURNS", "ACTION PROFILES", "SIMILAR PAST EPISODES"} {
		if strings.Contains(bare, absent) {
			t.Errorf("bare analyst prompt should omit %q", absent)
		}
	}
}
