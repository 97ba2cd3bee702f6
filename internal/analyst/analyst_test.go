package analyst

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/eval"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/responder"
)

func TestShouldRun(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		turn   int
		want   bool
	}{
		{"disabled never runs", Config{Enabled: false, Cadence: 1}, 1, false},
		{"cadence 1 every turn", Config{Enabled: true, Cadence: 1}, 1, true},
		{"cadence 0 every turn", Config{Enabled: true, Cadence: 0}, 7, true},
		{"cadence 2 skips odd turns", Config{Enabled: true, Cadence: 2}, 3, false},
		{"cadence 2 fires even turns", Config{Enabled: true, Cadence: 2}, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.ShouldRun(tt.turn); got != tt.want {
				t.Errorf("ShouldRun(%d) = %v, want %v", tt.turn, got, tt.want)
			}
		})
	}
}

func testAnalyst(t *testing.T, scripted *responder.Scripted) *Analyst {
	t.Helper()
	registry, err := actor.NewRegistry([]*actor.Actor{
		{Name: "Alpha", NormWeights: map[string]float64{"diplomatic_engagement": 0.2}},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	vetter := eval.NewVetter(eval.DefaultConfig(), registry)
	return New(Config{Enabled: true, Cadence: 1}, scripted, vetter)
}

func TestProposeFiltersThroughVetter(t *testing.T) {
	scripted := responder.NewScripted()
	scripted.Queue("analyst", `{"proposals": [
		{"actor": "Alpha", "norm": "diplomatic_engagement", "delta": 0.05, "rationale": "sustained outreach"},
		{"actor": "Ghost", "norm": "diplomatic_engagement", "delta": 0.05, "rationale": "unknown actor"},
		{"actor": "Alpha", "norm": "diplomatic_engagement", "delta": 0.5, "rationale": "over the cap"}
	]}`)
	a := testAnalyst(t, scripted)

	accepted, err := a.Propose(context.Background(),
		[]string{"turn 1 actions Alpha:cooperate"},
		map[string]string{"Alpha": `{"cooperate":1.0}`},
		nil)
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}
	if len(accepted) != 1 {
		t.Fatalf("accepted = %+v, want one surviving proposal", accepted)
	}
	if accepted[0].Actor != "Alpha" || accepted[0].Delta != 0.05 {
		t.Errorf("accepted[0] = %+v", accepted[0])
	}

	calls := scripted.Calls()
	if len(calls) != 1 || calls[0].Actor != "analyst" {
		t.Fatalf("calls = %+v, want one analyst call", calls)
	}
	if !strings.Contains(calls[0].Prompt, "turn 1 actions Alpha:cooperate") {
		t.Errorf("prompt missing turn summary: %s", calls[0].Prompt)
	}
}

func TestProposeMalformedDropsBatch(t *testing.T) {
	scripted := responder.NewScripted()
	scripted.Queue("analyst", "I have no structured proposals today.")
	a := testAnalyst(t, scripted)

	if _, err := a.Propose(context.Background(), nil, nil, nil); err == nil {
		t.Fatal("expected error for malformed analyst reply")
	}
}

func TestProposeResponderError(t *testing.T) {
	scripted := responder.NewScripted()
	scripted.Fail("analyst", errors.New("sidecar down"))
	a := testAnalyst(t, scripted)

	if _, err := a.Propose(context.Background(), nil, nil, nil); err == nil {
		t.Fatal("expected error when responder fails")
	}
}
