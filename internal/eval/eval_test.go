package eval

import (
	"math"
	"strings"
	"testing"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/interpret"
)

func testVetter(t *testing.T) *Vetter {
	t.Helper()
	registry, err := actor.NewRegistry([]*actor.Actor{
		{Name: "Alpha", NormWeights: map[string]float64{"multilateral_cooperation": 0.95}},
		{Name: "Beta", NormWeights: map[string]float64{}},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return NewVetter(DefaultConfig(), registry)
}

func TestVetVetoes(t *testing.T) {
	tests := []struct {
		name       string
		proposal   interpret.Proposal
		accepted   bool
		reasonPart string
	}{
		{
			"valid proposal",
			interpret.Proposal{Actor: "Beta", Norm: "diplomatic_engagement", Delta: 0.05, Rationale: "outreach"},
			true, "passed",
		},
		{
			"unknown actor",
			interpret.Proposal{Actor: "Ghost", Norm: "diplomatic_engagement", Delta: 0.05},
			false, "unknown actor",
		},
		{
			"norm not in catalog",
			interpret.Proposal{Actor: "Alpha", Norm: "sovereignty", Delta: 0.05},
			false, "not in catalog",
		},
		{
			"delta over cap",
			interpret.Proposal{Actor: "Alpha", Norm: "diplomatic_engagement", Delta: 0.2},
			false, "exceeds cap",
		},
		{
			"negative delta over cap",
			interpret.Proposal{Actor: "Alpha", Norm: "diplomatic_engagement", Delta: -0.11},
			false, "exceeds cap",
		},
		{
			"resulting weight out of range",
			interpret.Proposal{Actor: "Alpha", Norm: "multilateral_cooperation", Delta: 0.1},
			false, "outside [-1, 1]",
		},
	}
	v := testVetter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Vet(tt.proposal)
			if got.Accepted != tt.accepted {
				t.Fatalf("accepted = %v, want %v (reason %q)", got.Accepted, tt.accepted, got.Reason)
			}
			if !strings.Contains(got.Reason, tt.reasonPart) {
				t.Errorf("reason = %q, want substring %q", got.Reason, tt.reasonPart)
			}
		})
	}
}

func TestVetScore(t *testing.T) {
	v := testVetter(t)

	// Zero delta with rationale earns the full score.
	full := v.Vet(interpret.Proposal{Actor: "Beta", Norm: "diplomatic_engagement", Delta: 0, Rationale: "r"})
	if math.Abs(full.Score-1.0) > 1e-12 {
		t.Errorf("full score = %v, want 1.0", full.Score)
	}

	// Delta at the cap with no rationale earns nothing.
	empty := v.Vet(interpret.Proposal{Actor: "Beta", Norm: "diplomatic_engagement", Delta: 0.1})
	if math.Abs(empty.Score) > 1e-12 {
		t.Errorf("cap-delta no-rationale score = %v, want 0", empty.Score)
	}

	// Half-cap delta with rationale: 0.6*0.5 + 0.4.
	half := v.Vet(interpret.Proposal{Actor: "Beta", Norm: "diplomatic_engagement", Delta: 0.05, Rationale: "r"})
	if math.Abs(half.Score-0.7) > 1e-12 {
		t.Errorf("half-cap score = %v, want 0.7", half.Score)
	}
}

func TestVetAllPreservesOrder(t *testing.T) {
	v := testVetter(t)
	proposals := []interpret.Proposal{
		{Actor: "Beta", Norm: "diplomatic_engagement", Delta: 0.01},
		{Actor: "Ghost", Norm: "diplomatic_engagement", Delta: 0.01},
		{Actor: "Beta", Norm: "transparency_accountability", Delta: 0.02},
	}
	verdicts := v.VetAll(proposals)
	if len(verdicts) != 3 {
		t.Fatalf("verdict count = %d, want 3", len(verdicts))
	}
	if !verdicts[0].Accepted || verdicts[1].Accepted || !verdicts[2].Accepted {
		t.Errorf("verdicts = %+v, want accept/reject/accept", verdicts)
	}
}
