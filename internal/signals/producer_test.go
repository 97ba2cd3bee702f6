package signals

import (
	"math"
	"testing"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/world"
)

func TestProduceRates(t *testing.T) {
	outcomes := map[string]world.Outcome{
		"Alpha": {ActionTaken: "cooperate"},
		"Beta":  {ActionTaken: "sanction"},
		"Gamma": {ActionTaken: "negotiate"},
		"Delta": {ActionTaken: "signal"},
	}
	got := Produce(outcomes, nil, nil, nil)

	if math.Abs(got.CooperationRate-0.5) > 1e-12 {
		t.Errorf("cooperation rate = %v, want 0.5", got.CooperationRate)
	}
	if math.Abs(got.CoercionRate-0.25) > 1e-12 {
		t.Errorf("coercion rate = %v, want 0.25", got.CoercionRate)
	}
}

func TestProduceEmptyTurn(t *testing.T) {
	got := Produce(nil, nil, nil, nil)
	if got.CooperationRate != 0 || got.CoercionRate != 0 || got.NormPressure != 0 || got.Polarization != 0 {
		t.Errorf("indicators for empty turn = %+v, want zeros", got)
	}
}

func TestNormPressure(t *testing.T) {
	before := map[string]norm.Status{
		"sovereignty": {Strength: 0.9},
		"free_trade":  {Strength: 0.7},
	}
	after := map[string]norm.Status{
		"sovereignty": {Strength: 0.88}, // two violations
		"free_trade":  {Strength: 0.71}, // one compliance
	}
	got := Produce(nil, nil, before, after)
	if math.Abs(got.NormPressure-(-0.01)) > 1e-9 {
		t.Errorf("norm pressure = %v, want -0.01", got.NormPressure)
	}
}

func TestPolarization(t *testing.T) {
	actors := []*actor.Actor{
		{Name: "Alpha", Relationships: map[string]float64{"Beta": -0.8, "Gamma": 0.4}},
		{Name: "Beta", Relationships: map[string]float64{"Alpha": -0.8}},
	}
	got := Produce(nil, actors, nil, nil)
	if math.Abs(got.Polarization-(2.0/3.0)) > 1e-12 {
		t.Errorf("polarization = %v, want 2/3", got.Polarization)
	}
}

func TestNormAffinity(t *testing.T) {
	aligned := &actor.Actor{NormWeights: map[string]float64{
		"multilateral_cooperation": 0.5,
		"diplomatic_engagement":    0.5,
	}}
	same := &actor.Actor{NormWeights: map[string]float64{
		"multilateral_cooperation": 0.25,
		"diplomatic_engagement":    0.25,
	}}
	opposed := &actor.Actor{NormWeights: map[string]float64{
		"multilateral_cooperation": -0.5,
		"diplomatic_engagement":    -0.5,
	}}
	empty := &actor.Actor{NormWeights: map[string]float64{}}

	if got := NormAffinity(aligned, same); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("aligned affinity = %v, want 1", got)
	}
	if got := NormAffinity(aligned, opposed); math.Abs(got-(-1.0)) > 1e-12 {
		t.Errorf("opposed affinity = %v, want -1", got)
	}
	if got := NormAffinity(aligned, empty); got != 0 {
		t.Errorf("zero-vector affinity = %v, want 0", got)
	}
}
