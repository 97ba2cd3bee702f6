package gate

import (
	"fmt"
	"math"
	"strings"
)

// #region gate
// Gate evaluates whether a session blob should be committed after a turn. A
// vetoed commit is skipped and logged; the session stays on the previous
// version.
type Gate struct {
	config GateConfig
}

// NewGate creates a gate with the given configuration.
func NewGate(config GateConfig) *Gate {
	return &Gate{config: config}
}

// Evaluate checks hard vetoes first, then scores soft signals.
// prevTurn/turn guard monotonicity; actors is the registered actor set whose
// keys must all appear in the proposed blob.
func (g *Gate) Evaluate(
	old, proposed map[string]float64,
	actors []string,
	prevTurn, turn int,
) GateDecision {
	var vetoes []VetoSignal

	// --- Hard veto pass ---

	// 1. Every value stays in [-1, 1]. The registry enforces this on every
	// write, so a hit here means state corruption, not a bad proposal.
	for key, v := range proposed {
		if v < -1.0 || v > 1.0 {
			vetoes = append(vetoes, VetoSignal{
				Type:   VetoRange,
				Reason: fmt.Sprintf("key %s value %.4f outside [-1, 1]", key, v),
			})
			break
		}
	}

	// 2. Every registered actor still has at least one norm key.
	for _, a := range actors {
		if !hasActorKeys(proposed, a) {
			vetoes = append(vetoes, VetoSignal{
				Type:   VetoMissingActor,
				Reason: fmt.Sprintf("no norm keys for actor %s", a),
			})
		}
	}

	// 3. Turn counter is strictly monotonic.
	if turn <= prevTurn {
		vetoes = append(vetoes, VetoSignal{
			Type:   VetoTurnOrder,
			Reason: fmt.Sprintf("turn %d not after previous %d", turn, prevTurn),
		})
	}

	if len(vetoes) > 0 {
		return GateDecision{
			Action:      "reject",
			Reason:      fmt.Sprintf("hard veto: %s", vetoes[0].Reason),
			Vetoed:      true,
			VetoSignals: vetoes,
			SoftScore:   0,
		}
	}

	// --- Soft scoring ---
	softScore := g.softScore(old, proposed)

	return GateDecision{
		Action:    "commit",
		Reason:    fmt.Sprintf("passed gate: soft_score=%.4f", softScore),
		Vetoed:    false,
		SoftScore: softScore,
	}
}

// #endregion gate

// #region helpers

func hasActorKeys(blob map[string]float64, actorName string) bool {
	prefix := actorName + "_norm_"
	for key := range blob {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// softScore composes key stability (weight 0.5), churn focus (0.3), and key
// continuity (0.2) into a 0-1 consistency score. Logged, never blocking.
func (g *Gate) softScore(old, proposed map[string]float64) float64 {
	var score float64

	// Stability: largest single-key delta below the configured cap.
	maxDelta := 0.0
	changed := 0
	for key, v := range proposed {
		d := math.Abs(v - old[key])
		if d > 1e-9 {
			changed++
		}
		if d > maxDelta {
			maxDelta = d
		}
	}
	if maxDelta <= g.config.MaxKeyDelta {
		if g.config.MaxKeyDelta > 0 {
			score += 0.5 * (1.0 - maxDelta/g.config.MaxKeyDelta)
		} else {
			score += 0.5
		}
	}

	// Churn focus: fewer keys changed = more focused update.
	switch {
	case changed == 0:
		score += 0.3
	case len(proposed) > 0 && float64(changed)/float64(len(proposed)) < 0.25:
		score += 0.2
	case len(proposed) > 0 && float64(changed)/float64(len(proposed)) < 0.5:
		score += 0.1
	}

	// Continuity: no keys vanished.
	missing := 0
	for key := range old {
		if _, ok := proposed[key]; !ok {
			missing++
		}
	}
	if missing == 0 {
		score += 0.2
	}

	return score
}

// #endregion helpers
