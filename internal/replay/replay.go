package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/transcript"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/turn"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/world"
)

// #endregion

// strengthTolerance absorbs float64 noise accumulated over many turns.
const strengthTolerance = 1e-9

// #region types

// Mismatch is one divergence between a recorded value and its recomputation.
type Mismatch struct {
	Turn  int
	Field string
	Want  string
	Got   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("turn %d %s: recorded %s, recomputed %s", m.Turn, m.Field, m.Want, m.Got)
}

// Result summarizes one verification run.
type Result struct {
	TurnsChecked int
	Mismatches   []Mismatch
}

// OK reports whether every checked turn matched.
func (r Result) OK() bool {
	return len(r.Mismatches) == 0
}

// #endregion types

// #region verify

// Verify streams the transcript archives under dir and re-runs the
// deterministic pipeline over the recorded actions: resolution table, then
// ledger strength deltas, seeded from seeds. Recorded norm tags, ledger
// strengths, and relationship smoothing must match the recomputation
// exactly; turn numbers must be strictly increasing.
func Verify(dir string, seeds map[string]float64) (Result, error) {
	paths, err := transcript.ListArchives(dir)
	if err != nil {
		return Result{}, fmt.Errorf("list archives: %w", err)
	}
	if len(paths) == 0 {
		return Result{}, fmt.Errorf("no transcript archives in %s", dir)
	}

	ledger := norm.NewLedger(seeds)
	state := world.New()
	result := Result{}
	prevTurn := 0

	for _, path := range paths {
		err := transcript.ReadAll(path, func(line json.RawMessage) error {
			var record turn.TurnRecord
			if err := json.Unmarshal(line, &record); err != nil {
				return fmt.Errorf("unmarshal record: %w", err)
			}
			verifyRecord(&result, ledger, state, record, prevTurn)
			prevTurn = record.TurnNumber
			result.TurnsChecked++
			return nil
		})
		if err != nil {
			return result, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return result, nil
}

func verifyRecord(result *Result, ledger *norm.Ledger, state *world.State, record turn.TurnRecord, prevTurn int) {
	if record.TurnNumber <= prevTurn {
		result.Mismatches = append(result.Mismatches, Mismatch{
			Turn:  record.TurnNumber,
			Field: "turn_number",
			Want:  fmt.Sprintf("> %d", prevTurn),
			Got:   fmt.Sprintf("%d", record.TurnNumber),
		})
	}

	// Recompute resolution over the recorded actions.
	names := make([]string, 0, len(record.Actions))
	for name := range record.Actions {
		names = append(names, name)
	}
	sort.Strings(names)
	batch := make([]world.ActorAction, 0, len(names))
	for _, name := range names {
		batch = append(batch, world.ActorAction{Actor: name, Action: record.Actions[name]})
	}
	recomputed := state.ResolveActions(batch)

	for _, name := range names {
		want := record.Outcomes[name].NormBehavior
		got := recomputed[name].NormBehavior
		if !behaviorEqual(want, got) {
			result.Mismatches = append(result.Mismatches, Mismatch{
				Turn:  record.TurnNumber,
				Field: "norm_behavior:" + name,
				Want:  fmt.Sprintf("%v", want),
				Got:   fmt.Sprintf("%v", got),
			})
		}
		ledger.RecordOutcome(name, got)
	}

	// Recomputed ledger strengths must match the recorded status.
	status := ledger.Status()
	normNames := make([]string, 0, len(record.NormStatus))
	for name := range record.NormStatus {
		normNames = append(normNames, name)
	}
	sort.Strings(normNames)
	for _, name := range normNames {
		want := record.NormStatus[name]
		got, tracked := status[name]
		if !tracked {
			result.Mismatches = append(result.Mismatches, Mismatch{
				Turn:  record.TurnNumber,
				Field: "norm_strength:" + name,
				Want:  fmt.Sprintf("%.6f", want.Strength),
				Got:   "untracked",
			})
			continue
		}
		if math.Abs(want.Strength-got.Strength) > strengthTolerance {
			result.Mismatches = append(result.Mismatches, Mismatch{
				Turn:  record.TurnNumber,
				Field: "norm_strength:" + name,
				Want:  fmt.Sprintf("%.6f", want.Strength),
				Got:   fmt.Sprintf("%.6f", got.Strength),
			})
		}
	}

	// Every recorded relationship change must reproduce from its own inputs.
	for _, ch := range record.RelationshipChanges {
		recomputed := actor.RelationshipCarry*ch.Before + actor.RelationshipGain*ch.Proposed
		if math.Abs(recomputed-ch.After) > strengthTolerance {
			result.Mismatches = append(result.Mismatches, Mismatch{
				Turn:  record.TurnNumber,
				Field: fmt.Sprintf("relationship:%s:%s", ch.Actor, ch.Other),
				Want:  fmt.Sprintf("%.6f", ch.After),
				Got:   fmt.Sprintf("%.6f", recomputed),
			})
		}
	}
}

// #endregion verify

// #region helpers

func behaviorEqual(a, b map[string]norm.Behavior) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// #endregion helpers
