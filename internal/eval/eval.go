package eval

// #region imports
import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/interpret"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
)

// #endregion

// #region vetter
// Vetter screens analyst proposals before they reach the registry. Hard
// vetoes reject outright; surviving proposals get a 0-1 ranking score.
type Vetter struct {
	config   Config
	registry *actor.Registry
}

// NewVetter creates a vetter bound to the given registry.
func NewVetter(config Config, registry *actor.Registry) *Vetter {
	return &Vetter{config: config, registry: registry}
}

// Vet checks one proposal against the hard veto rules:
// the actor must be registered, the norm must be in the catalog, the delta
// must stay within the cap, and the resulting weight must stay in [-1, 1].
func (v *Vetter) Vet(p interpret.Proposal) Verdict {
	a, ok := v.registry.Get(p.Actor)
	if !ok {
		return Verdict{Reason: fmt.Sprintf("unknown actor %s", p.Actor)}
	}
	if !norm.InCatalog(p.Norm) {
		return Verdict{Reason: fmt.Sprintf("norm %s not in catalog", p.Norm)}
	}
	if math.Abs(p.Delta) > v.config.MaxDelta {
		return Verdict{Reason: fmt.Sprintf(
			"delta %.4f exceeds cap %.2f", p.Delta, v.config.MaxDelta)}
	}
	next := a.NormWeights[p.Norm] + p.Delta
	if next < -1.0 || next > 1.0 {
		return Verdict{Reason: fmt.Sprintf(
			"resulting weight %.4f outside [-1, 1]", next)}
	}

	return Verdict{
		Accepted: true,
		Reason:   "passed",
		Score:    v.score(p),
	}
}

// VetAll vets a batch and returns verdicts in input order.
func (v *Vetter) VetAll(proposals []interpret.Proposal) []Verdict {
	verdicts := make([]Verdict, len(proposals))
	for i, p := range proposals {
		verdicts[i] = v.Vet(p)
	}
	return verdicts
}

// #endregion vetter

// #region scoring

// score ranks accepted proposals. Smaller deltas score higher (weight 0.6),
// and a non-empty rationale earns the remaining 0.4.
func (v *Vetter) score(p interpret.Proposal) float64 {
	var score float64
	if v.config.MaxDelta > 0 {
		score += 0.6 * (1.0 - math.Abs(p.Delta)/v.config.MaxDelta)
	} else {
		score += 0.6
	}
	if p.Rationale != "" {
		score += 0.4
	}
	return score
}

// #endregion scoring
