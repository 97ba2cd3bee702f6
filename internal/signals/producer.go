package signals

// #region imports
import (
	"math"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/world"
)

// #endregion

// #region action-classes

var cooperativeActions = map[string]bool{
	"cooperate":       true,
	"negotiate":       true,
	"build_coalition": true,
}

var coerciveActions = map[string]bool{
	"defect":    true,
	"sanction":  true,
	"intervene": true,
}

// #endregion action-classes

// #region produce

// Produce computes all indicators for one resolved turn. statusBefore and
// statusAfter bracket the Learning phase's ledger fold.
func Produce(
	outcomes map[string]world.Outcome,
	actors []*actor.Actor,
	statusBefore, statusAfter map[string]norm.Status,
) Indicators {
	return Indicators{
		CooperationRate: actionRate(outcomes, cooperativeActions),
		CoercionRate:    actionRate(outcomes, coerciveActions),
		NormPressure:    normPressure(statusBefore, statusAfter),
		Polarization:    polarization(actors),
	}
}

// #endregion produce

// #region rates

// actionRate is the fraction of actors whose action falls in class.
func actionRate(outcomes map[string]world.Outcome, class map[string]bool) float64 {
	if len(outcomes) == 0 {
		return 0
	}
	var n int
	for _, o := range outcomes {
		if class[o.ActionTaken] {
			n++
		}
	}
	return float64(n) / float64(len(outcomes))
}

// normPressure is the net ledger strength delta across all tracked norms.
func normPressure(before, after map[string]norm.Status) float64 {
	var sum float64
	for name, a := range after {
		if b, ok := before[name]; ok {
			sum += a.Strength - b.Strength
		}
	}
	return sum
}

// polarization is the mean absolute relationship value across all actors:
// 0 means a system of indifference, 1 a system of hard blocs and rivalries.
func polarization(actors []*actor.Actor) float64 {
	var sum float64
	var n int
	for _, a := range actors {
		for _, v := range a.Relationships {
			sum += math.Abs(v)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// #endregion rates

// #region affinity

// NormAffinity is the cosine similarity of two actors' norm-weight vectors
// over the catalog order. Returns 0 when either vector is zero.
func NormAffinity(a, b *actor.Actor) float64 {
	var dot, normA, normB float64
	for _, d := range norm.Catalog {
		va := a.NormWeights[d.Name]
		vb := b.NormWeights[d.Name]
		dot += va * vb
		normA += va * va
		normB += vb * vb
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// #endregion affinity
