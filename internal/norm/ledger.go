package norm

// #region imports
import (
	"log"
	"sort"
)

// #endregion

// Per-event strength nudges. Violations erode strength faster than compliance
// builds it: reputational cost is asymmetric.
const (
	complyDelta  = 0.01
	violateDelta = -0.02
)

// #region ledger

type entry struct {
	strength   float64
	adopters   map[string]struct{}
	contesters map[string]struct{}
}

// Ledger tracks global norm strengths and the cumulative adopter/contester
// sets. Sets never reset, so adoption rates are cumulative for the whole run.
type Ledger struct {
	entries map[string]*entry
	names   []string // seed order, for deterministic reporting
}

// DefaultSeeds returns the seed strengths for the tracked global norms.
func DefaultSeeds() map[string]float64 {
	return map[string]float64{
		"sovereignty":      0.9,
		"human_rights":     0.6,
		"free_trade":       0.7,
		"non_intervention": 0.5,
		"multilateralism":  0.6,
	}
}

// NewLedger seeds a ledger. Seed map iteration order is not stable, so names
// are sorted once here.
func NewLedger(seeds map[string]float64) *Ledger {
	l := &Ledger{entries: make(map[string]*entry, len(seeds))}
	for name := range seeds {
		l.names = append(l.names, name)
	}
	sort.Strings(l.names)
	for _, name := range l.names {
		l.entries[name] = &entry{
			strength:   seeds[name],
			adopters:   make(map[string]struct{}),
			contesters: make(map[string]struct{}),
		}
	}
	return l
}

// Seed adds one norm with an initial strength, replacing any prior entry.
func (l *Ledger) Seed(name string, strength float64) {
	if _, ok := l.entries[name]; !ok {
		l.names = append(l.names, name)
		sort.Strings(l.names)
	}
	l.entries[name] = &entry{
		strength:   strength,
		adopters:   make(map[string]struct{}),
		contesters: make(map[string]struct{}),
	}
}

// #endregion ledger

// #region record-outcome

// RecordOutcome folds one actor's turn behavior into the ledger: comply adds
// the actor to adopters and nudges strength up, violate adds to contesters and
// nudges down. Norm names not in the ledger are skipped, never auto-seeded.
func (l *Ledger) RecordOutcome(actorName string, behavior map[string]Behavior) {
	for name, b := range behavior {
		e, ok := l.entries[name]
		if !ok {
			log.Printf("[LEDGER] skipping unknown norm %q from %s", name, actorName)
			continue
		}
		switch b {
		case Comply:
			e.adopters[actorName] = struct{}{}
			e.strength += complyDelta
		case Violate:
			e.contesters[actorName] = struct{}{}
			e.strength += violateDelta
		default:
			log.Printf("[LEDGER] skipping unknown behavior %q for norm %s", b, name)
		}
	}
}

// #endregion record-outcome

// #region status

// Status reports strength and cumulative adoption rate per norm. The
// denominator floors at 1 so a norm with no contributions reads 0.
func (l *Ledger) Status() map[string]Status {
	out := make(map[string]Status, len(l.entries))
	for name, e := range l.entries {
		denom := len(e.adopters) + len(e.contesters)
		if denom < 1 {
			denom = 1
		}
		out[name] = Status{
			Strength:     e.strength,
			AdoptionRate: float64(len(e.adopters)) / float64(denom),
		}
	}
	return out
}

// Names returns the tracked norm names in sorted order.
func (l *Ledger) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Adopters returns the sorted adopter set for one norm.
func (l *Ledger) Adopters(name string) []string {
	e, ok := l.entries[name]
	if !ok {
		return nil
	}
	return sortedSet(e.adopters)
}

// Contesters returns the sorted contester set for one norm.
func (l *Ledger) Contesters(name string) []string {
	e, ok := l.entries[name]
	if !ok {
		return nil
	}
	return sortedSet(e.contesters)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// #endregion status
