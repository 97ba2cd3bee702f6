package analyst

// #region imports
import (
	"context"
	"fmt"
	"log"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/eval"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/interpret"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/projection"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/responder"
)

// #endregion

// #region config
// Config controls when the analyst runs and how it calls out.
type Config struct {
	Enabled bool
	Cadence int // run every N turns; <=0 means every turn when enabled
}

// DefaultConfig returns an analyst that is off. The coordinator turns it on
// from scenario settings.
func DefaultConfig() Config {
	return Config{
		Enabled: false,
		Cadence: 1,
	}
}

// ShouldRun reports whether the analyst fires on the given turn number.
func (c Config) ShouldRun(turn int) bool {
	if !c.Enabled {
		return false
	}
	if c.Cadence <= 1 {
		return true
	}
	return turn%c.Cadence == 0
}

// #endregion config

// #region analyst
// Analyst watches the simulation from outside the actor loop and proposes
// norm-weight adjustments. Its output is advisory: every proposal passes
// through the vetter here and through registry validation at apply time.
type Analyst struct {
	config    Config
	responder responder.Responder
	vetter    *eval.Vetter
}

// New creates an analyst backed by the given responder and vetter.
func New(config Config, r responder.Responder, v *eval.Vetter) *Analyst {
	return &Analyst{config: config, responder: r, vetter: v}
}

// Propose asks the responder for norm adjustments over the recent history
// and returns only the proposals that survive vetting, in input order.
// A malformed response drops the whole batch.
func (a *Analyst) Propose(
	ctx context.Context,
	turnSummaries []string,
	actionProfiles map[string]string,
	recallHits []string,
) ([]interpret.Proposal, error) {
	prompt := projection.AnalystPrompt(turnSummaries, actionProfiles, recallHits)
	raw, err := a.responder.Respond(ctx, responder.Request{
		Actor:          "analyst",
		SystemContext:  "You observe an international system simulation and propose norm weight adjustments.",
		Prompt:         prompt,
		ResponseSchema: interpret.ProposalsSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("analyst respond: %w", err)
	}

	proposals, err := interpret.ParseProposals(raw)
	if err != nil {
		return nil, fmt.Errorf("analyst parse: %w", err)
	}

	var accepted []interpret.Proposal
	for _, p := range proposals {
		verdict := a.vetter.Vet(p)
		if !verdict.Accepted {
			log.Printf("[ANALYST] vetoed proposal %s/%s delta=%.4f: %s",
				p.Actor, p.Norm, p.Delta, verdict.Reason)
			continue
		}
		accepted = append(accepted, p)
	}
	return accepted, nil
}

// #endregion analyst
