package scenario

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
)

// #endregion

// #region load

// Load reads a scenario YAML file and fills unset fields with defaults.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	s.applyDefaults()
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	if s.AppName == "" {
		s.AppName = "international_system"
	}
	if s.Iterations == 0 {
		s.Iterations = 3
	}
	if s.DiplomaticRounds == 0 {
		s.DiplomaticRounds = 2
	}
	if len(s.ActionMenu) == 0 {
		s.ActionMenu = DefaultActionMenu()
	}
	if s.Analyst.Cadence == 0 {
		s.Analyst.Cadence = 1
	}
	if s.Analyst.MaxDelta == 0 {
		s.Analyst.MaxDelta = 0.1
	}
}

// DefaultActionMenu returns the seven actions actors may select from.
func DefaultActionMenu() []string {
	return []string{
		"cooperate",
		"defect",
		"signal",
		"sanction",
		"negotiate",
		"build_coalition",
		"contest_norm",
	}
}

// #endregion load

// #region validate

// Validate checks startup-fatal configuration errors.
func (s *Scenario) Validate() error {
	if len(s.Actors) == 0 {
		return fmt.Errorf("scenario has no actors")
	}
	if len(s.ActionMenu) == 0 {
		return fmt.Errorf("scenario has an empty action menu")
	}
	if s.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", s.Iterations)
	}
	if s.DiplomaticRounds <= 0 {
		return fmt.Errorf("diplomatic_rounds must be positive, got %d", s.DiplomaticRounds)
	}

	seen := make(map[string]bool)
	for _, a := range s.Actors {
		if a.Name == "" {
			return fmt.Errorf("actor with empty name")
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate actor name %s", a.Name)
		}
		seen[a.Name] = true
		for other, v := range a.Relationships {
			if v < -1.0 || v > 1.0 {
				return fmt.Errorf("actor %s relationship %s seed %.4f outside [-1, 1]", a.Name, other, v)
			}
		}
		for name, v := range a.NormWeights {
			if v < -1.0 || v > 1.0 {
				return fmt.Errorf("actor %s norm %s seed %.4f outside [-1, 1]", a.Name, name, v)
			}
		}
	}
	return nil
}

// #endregion validate

// #region build

// BuildActors converts seeds into registry actors, copying maps so the
// scenario stays untouched by simulation updates.
func (s *Scenario) BuildActors() []*actor.Actor {
	actors := make([]*actor.Actor, 0, len(s.Actors))
	for _, seed := range s.Actors {
		a := &actor.Actor{
			Name:              seed.Name,
			Identity:          make(map[string]any, len(seed.Identity)),
			Relationships:     make(map[string]float64, len(seed.Relationships)),
			NormWeights:       make(map[string]float64, len(seed.NormWeights)),
			NormsInternalized: append([]string(nil), seed.NormsInternalized...),
			NormsContested:    append([]string(nil), seed.NormsContested...),
		}
		for k, v := range seed.Identity {
			a.Identity[k] = v
		}
		for k, v := range seed.Relationships {
			a.Relationships[k] = v
		}
		for k, v := range seed.NormWeights {
			a.NormWeights[k] = v
		}
		actors = append(actors, a)
	}
	return actors
}

// #endregion build
