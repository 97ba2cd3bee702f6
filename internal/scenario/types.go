package scenario

// #region types

// AnalystSettings controls the norm-adaptation analyst.
type AnalystSettings struct {
	Enabled  bool    `yaml:"enabled"`
	Cadence  int     `yaml:"cadence"`
	MaxDelta float64 `yaml:"max_delta"`
}

// ActorSeed is one actor's starting configuration.
type ActorSeed struct {
	Name              string             `yaml:"name"`
	Identity          map[string]any     `yaml:"identity"`
	Relationships     map[string]float64 `yaml:"relationships"`
	NormsInternalized []string           `yaml:"norms_internalized"`
	NormsContested    []string           `yaml:"norms_contested"`
	NormWeights       map[string]float64 `yaml:"norm_weights"`
}

// Scenario is a full simulation configuration.
type Scenario struct {
	AppName          string          `yaml:"app_name"`
	Iterations       int             `yaml:"iterations"`
	DiplomaticRounds int             `yaml:"diplomatic_rounds"`
	ActionMenu       []string        `yaml:"action_menu"`
	Analyst          AnalystSettings `yaml:"analyst"`
	Actors           []ActorSeed     `yaml:"actors"`
	SeedEvents       []string        `yaml:"seed_events"`
}

// #endregion types
