package signals

// #region indicators

// Indicators are the deterministic per-turn readings computed from outcomes
// and registry state. They ride on the turn record and the observer feed.
type Indicators struct {
	CooperationRate float64 `json:"cooperation_rate"`
	CoercionRate    float64 `json:"coercion_rate"`
	NormPressure    float64 `json:"norm_pressure"`
	Polarization    float64 `json:"polarization"`
}

// #endregion indicators
