package scenario

// Default returns the embedded four-power scenario: the great-power starting
// positions used when no scenario file is given.
func Default() *Scenario {
	s := &Scenario{
		AppName:          "international_system",
		Iterations:       3,
		DiplomaticRounds: 2,
		ActionMenu:       DefaultActionMenu(),
		Analyst: AnalystSettings{
			Enabled:  false,
			Cadence:  1,
			MaxDelta: 0.1,
		},
		Actors: []ActorSeed{
			{
				Name: "China",
				Identity: map[string]any{
					"regime_type":          "authoritarian",
					"historical_narrative": "Century of humiliation followed by resurgence",
					"self_image":           "Rising great power seeking rightful place",
					"core_values":          []string{"sovereignty", "non-interference", "multipolarity"},
					"regional_role":        "Regional hegemon in Asia-Pacific",
				},
				Relationships: map[string]float64{
					"USA":    -0.3,
					"Russia": 0.6,
					"ASEAN":  0.2,
					"EU":     0.1,
				},
				NormsInternalized: []string{
					"territorial_sovereignty",
					"economic_interdependence",
					"UN_Charter_principles",
				},
				NormsContested: []string{
					"liberal_intervention",
					"universal_human_rights",
					"freedom_of_navigation_US_interpretation",
				},
				NormWeights: map[string]float64{
					"multilateral_cooperation":      -0.2,
					"sovereignty_as_responsibility": -0.8,
					"human_rights_universalism":     -0.6,
					"diplomatic_engagement":         0.3,
					"norm_entrepreneurship":         -0.5,
					"peaceful_dispute_resolution":   0.0,
					"diffuse_reciprocity":           0.4,
					"collective_identity_formation": -0.3,
					"legitimacy_through_consensus":  -0.4,
					"transparency_accountability":   -0.5,
				},
			},
			{
				Name: "USA",
				Identity: map[string]any{
					"regime_type":          "democratic",
					"historical_narrative": "Leader of free world, defender of liberal order",
					"self_image":           "Indispensable nation, global security provider",
					"core_values":          []string{"democracy", "human_rights", "rule_of_law", "free_markets"},
					"regional_role":        "Global hegemon with worldwide commitments",
				},
				Relationships: map[string]float64{
					"China":       -0.3,
					"Russia":      -0.6,
					"Japan":       0.7,
					"South_Korea": 0.7,
				},
				NormsInternalized: []string{
					"liberal_intervention",
					"freedom_of_navigation",
					"alliance_commitments",
					"nuclear_non_proliferation",
				},
				NormsContested: []string{
					"ICC_jurisdiction",
					"absolute_sovereignty",
				},
				NormWeights: map[string]float64{
					"multilateral_cooperation":      0.5,
					"sovereignty_as_responsibility": 0.6,
					"human_rights_universalism":     0.8,
					"diplomatic_engagement":         0.4,
					"norm_entrepreneurship":         0.7,
					"peaceful_dispute_resolution":   0.5,
					"diffuse_reciprocity":           0.3,
					"collective_identity_formation": 0.7,
					"legitimacy_through_consensus":  0.4,
					"transparency_accountability":   0.6,
				},
			},
			{
				Name: "Russia",
				Identity: map[string]any{
					"regime_type":          "authoritarian",
					"historical_narrative": "Former superpower in multipolarity, civilizational leader",
					"self_image":           "Defender of traditional values, great power resisting Western hegemony",
					"core_values":          []string{"sovereignty", "sphere_of_influence", "civilizational_identity", "multipolarity"},
					"regional_role":        "Regional hegemon in Eurasia, nuclear power",
				},
				Relationships: map[string]float64{
					"USA":          -0.7,
					"China":        0.6,
					"EU":           -0.4,
					"Ukraine":      -0.8,
					"Central_Asia": 0.5,
				},
				NormsInternalized: []string{
					"territorial_sovereignty",
					"spheres_of_influence",
					"nuclear_deterrence",
					"great_power_politics",
				},
				NormsContested: []string{
					"liberal_intervention",
					"NATO_expansion",
					"color_revolutions",
					"Western_values_universalism",
				},
				NormWeights: map[string]float64{
					"multilateral_cooperation":      -0.3,
					"sovereignty_as_responsibility": -0.9,
					"human_rights_universalism":     -0.7,
					"diplomatic_engagement":         0.2,
					"norm_entrepreneurship":         -0.4,
					"peaceful_dispute_resolution":   -0.2,
					"diffuse_reciprocity":           0.1,
					"collective_identity_formation": -0.6,
					"legitimacy_through_consensus":  -0.5,
					"transparency_accountability":   -0.8,
				},
			},
			{
				Name: "EU",
				Identity: map[string]any{
					"regime_type":          "supranational_democratic",
					"historical_narrative": "Born from ashes of WWII, committed to peace through integration",
					"self_image":           "Normative power, promoter of liberal values and multilateralism",
					"core_values":          []string{"peace", "human_rights", "rule_of_law", "multilateralism", "solidarity"},
					"regional_role":        "Regional power and global normative actor",
				},
				Relationships: map[string]float64{
					"USA":    0.6,
					"Russia": -0.5,
					"China":  0.1,
					"UK":     0.4,
				},
				NormsInternalized: []string{
					"multilateralism",
					"human_rights",
					"rule_of_law",
					"liberal_democracy",
					"environmental_protection",
				},
				NormsContested: []string{
					"absolute_national_sovereignty",
					"unilateralism",
					"authoritarianism",
					"illiberal_democracy",
				},
				NormWeights: map[string]float64{
					"multilateral_cooperation":      0.9,
					"sovereignty_as_responsibility": 0.7,
					"human_rights_universalism":     0.8,
					"diplomatic_engagement":         0.7,
					"norm_entrepreneurship":         0.8,
					"peaceful_dispute_resolution":   0.9,
					"diffuse_reciprocity":           0.8,
					"collective_identity_formation": 0.9,
					"legitimacy_through_consensus":  0.8,
					"transparency_accountability":   0.7,
				},
			},
		},
	}
	return s
}
