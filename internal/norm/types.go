package norm

// #region behavior

// Behavior tags how an action related to a norm this turn.
type Behavior string

const (
	Comply  Behavior = "comply"
	Violate Behavior = "violate"
)

// #endregion behavior

// #region catalog

// Definition pairs a norm-weight name with its bipolar reading: what -1 and +1
// mean on that dimension.
type Definition struct {
	Name         string
	NegativePole string
	PositivePole string
}

// Catalog is the fixed process-wide norm-weight catalog. Order matters: it is
// the layout of the per-actor norm vectors persisted each turn.
var Catalog = []Definition{
	{"multilateral_cooperation", "unilateral action", "multilateral cooperation"},
	{"sovereignty_as_responsibility", "absolute sovereignty", "sovereignty conditional on protecting populations"},
	{"human_rights_universalism", "rights are culturally relative", "rights are universal"},
	{"diplomatic_engagement", "isolation", "sustained engagement"},
	{"norm_entrepreneurship", "norm taker", "norm promoter"},
	{"peaceful_dispute_resolution", "force first", "peaceful settlement only"},
	{"diffuse_reciprocity", "strict quid pro quo", "generalized reciprocity"},
	{"collective_identity_formation", "national identity only", "shared community identity"},
	{"legitimacy_through_consensus", "legitimacy from power", "legitimacy from consensus"},
	{"transparency_accountability", "opaque statecraft", "transparent statecraft"},
}

// CatalogNames returns the catalog names in catalog order.
func CatalogNames() []string {
	out := make([]string, len(Catalog))
	for i, d := range Catalog {
		out[i] = d.Name
	}
	return out
}

// InCatalog reports whether name is one of the ten catalog norms.
func InCatalog(name string) bool {
	for _, d := range Catalog {
		if d.Name == name {
			return true
		}
	}
	return false
}

// #endregion catalog

// #region status

// Status is the reported view of one ledger entry.
type Status struct {
	Strength     float64
	AdoptionRate float64
}

// #endregion status
