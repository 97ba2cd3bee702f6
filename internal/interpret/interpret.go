package interpret

// #region imports
import (
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// #endregion

// #region compiled-schemas

var (
	perceptionCompiled     = mustCompile("perception.schema.json", perceptionSchema)
	messagesCompiled       = mustCompile("messages.schema.json", messagesSchema)
	interpretationCompiled = mustCompile("interpretation.schema.json", interpretationSchema)
	actionCompiled         = mustCompile("action.schema.json", actionSchema)
	relationshipsCompiled  = mustCompile("relationships.schema.json", relationshipsSchema)
	proposalsCompiled      = mustCompile("proposals.schema.json", proposalsSchema)
)

func mustCompile(name, schema string) *jsonschema.Schema {
	s, err := jsonschema.CompileString(name, schema)
	if err != nil {
		panic("interpret: compile " + name + ": " + err.Error())
	}
	return s
}

// #endregion compiled-schemas

// #region extract

// ExtractJSON pulls the first balanced JSON object out of raw responder text.
// Models decorate output with code fences and prose; that is repaired here,
// not rejected.
func ExtractJSON(raw string) (string, bool) {
	text := strings.TrimSpace(raw)

	// Strip a leading code fence and its closer.
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if i := strings.LastIndex(text, "```"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// decode extracts, unmarshals, and schema-validates one shape. The returned
// value is the generic decoded object for the caller to map.
func decode(shape string, raw string, schema *jsonschema.Schema) (map[string]any, *MalformedResponseError) {
	obj, ok := ExtractJSON(raw)
	if !ok {
		return nil, &MalformedResponseError{Shape: shape, Reason: "no JSON object found", Raw: raw}
	}
	var v any
	if err := json.Unmarshal([]byte(obj), &v); err != nil {
		return nil, &MalformedResponseError{Shape: shape, Reason: "unmarshal: " + err.Error(), Raw: raw}
	}
	if err := schema.Validate(v); err != nil {
		return nil, &MalformedResponseError{Shape: shape, Reason: "schema: " + err.Error(), Raw: raw}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &MalformedResponseError{Shape: shape, Reason: "not a JSON object", Raw: raw}
	}
	return m, nil
}

// #endregion extract

// #region perception

// ParsePerception validates and maps a perception reply. On failure the caller
// substitutes NullPerception.
func ParsePerception(raw string) (Perception, error) {
	m, merr := decode("perception", raw, perceptionCompiled)
	if merr != nil {
		return NullPerception(), merr
	}
	return Perception{
		Interpretation:        str(m, "interpretation"),
		ThreatLevel:           CanonicalThreat(m["threat_level"]),
		Opportunities:         strSlice(m, "opportunities"),
		NormAssessment:        str(m, "norm_assessment"),
		AffectedRelationships: strSlice(m, "affected_relationships"),
		EmotionalResponse:     str(m, "emotional_response"),
	}, nil
}

// CanonicalThreat coerces a free-form threat level (string or number) onto the
// four-step scale. Unknown input reads as moderate rather than low so a noisy
// responder does not systematically understate threat.
func CanonicalThreat(v any) ThreatLevel {
	switch t := v.(type) {
	case float64:
		switch {
		case t <= 0.25:
			return ThreatLow
		case t <= 0.5:
			return ThreatModerate
		case t <= 0.75:
			return ThreatHigh
		default:
			return ThreatSevere
		}
	case string:
		lower := strings.ToLower(strings.TrimSpace(t))
		switch {
		case lower == "", strings.Contains(lower, "none"), strings.Contains(lower, "minimal"), strings.Contains(lower, "low"):
			return ThreatLow
		case strings.Contains(lower, "severe"), strings.Contains(lower, "critical"), strings.Contains(lower, "extreme"):
			return ThreatSevere
		case strings.Contains(lower, "high"), strings.Contains(lower, "elevated"):
			return ThreatHigh
		default:
			return ThreatModerate
		}
	default:
		return ThreatLow
	}
}

// #endregion perception

// #region messages

// ParseMessages validates and maps a diplomatic-messages reply. Recipients not
// in knownActors are dropped; a message addressed to nobody known is not an
// error, just noise.
func ParseMessages(raw string, knownActors []string) (Messages, error) {
	m, merr := decode("messages", raw, messagesCompiled)
	if merr != nil {
		return Messages{}, merr
	}
	known := make(map[string]bool, len(knownActors))
	for _, a := range knownActors {
		known[a] = true
	}
	out := Messages{}
	for recipient, v := range m {
		text, ok := v.(string)
		if !ok || text == "" || !known[recipient] {
			continue
		}
		out[recipient] = text
	}
	return out, nil
}

// ParseInterpretation checks an advisory interpretation reply is a JSON
// object and returns it raw. The phase is non-binding, so no shape beyond
// "object" is imposed.
func ParseInterpretation(raw string) (string, error) {
	obj, ok := ExtractJSON(raw)
	if !ok {
		return "", &MalformedResponseError{Shape: "interpretation", Reason: "no JSON object found", Raw: raw}
	}
	var v any
	if err := json.Unmarshal([]byte(obj), &v); err != nil {
		return "", &MalformedResponseError{Shape: "interpretation", Reason: "unmarshal: " + err.Error(), Raw: raw}
	}
	if err := interpretationCompiled.Validate(v); err != nil {
		return "", &MalformedResponseError{Shape: "interpretation", Reason: "schema: " + err.Error(), Raw: raw}
	}
	return obj, nil
}

// #endregion messages

// #region action

// ParseAction validates and maps an action reply, tolerating "action" as an
// alias for "selected_action", then enforces menu membership. Off-menu
// selections return InvalidActionError with the abstain default.
func ParseAction(raw string, menu []string) (ActionChoice, error) {
	m, merr := decode("action", raw, actionCompiled)
	if merr != nil {
		return ActionChoice{SelectedAction: AbstainAction}, merr
	}

	selected := str(m, "selected_action")
	if selected == "" {
		selected = str(m, "action")
	}

	choice := ActionChoice{
		SelectedAction:    selected,
		ActionType:        str(m, "action_type"),
		Justification:     str(m, "justification"),
		ExpectedReactions: strMap(m, "expected_reactions"),
		Risks:             strSlice(m, "risks"),
		IdentityAlignment: str(m, "identity_alignment"),
	}

	for _, allowed := range menu {
		if selected == allowed {
			return choice, nil
		}
	}
	choice.SelectedAction = AbstainAction
	return choice, &InvalidActionError{Action: selected, Menu: menu}
}

// #endregion action

// #region relationships

// ParseRelationships validates and maps a relationship-update reply. Range
// checking is the registry's job; this only guarantees the values are numbers.
func ParseRelationships(raw string) (RelationshipProposal, error) {
	m, merr := decode("relationships", raw, relationshipsCompiled)
	if merr != nil {
		return RelationshipProposal{}, merr
	}
	out := RelationshipProposal{}
	for other, v := range m {
		f, ok := v.(float64)
		if !ok {
			continue
		}
		out[other] = f
	}
	return out, nil
}

// #endregion relationships

// #region proposals

// ParseProposals validates and maps an analyst reply. Vetting (actor/norm
// existence, delta caps) is the eval package's job.
func ParseProposals(raw string) ([]Proposal, error) {
	m, merr := decode("proposals", raw, proposalsCompiled)
	if merr != nil {
		return nil, merr
	}
	items, _ := m["proposals"].([]any)
	out := make([]Proposal, 0, len(items))
	for _, it := range items {
		pm, ok := it.(map[string]any)
		if !ok {
			continue
		}
		delta, _ := pm["delta"].(float64)
		out = append(out, Proposal{
			Actor:     str(pm, "actor"),
			Norm:      str(pm, "norm"),
			Delta:     delta,
			Rationale: str(pm, "rationale"),
		})
	}
	return out, nil
}

// #endregion proposals

// #region helpers

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func strSlice(m map[string]any, key string) []string {
	items, _ := m[key].([]any)
	var out []string
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func strMap(m map[string]any, key string) map[string]string {
	raw, _ := m[key].(map[string]any)
	if raw == nil {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// #endregion helpers
