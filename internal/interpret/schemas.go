package interpret

// JSON Schemas for every structured shape the responder is asked for.
// Embedded as consts and compiled once at package init; a schema that fails to
// compile is a programming error, not a runtime condition.

const perceptionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "interpretation": {"type": "string"},
    "threat_level": {"type": ["string", "number"]},
    "opportunities": {"type": "array", "items": {"type": "string"}},
    "norm_assessment": {"type": "string"},
    "affected_relationships": {"type": "array", "items": {"type": "string"}},
    "emotional_response": {"type": "string"}
  },
  "required": ["interpretation"]
}`

const messagesSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": {"type": "string"}
}`

const interpretationSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object"
}`

const actionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "selected_action": {"type": "string"},
    "action": {"type": "string"},
    "action_type": {"type": "string"},
    "justification": {"type": "string"},
    "expected_reactions": {"type": "object", "additionalProperties": {"type": "string"}},
    "risks": {"type": "array", "items": {"type": "string"}},
    "identity_alignment": {"type": "string"}
  },
  "anyOf": [
    {"required": ["selected_action"]},
    {"required": ["action"]}
  ]
}`

const relationshipsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": {"type": "number"}
}`

// Exported aliases: callers hand these to the responder as the requested
// ResponseSchema so the sidecar can constrain its output.
const (
	PerceptionSchema     = perceptionSchema
	MessagesSchema       = messagesSchema
	InterpretationSchema = interpretationSchema
	ActionSchema         = actionSchema
	RelationshipsSchema  = relationshipsSchema
	ProposalsSchema      = proposalsSchema
)

const proposalsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "proposals": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "actor": {"type": "string"},
          "norm": {"type": "string"},
          "delta": {"type": "number"},
          "rationale": {"type": "string"}
        },
        "required": ["actor", "norm", "delta"]
      }
    }
  },
  "required": ["proposals"]
}`
