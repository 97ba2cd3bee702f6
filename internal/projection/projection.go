package projection

// #region imports
import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/world"
)

// #endregion

// #region identity

// IdentityContext builds the system context embedding one actor's identity.
// Identity shapes how the actor reads every prompt, so this block rides along
// on every responder call for that actor.
func IdentityContext(a *actor.Actor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a sovereign state actor in the international system.\n\n", a.Name)

	b.WriteString("CORE IDENTITY:\n")
	b.WriteString(indentJSON(a.Identity))
	b.WriteString("\n\n")

	b.WriteString("Your identity fundamentally shapes how you perceive threats, opportunities,\n")
	b.WriteString("and appropriate behavior. Your interests are NOT predetermined - they emerge\n")
	b.WriteString("from your identity and social interactions with other states.\n\n")

	fmt.Fprintf(&b, "INTERNALIZED NORMS (you follow these as part of your identity):\n%s\n\n",
		strings.Join(a.NormsInternalized, ", "))
	fmt.Fprintf(&b, "CONTESTED NORMS (you actively challenge these):\n%s\n\n",
		strings.Join(a.NormsContested, ", "))

	b.WriteString("CURRENT RELATIONSHIPS:\n")
	b.WriteString(indentJSON(a.Relationships))
	b.WriteString("\n\n")

	b.WriteString("When making decisions:\n")
	b.WriteString("1. Interpret events through your identity lens\n")
	b.WriteString("2. Consider how actions affect your standing in the international community\n")
	b.WriteString("3. Your interests emerge from who you are, not material capabilities alone\n")
	b.WriteString("4. Norm compliance/violation affects your identity and reputation\n\n")

	b.WriteString("Respond authentically as this state actor would, given their identity and worldview.\n")
	return b.String()
}

// #endregion identity

// #region perception

// PerceptionPrompt asks one actor to read the world snapshot.
func PerceptionPrompt(actorName string, snap world.Snapshot, recentMemory []string) string {
	var b strings.Builder
	b.WriteString("The current world state:\n")
	b.WriteString(indentJSON(snap))
	b.WriteString("\n\n")

	if len(recentMemory) > 0 {
		b.WriteString("Your private memory of recent turns:\n")
		for _, m := range recentMemory {
			fmt.Fprintf(&b, "- %s\n", m)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "As %s, analyze this situation:\n", actorName)
	b.WriteString("1. What does this mean for your national interests (shaped by your identity)?\n")
	b.WriteString("2. How does this affect your relationships with other states?\n")
	b.WriteString("3. Does this violate or reinforce international norms you care about?\n")
	b.WriteString("4. What emotions does this evoke (threat, opportunity, solidarity, betrayal)?\n\n")

	b.WriteString("Provide your analysis in JSON format with keys: interpretation, threat_level,\n")
	b.WriteString("opportunities, norm_assessment, affected_relationships, emotional_response.\n")
	return b.String()
}

// #endregion perception

// #region diplomacy

// MessagesPrompt asks one actor to draft diplomatic messages for a sub-round.
func MessagesPrompt(recipients []string) string {
	var b strings.Builder
	b.WriteString("Given current relationships and situation, draft diplomatic messages to other states.\n")
	fmt.Fprintf(&b, "You may send messages to any subset of: [%s]\n\n", strings.Join(recipients, ", "))
	b.WriteString("Format as JSON: {\"recipient\": \"message content\", ...}\n")
	b.WriteString("Keep messages concise but strategically meaningful. Return {} to stay silent.\n")
	return b.String()
}

// InterpretationPrompt asks a recipient to read its inbox for a sub-round.
func InterpretationPrompt(incoming map[string]string) string {
	var b strings.Builder
	b.WriteString("You received these diplomatic messages:\n")
	b.WriteString(indentJSON(incoming))
	b.WriteString("\n\n")
	b.WriteString("How do you interpret these signals? Update your perceptions of sender intentions.\n")
	b.WriteString("Return JSON with your interpretations.\n")
	return b.String()
}

// #endregion diplomacy

// #region action

// ActionPrompt asks one actor to pick from the fixed menu.
func ActionPrompt(actorName string, snap world.Snapshot, menu []string) string {
	var b strings.Builder
	b.WriteString("Current Situation:\n")
	b.WriteString(indentJSON(snap))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "As %s, choose exactly one action from this menu: [%s]\n\n",
		actorName, strings.Join(menu, ", "))
	b.WriteString("The choice should:\n")
	b.WriteString("1. Authentically reflect your national identity and values\n")
	b.WriteString("2. Consider your current relationships with other states\n")
	b.WriteString("3. Align with the norms you internalize or challenge those you contest\n\n")

	b.WriteString(`Return JSON: {"selected_action": "...", "action_type": "diplomatic|economic|military|cultural|multilateral", "justification": "...", "expected_reactions": {}, "risks": ["..."], "identity_alignment": "..."}` + "\n")
	return b.String()
}

// #endregion action

// #region learning

// RelationshipPrompt asks one actor to propose updated trust levels after
// resolution. Values pass through the registry's validation and smoothing.
func RelationshipPrompt(outcomes map[string]world.Outcome) string {
	var b strings.Builder
	b.WriteString("Based on these outcomes:\n")
	b.WriteString(indentJSON(outcomes))
	b.WriteString("\n\n")
	b.WriteString("Update your trust/rivalry levels with other states.\n")
	b.WriteString("Consider: Did they cooperate or defect? Support or oppose you?\n")
	b.WriteString("Did their actions align with norms you support?\n\n")
	b.WriteString("Return JSON: {\"state_name\": new_relationship_value, ...}\n")
	b.WriteString("Values between -1.0 (strong rivalry) and +1.0 (strong alliance).\n")
	return b.String()
}

// #endregion learning

// #region analyst

// AnalystPrompt asks the norm-adaptation analyst for per-actor weight deltas.
// turnSummaries and actionProfiles come from the session store; recallHits
// from the recall index (may be empty).
func AnalystPrompt(turnSummaries []string, actionProfiles map[string]string, recallHits []string) string {
	var b strings.Builder
	b.WriteString("You analyze how state behavior reshapes each state's normative stance.\n\n")

	b.WriteString("NORM CATALOG (bipolar, weights in [-1, 1]):\n")
	for _, d := range norm.Catalog {
		fmt.Fprintf(&b, "- %s: -1 = %s, +1 = %s\n", d.Name, d.NegativePole, d.PositivePole)
	}
	b.WriteString("\n")

	if len(turnSummaries) > 0 {
		b.WriteString("RECENT TURNS:\n")
		for _, s := range turnSummaries {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	if len(actionProfiles) > 0 {
		b.WriteString("ACTION PROFILES (recency-weighted frequencies):\n")
		b.WriteString(indentJSON(actionProfiles))
		b.WriteString("\n\n")
	}

	if len(recallHits) > 0 {
		b.WriteString("SIMILAR PAST EPISODES:\n")
		for _, h := range recallHits {
			fmt.Fprintf(&b, "- %s\n", h)
		}
		b.WriteString("\n")
	}

	b.WriteString("Propose small adjustments to actor norm weights justified by observed behavior.\n")
	b.WriteString("Keep each delta within [-0.1, 0.1].\n\n")
	b.WriteString(`Return JSON: {"proposals": [{"actor": "...", "norm": "...", "delta": 0.0, "rationale": "..."}]}` + "\n")
	return b.String()
}

// #endregion analyst

// #region helpers

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// #endregion helpers
