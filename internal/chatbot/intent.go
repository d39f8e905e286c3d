package chatbot

// Intent is the classified purpose of a chat message.
type Intent string

const (
	IntentGreeting            Intent = "greeting"
	IntentThanks              Intent = "thanks"
	IntentFindingClients      Intent = "finding_clients"
	IntentPricing             Intent = "pricing"
	IntentSkillImprovement    Intent = "skill_improvement"
	IntentProfileTips         Intent = "profile_tips"
	IntentAnalyzeSkillProfile Intent = "analyze_skill_profile"
	IntentClientCommunication Intent = "client_communication"
	IntentTimeManagement      Intent = "time_management"
	IntentPayment             Intent = "payment"
	IntentContract            Intent = "contract"
	IntentFeedback            Intent = "feedback"
	IntentGigCreation         Intent = "gig_creation"
	IntentSuccessStrategies   Intent = "success_strategies"
)

// allIntents is the closed taxonomy in its fixed priority order. The order
// doubles as the anchor order for the semantic fallback.
var allIntents = []Intent{
	IntentGreeting,
	IntentThanks,
	IntentFindingClients,
	IntentPricing,
	IntentSkillImprovement,
	IntentProfileTips,
	IntentAnalyzeSkillProfile,
	IntentClientCommunication,
	IntentTimeManagement,
	IntentPayment,
	IntentContract,
	IntentFeedback,
	IntentGigCreation,
	IntentSuccessStrategies,
}

// Intents returns a copy of the taxonomy in priority order.
func Intents() []Intent {
	out := make([]Intent, len(allIntents))
	copy(out, allIntents)
	return out
}

func (i Intent) String() string { return string(i) }

func (i Intent) Valid() bool {
	for _, known := range allIntents {
		if i == known {
			return true
		}
	}
	return false
}
