package chatbot

import (
	"context"
	"errors"

	"freelance-hub/internal/infrastructure/embedding"
	"freelance-hub/internal/observability"
)

type responseFunc func(ctx context.Context) (string, error)

// Bot resolves intents through the rule tier, then the semantic fallback,
// then a default message, and dispatches the resolved intent to its
// response handler. The handler table is built once at construction so the
// mapping stays exhaustive over the taxonomy.
type Bot struct {
	rules    *RuleClassifier
	semantic *SemanticFallback
	gen      *ResponseGenerator
	handlers map[Intent]responseFunc
}

// NewBot wires the two classifier tiers to a response generator. The
// semantic tier may be nil; classification then stops after the rule tier.
func NewBot(rules *RuleClassifier, semantic *SemanticFallback, gen *ResponseGenerator) *Bot {
	if rules == nil {
		rules = NewRuleClassifier()
	}
	b := &Bot{rules: rules, semantic: semantic, gen: gen}
	b.handlers = map[Intent]responseFunc{
		IntentGreeting:            gen.Greeting,
		IntentThanks:              gen.Thanks,
		IntentFindingClients:      gen.FindingClients,
		IntentPricing:             gen.Pricing,
		IntentSkillImprovement:    gen.SkillImprovement,
		IntentProfileTips:         gen.ProfileTips,
		IntentAnalyzeSkillProfile: gen.AnalyzeSkillProfile,
		IntentClientCommunication: gen.ClientCommunication,
		IntentTimeManagement:      gen.TimeManagement,
		IntentPayment:             gen.Payment,
		IntentContract:            gen.Contract,
		IntentFeedback:            gen.Feedback,
		IntentGigCreation:         gen.GigCreationTips,
		IntentSuccessStrategies:   gen.SuccessStrategies,
	}
	return b
}

// ClassifyIntent runs both tiers. A (_, false, nil) return means neither
// tier understood the text; errors come only from the embedding dependency.
func (b *Bot) ClassifyIntent(ctx context.Context, text string) (Intent, bool, error) {
	if intent, ok := b.rules.Classify(text); ok {
		observability.IncIntentClassified("rule", intent.String())
		return intent, true, nil
	}

	if b.semantic == nil {
		return "", false, nil
	}

	intent, ok, err := b.semantic.Classify(ctx, text)
	if err != nil {
		if errors.Is(err, embedding.ErrModelUnavailable) {
			observability.IncEmbedderError()
		}
		return "", false, err
	}
	if ok {
		observability.IncIntentClassified("semantic", intent.String())
		return intent, true, nil
	}
	return "", false, nil
}

// Respond classifies the text and renders the matching canned response, or
// a default message when no tier matched. The returned intent is only
// meaningful when matched is true.
func (b *Bot) Respond(ctx context.Context, text string) (intent Intent, matched bool, reply string, err error) {
	intent, matched, err = b.ClassifyIntent(ctx, text)
	if err != nil {
		return "", false, "", err
	}
	if matched {
		if h, known := b.handlers[intent]; known {
			reply, err = h(ctx)
			return intent, true, reply, err
		}
	}
	observability.IncIntentClassified("default", "none")
	return "", false, b.gen.Default(), nil
}

// GetResponse returns just the reply text for the message.
func (b *Bot) GetResponse(ctx context.Context, text string) (string, error) {
	_, _, reply, err := b.Respond(ctx, text)
	return reply, err
}
