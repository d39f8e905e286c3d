package chatbot

import (
	"strings"
	"unicode"
)

// RuleClassifier is the deterministic tier: a phrase table checked first,
// then short token patterns. Both are case-insensitive and evaluated in
// registration order, first hit wins. A miss is a normal outcome.
type RuleClassifier struct {
	phrases  []phraseRule
	patterns []tokenRule
}

type phraseRule struct {
	intent Intent
	phrase string
}

// tokenRule matches a run of consecutive tokens where token i must be a
// member of keyword set i.
type tokenRule struct {
	intent Intent
	sets   [][]string
}

func NewRuleClassifier() *RuleClassifier {
	c := &RuleClassifier{}

	c.addPhrases(IntentFindingClients, "how do i find my first client", "where to find freelance work")
	c.addPhrases(IntentPricing, "how should i price my services", "what should i charge")
	c.addPhrases(IntentSkillImprovement, "what skills should i improve", "which skills to develop")
	c.addPhrases(IntentProfileTips, "tips to improve my profile", "how to optimize my profile")
	c.addPhrases(IntentAnalyzeSkillProfile, "analyze my skill profile", "profile analysis")
	c.addPhrases(IntentGigCreation, "tips for effective gig listings", "how to create a gig listing")
	c.addPhrases(IntentSuccessStrategies, "what are the best freelancing strategies", "freelancing strategies")

	c.addPattern(IntentGreeting, set("hello", "hi", "hey"))
	c.addPattern(IntentThanks, set("thanks", "thank"))
	c.addPattern(IntentFindingClients, set("find"), set("client", "work", "gig"))
	c.addPattern(IntentFindingClients, set("clients", "gigs"), set("find"))
	c.addPattern(IntentPricing, set("price", "pricing", "charge", "rate"))
	c.addPattern(IntentSkillImprovement, set("skill", "improve", "learn"))
	c.addPattern(IntentProfileTips, set("profile"), set("tip", "improve", "optimize"))
	c.addPattern(IntentAnalyzeSkillProfile, set("analyze"), set("skill", "profile"))
	c.addPattern(IntentClientCommunication, set("communication", "communicate", "talk"))
	c.addPattern(IntentTimeManagement, set("time", "manage", "management"))
	c.addPattern(IntentPayment, set("payment", "invoice", "billing"))
	c.addPattern(IntentContract, set("contract"))
	c.addPattern(IntentFeedback, set("feedback", "review"))
	c.addPattern(IntentGigCreation, set("gig"), set("tips", "listing", "create", "effective"))
	c.addPattern(IntentSuccessStrategies, set("strategy", "strategies", "success"))

	return c
}

func set(words ...string) []string { return words }

func (c *RuleClassifier) addPhrases(intent Intent, phrases ...string) {
	for _, p := range phrases {
		c.phrases = append(c.phrases, phraseRule{intent: intent, phrase: normalize(p)})
	}
}

func (c *RuleClassifier) addPattern(intent Intent, sets ...[]string) {
	c.patterns = append(c.patterns, tokenRule{intent: intent, sets: sets})
}

// Classify returns the first matching intent, or false on a miss.
func (c *RuleClassifier) Classify(text string) (Intent, bool) {
	norm := normalize(text)
	if norm == "" {
		return "", false
	}

	for _, pr := range c.phrases {
		if strings.Contains(norm, pr.phrase) {
			return pr.intent, true
		}
	}

	tokens := tokenize(norm)
	for _, tr := range c.patterns {
		if matchTokens(tokens, tr.sets) {
			return tr.intent, true
		}
	}
	return "", false
}

func matchTokens(tokens []string, sets [][]string) bool {
	n := len(sets)
	if n == 0 || len(tokens) < n {
		return false
	}
	for start := 0; start+n <= len(tokens); start++ {
		ok := true
		for i := 0; i < n; i++ {
			if !contains(sets[i], tokens[start+i]) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func contains(words []string, tok string) bool {
	for _, w := range words {
		if w == tok {
			return true
		}
	}
	return false
}

func normalize(text string) string {
	return strings.Join(tokenize(strings.ToLower(text)), " ")
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
