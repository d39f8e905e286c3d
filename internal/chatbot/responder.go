package chatbot

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"freelance-hub/internal/domain/skill"

	"github.com/google/uuid"
)

// Advisor supplies the data-backed additions some responses carry: a course
// pick for the skill-improvement answer and in-demand skills the user lacks
// for the profile analysis. May be nil for anonymous sessions.
type Advisor interface {
	TopCourse(ctx context.Context, userID uuid.UUID) (title string, provider string, ok bool, err error)
	PopularMissingSkills(ctx context.Context, userID uuid.UUID, category string, limit int) ([]string, error)
}

// Profile is the per-session user context responses are personalized with.
type Profile struct {
	UserID uuid.UUID
	Name   string
	Skills []skill.UserSkill
}

// ResponseGenerator produces the canned response for each intent. Tip
// selection is randomized through the injected source so tests can pin it.
type ResponseGenerator struct {
	profile Profile
	advisor Advisor
	rng     *rand.Rand
}

func NewResponseGenerator(profile Profile, advisor Advisor, rng *rand.Rand) *ResponseGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &ResponseGenerator{profile: profile, advisor: advisor, rng: rng}
}

func (g *ResponseGenerator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}

// sample returns n distinct entries in randomized order.
func (g *ResponseGenerator) sample(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	perm := g.rng.Perm(len(items))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, items[idx])
	}
	return out
}

func numbered(header string, tips []string) *strings.Builder {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for i, tip := range tips {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tip)
	}
	return &b
}

func (g *ResponseGenerator) Greeting(context.Context) (string, error) {
	name := ""
	if g.profile.Name != "" {
		name = " " + g.profile.Name
	}
	return g.pick([]string{
		fmt.Sprintf("Hello%s! How can I help you with your freelancing journey today?", name),
		fmt.Sprintf("Hi there%s! I'm your freelancing assistant. What would you like to know?", name),
		fmt.Sprintf("Hey%s! Ready to boost your freelancing career? Ask me anything!", name),
	}), nil
}

func (g *ResponseGenerator) Thanks(context.Context) (string, error) {
	return g.pick([]string{
		"You're welcome! Let me know if you need any other help with your freelancing.",
		"Glad I could help! Don't hesitate to ask more questions.",
		"Anytime! Success in your freelancing journey!",
	}), nil
}

func (g *ResponseGenerator) FindingClients(context.Context) (string, error) {
	tips := []string{
		"Complete your profile with all relevant skills and experience",
		"Create impressive portfolio samples that showcase your capabilities",
		"Set competitive rates initially to build a good reputation",
		"Write personalized proposals for each job",
		"Network with other freelancers in your field",
		"Ask satisfied clients for referrals",
		"Consider specializing in a niche to stand out",
		"Be proactive in looking for gigs - don't just wait for clients to find you",
		"Follow up with potential clients professionally",
	}
	b := numbered("Here are some tips for finding clients and gigs:", g.sample(tips, 5))

	if len(g.profile.Skills) > 0 {
		s := g.profile.Skills[g.rng.Intn(len(g.profile.Skills))]
		fmt.Fprintf(b, "\nWith your skill in %s, you might want to search for gigs that specifically require this expertise.", s.SkillName)
	}
	return b.String(), nil
}

func (g *ResponseGenerator) Pricing(context.Context) (string, error) {
	tips := []string{
		"Research market rates for your skills and experience level",
		"Consider the complexity and urgency of each project",
		"Factor in your overhead costs and desired profit margin",
		"Value your time including research, communication, and revisions",
		"Consider offering package deals for related services",
		"Gradually increase your rates as you gain more experience and positive reviews",
		"Be clear about what's included in your price and what costs extra",
		"Consider different pricing models: hourly, project-based, or retainer",
		"Don't undervalue yourself - quality clients are willing to pay for quality work",
	}
	b := numbered("Setting the right price is crucial for freelance success. Here's my advice:", g.sample(tips, 5))

	advanced := make([]skill.UserSkill, 0, len(g.profile.Skills))
	for _, s := range g.profile.Skills {
		if s.Proficiency == skill.ProficiencyAdvanced || s.Proficiency == skill.ProficiencyExpert {
			advanced = append(advanced, s)
		}
	}
	if len(advanced) > 0 {
		s := advanced[g.rng.Intn(len(advanced))]
		level := "advanced"
		if s.Proficiency == skill.ProficiencyExpert {
			level = "an expert"
		}
		fmt.Fprintf(b, "\nSince you're %s in %s, you might consider charging premium rates for projects requiring this specialized skill.", level, s.SkillName)
	}
	return b.String(), nil
}

func (g *ResponseGenerator) SkillImprovement(ctx context.Context) (string, error) {
	tips := []string{
		"Take online courses in your field (check our Courses page for recommendations)",
		"Join professional communities and forums to learn from peers",
		"Work on personal projects to practice new techniques",
		"Read industry blogs, books, and publications",
		"Attend webinars and virtual conferences",
		"Follow experts in your field on social media",
		"Seek feedback on your work from experienced professionals",
		"Collaborate with other freelancers on projects",
		"Set aside dedicated time each week for learning",
	}
	b := numbered("Continuous learning is essential for freelancers. Here are ways to improve your skills:", g.sample(tips, 5))

	if g.advisor != nil && g.profile.UserID != uuid.Nil {
		title, provider, ok, err := g.advisor.TopCourse(ctx, g.profile.UserID)
		if err != nil {
			return "", err
		}
		if ok {
			fmt.Fprintf(b, "\nBased on your profile, you might benefit from taking '%s' on %s.", title, provider)
		}
	}
	return b.String(), nil
}

func (g *ResponseGenerator) ProfileTips(context.Context) (string, error) {
	tips := []string{
		"Use a professional profile picture",
		"Write a compelling bio that highlights your unique value proposition",
		"Showcase your best and most relevant work in your portfolio",
		"Include specific metrics and results from past projects",
		"Highlight your educational background and certifications",
		"List all your relevant skills with accurate proficiency levels",
		"Add testimonials from satisfied clients",
		"Keep your profile updated with your latest accomplishments",
		"Use keywords relevant to your industry to improve searchability",
	}
	return numbered("A strong profile attracts more clients. Here's how to improve yours:", g.sample(tips, 5)).String(), nil
}

func (g *ResponseGenerator) AnalyzeSkillProfile(ctx context.Context) (string, error) {
	if g.profile.UserID == uuid.Nil || len(g.profile.Skills) == 0 {
		return "I can analyze your skill profile once you've added skills to your profile. Go to the Profile page to add your skills.", nil
	}

	var b strings.Builder
	b.WriteString("Based on your skill profile, here's my analysis:\n\n")

	counts := make(map[string]int)
	for _, s := range g.profile.Skills {
		counts[s.Category]++
	}
	strongest := ""
	for cat, n := range counts {
		if strongest == "" || n > counts[strongest] || (n == counts[strongest] && cat < strongest) {
			strongest = cat
		}
	}
	fmt.Fprintf(&b, "Your strongest category appears to be %s with %d skills.\n\n", strongest, counts[strongest])

	advanced := make([]skill.UserSkill, 0, len(g.profile.Skills))
	for _, s := range g.profile.Skills {
		if s.Proficiency == skill.ProficiencyAdvanced || s.Proficiency == skill.ProficiencyExpert {
			advanced = append(advanced, s)
		}
	}
	if len(advanced) > 0 {
		sort.SliceStable(advanced, func(i, j int) bool {
			return advanced[i].Proficiency.Rank() > advanced[j].Proficiency.Rank()
		})
		b.WriteString("Your top skills are:\n")
		for i, s := range advanced {
			if i >= 3 {
				break
			}
			fmt.Fprintf(&b, "- %s (%s)\n", s.SkillName, s.Proficiency)
		}
	}

	if g.advisor != nil {
		missing, err := g.advisor.PopularMissingSkills(ctx, g.profile.UserID, strongest, 5)
		if err != nil {
			return "", err
		}
		if len(missing) > 0 {
			b.WriteString("\nTo strengthen your profile, consider adding these in-demand skills:\n")
			for i, name := range missing {
				if i >= 2 {
					break
				}
				fmt.Fprintf(&b, "- %s (Popular in %s)\n", name, strongest)
			}
		}
	}
	return b.String(), nil
}

func (g *ResponseGenerator) ClientCommunication(context.Context) (string, error) {
	tips := []string{
		"Respond promptly to client messages, even if just to acknowledge receipt",
		"Set clear expectations about communication channels and response times",
		"Use professional language and check for errors before sending",
		"Ask clarifying questions to fully understand the client's needs",
		"Provide regular updates on project progress",
		"Document important decisions and agreements in writing",
		"Be honest about challenges and propose solutions",
		"Listen actively to client feedback and concerns",
		"Express gratitude for the opportunity to work together",
	}
	return numbered("Good communication is key to successful freelancing. Here are some tips:", g.sample(tips, 5)).String(), nil
}

func (g *ResponseGenerator) TimeManagement(context.Context) (string, error) {
	tips := []string{
		"Use time tracking tools to understand how you spend your working hours",
		"Break projects into smaller, manageable tasks with deadlines",
		"Set realistic timelines and build in buffer time for unexpected issues",
		"Use the Pomodoro Technique (25 minutes of focus, then a short break)",
		"Batch similar tasks together to minimize context switching",
		"Schedule dedicated time for client communication",
		"Learn to say no to projects that don't align with your goals or availability",
		"Create and follow a consistent daily routine",
		"Use project management tools to stay organized",
	}
	return numbered("Effective time management is crucial for freelancers. Here's how to improve:", g.sample(tips, 5)).String(), nil
}

func (g *ResponseGenerator) Payment(context.Context) (string, error) {
	tips := []string{
		"Always use professional invoices with all the necessary details",
		"Set clear payment terms and deadlines upfront",
		"Consider requiring a deposit before starting work",
		"Keep track of all your invoices and payments for tax purposes",
		"Use secure payment platforms that protect both you and the client",
		"Follow up politely but firmly on overdue payments",
		"Consider offering multiple payment methods for client convenience",
		"Include your payment terms in your contract",
		"Keep receipts for all business expenses for tax deductions",
	}
	return numbered("Managing payments properly is essential for freelancers. Here's my advice:", g.sample(tips, 5)).String(), nil
}

func (g *ResponseGenerator) Contract(context.Context) (string, error) {
	tips := []string{
		"Always use written contracts, even for small projects",
		"Clearly define the scope of work and deliverables",
		"Include payment terms, amounts, and deadlines",
		"Specify the project timeline and milestones",
		"Address ownership and copyright of the work",
		"Include a process for handling revisions and changes to the scope",
		"Consider adding a kill fee for canceled projects",
		"Specify confidentiality terms if necessary",
		"Consider having a lawyer review your contract template",
	}
	b := numbered("Good contracts protect both you and your clients. Here's what to consider:", g.sample(tips, 5))
	b.WriteString("\nNote: I'm not a legal professional. Consider consulting with a lawyer for contract advice specific to your situation.")
	return b.String(), nil
}

func (g *ResponseGenerator) Feedback(context.Context) (string, error) {
	tips := []string{
		"Ask for specific feedback on your completed projects",
		"Be open to constructive criticism without taking it personally",
		"Thank clients for their feedback, even if it's negative",
		"Use feedback to identify patterns and areas for improvement",
		"Implement relevant suggestions in future projects",
		"Ask clarifying questions if feedback is vague",
		"Create a system for collecting and organizing feedback",
		"Share positive feedback (with permission) as testimonials",
		"Follow up with clients after implementing their suggestions",
	}
	return numbered("Feedback is valuable for your growth as a freelancer. Here's how to handle it effectively:", g.sample(tips, 5)).String(), nil
}

func (g *ResponseGenerator) GigCreationTips(context.Context) (string, error) {
	tips := []string{
		"Use a clear, specific title that includes your main skill and deliverable",
		"Break down your services into different packages or tiers",
		"Include realistic delivery timeframes for each package",
		"Be specific about what's included and what costs extra",
		"Add eye-catching visuals that showcase your work",
		"Highlight your unique selling point - what makes your service special",
		"List the exact deliverables the client will receive",
		"Address common client concerns or questions in your description",
		"Include relevant keywords to help clients find your gig",
		"Set appropriate expectations about revisions and communication",
	}
	return numbered("Here are some tips for creating effective gigs that attract clients:", g.sample(tips, 5)).String(), nil
}

func (g *ResponseGenerator) SuccessStrategies(context.Context) (string, error) {
	strategies := []string{
		"Specialize in a niche rather than being a generalist to command higher rates",
		"Build a personal brand that showcases your unique value proposition",
		"Create systems and templates to streamline repetitive tasks",
		"Develop excellent communication skills to build client trust",
		"Always deliver more value than the client expects",
		"Network consistently, not just when you need work",
		"Learn to spot and avoid problem clients early",
		"Continuously update your skills to stay competitive",
		"Seek long-term relationships rather than one-off projects",
		"Set aside time for marketing even when you're busy with client work",
	}
	return numbered("Here are some proven strategies for freelancing success:", g.sample(strategies, 5)).String(), nil
}

// Default answers messages neither tier understood.
func (g *ResponseGenerator) Default() string {
	return g.pick(DefaultResponses())
}

// DefaultResponses returns the fixed fallback messages.
func DefaultResponses() []string {
	return []string{
		"I'm here to help with your freelancing questions. You can ask me about finding clients, pricing, improving skills, managing your profile, communicating with clients, managing time, handling payments, contracts, or getting feedback.",
		"I'm not sure I understand your question. I can assist with various freelancing topics like finding work, setting prices, skill development, profile optimization, client communication, time management, payments, contracts, and handling feedback. What would you like to know?",
		"As your freelancing assistant, I can provide advice on many aspects of freelance work. Could you please clarify what specific information you're looking for? I can help with client acquisition, pricing strategies, skill development, and more.",
	}
}
