package rating

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/coolduebtn/stock-rating-checker/models"
)

// Classified pairs a platform result with its sentiment. Voted is false for
// failed fetches, which carry no sentiment.
type Classified struct {
	Result    models.PlatformResult
	Sentiment models.Sentiment
	Voted     bool
}

// Normalize case-folds text and collapses whitespace runs to single spaces.
func Normalize(text string) string {
	return strings.Join(strings.Fields(cases.Fold().String(text)), " ")
}

// Classify returns the sentiment of a successful result. The second return is
// false when the result failed and must not vote.
//
// A successful result from a platform outside the table has no vocabulary and
// classifies as neutral.
func Classify(r models.PlatformResult) (models.Sentiment, bool) {
	if !r.Success {
		return "", false
	}

	p, ok := Lookup(r.Platform)
	if !ok {
		return models.Neutral, true
	}
	rule, ok := RuleFor(p.Kind)
	if !ok {
		return models.Neutral, true
	}

	return rule.Apply(r), true
}

// Apply classifies r against the rule's vocabulary.
func (rule Rule) Apply(r models.PlatformResult) models.Sentiment {
	text := r.RatingText
	if rule.Field == CategoryField {
		text = r.CategoryText
	}
	return rule.classifyText(Normalize(text))
}

func (rule Rule) classifyText(text string) models.Sentiment {
	if text == "" {
		return models.Neutral
	}
	if containsAny(text, rule.Positive) {
		return models.Positive
	}
	if containsAny(text, rule.Negative) {
		return models.Negative
	}
	return models.Neutral
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// ClassifyAll classifies every result, keeping input order.
func ClassifyAll(results []models.PlatformResult) []Classified {
	out := make([]Classified, 0, len(results))
	for _, r := range results {
		s, voted := Classify(r)
		out = append(out, Classified{Result: r, Sentiment: s, Voted: voted})
	}
	return out
}

// Votes returns the sentiments of the voting platforms only.
func Votes(classified []Classified) []models.Sentiment {
	votes := make([]models.Sentiment, 0, len(classified))
	for _, c := range classified {
		if c.Voted {
			votes = append(votes, c.Sentiment)
		}
	}
	return votes
}

// StyleClass maps a display label to its CSS class, e.g. "Strong Buy" to
// "rating-strong-buy".
func StyleClass(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return "rating-na"
	}
	return "rating-" + strings.Join(strings.Fields(label), "-")
}
