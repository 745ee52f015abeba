// Package synth produces new CSS rules sampled from a learned frequency
// model.
package synth

import (
	"io"
	"math/rand/v2"

	"go.uber.org/zap"

	"csslearn/css"
	"csslearn/model"
)

const (
	minProperties = 2
	maxProperties = 5

	minRules = 3
	maxRules = 8
)

// Comments which may precede synthesized rules.
var Comments = []string{
	"Main navigation styles",
	"Header section",
	"Footer styles",
	"Card component",
	"Button styles",
	"Responsive adjustments",
	"TODO: Fix alignment issues",
	"Media query for mobile",
}

// Rule is synthesized rule with optional leading comment.
type Rule struct {
	css.Rule
	Comment string
}

// Synthesizer generates rules. It only reads the model, all randomness comes
// from the model random source so a seeded model produces repeatable output.
type Synthesizer struct {
	log         *zap.Logger
	model       *model.Model
	rng         *rand.Rand
	commentProb float64
}

// Option customizes Synthesizer.
type Option func(*Synthesizer)

// WithCommentProbability sets the chance of a comment line preceding each
// rule. Values outside of [0,1] are clamped.
func WithCommentProbability(p float64) Option {
	return func(s *Synthesizer) {
		s.commentProb = min(max(p, 0), 1)
	}
}

// New creates synthesizer for model.
func New(m *model.Model, log *zap.Logger, opts ...Option) *Synthesizer {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Synthesizer{
		log:   log.Named("synth"),
		model: m,
		rng:   m.Rand(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RandomRuleCount returns rule count to use when none was requested.
func (s *Synthesizer) RandomRuleCount() int {
	return minRules + s.rng.IntN(maxRules-minRules+1)
}

// Synthesize returns exactly n rules, nothing for n <= 0.
func (s *Synthesizer) Synthesize(n int) []Rule {
	if n <= 0 {
		return []Rule{}
	}

	selectors := s.model.Selectors()
	if len(selectors) == 0 {
		s.log.Debug("No selectors learned, using built-in list")
		selectors = model.DefaultSelectors
	}

	rules := make([]Rule, 0, n)
	for range n {
		rule := Rule{Rule: s.rule(selectors[s.rng.IntN(len(selectors))])}
		if s.commentProb > 0 && s.rng.Float64() < s.commentProb {
			rule.Comment = Comments[s.rng.IntN(len(Comments))]
		}
		rules = append(rules, rule)
	}
	return rules
}

func (s *Synthesizer) rule(selector string) css.Rule {
	count := minProperties + s.rng.IntN(maxProperties-minProperties+1)

	candidates := [][]string{
		s.model.PropertiesForSelector(selector),
		s.model.CommonProperties(model.DefaultCommonLimit),
		s.model.KnownProperties(),
	}
	known := candidates[len(candidates)-1]

	used := make(map[string]struct{}, count)
	rule := css.Rule{Selector: selector, Declarations: make([]css.Declaration, 0, count)}
	for range count {
		property := s.pickUnused(candidates, used)
		if property == "" {
			if len(known) == 0 {
				s.log.Warn("No properties known, rule left empty", zap.String("selector", selector))
				break
			}
			// fewer distinct properties than requested
			property = known[s.rng.IntN(len(known))]
		}
		used[property] = struct{}{}
		rule.Declarations = append(rule.Declarations, css.Declaration{
			Property: property,
			Value:    s.model.ValueFor(property),
		})
	}
	return rule
}

// pickUnused goes over candidate lists in order of preference and returns
// random property not used yet from the first list which has one.
func (s *Synthesizer) pickUnused(candidates [][]string, used map[string]struct{}) string {
	for _, list := range candidates {
		var free []string
		for _, p := range list {
			if _, ok := used[p]; !ok {
				free = append(free, p)
			}
		}
		if len(free) > 0 {
			return free[s.rng.IntN(len(free))]
		}
	}
	return ""
}

// Write renders rules in conventional CSS syntax, each rule followed by an
// empty line. Comments, when present, are written on a line of their own
// just before the rule.
func Write(w io.Writer, rules []Rule) (int64, error) {
	var total int64
	for _, r := range rules {
		if r.Comment != "" {
			n, err := io.WriteString(w, "/* "+r.Comment+" */\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := css.WriteRules(w, []css.Rule{r.Rule})
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
