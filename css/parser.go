package css

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"csslearn/common"
)

var (
	commentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	// Selector text cannot contain braces, block ends at the first "}" -
	// nested blocks are not understood.
	blockPattern       = regexp.MustCompile(`([^{}]+)\{([^}]+)\}`)
	declarationPattern = regexp.MustCompile(`([a-zA-Z-]+)\s*:\s*([^;]+);`)
)

// Parser extracts rules from stylesheets. It never fails: anything it cannot
// make sense of is skipped.
type Parser struct {
	log  *zap.Logger
	mode common.ParserMode
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger, mode common.ParserMode) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser"), mode: mode}
}

// Mode returns parser mode.
func (p *Parser) Mode() common.ParserMode {
	return p.mode
}

// Parse extracts rules from CSS text.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) []Rule {
	log := p.log
	if len(source) > 0 && source[0] != "" {
		log = log.With(zap.String("source", source[0]))
	}
	log.Debug("Parsing CSS", zap.Int("bytes", len(data)), zap.Stringer("mode", p.mode))

	var rules []Rule
	if p.mode.Structural() {
		rules = p.tokenize(data, log)
	} else {
		rules = p.scrape(string(data), log)
	}
	log.Debug("Parsed CSS", zap.Int("rules", len(rules)))
	return rules
}

// scrape locates "selector { block }" pairs in a single pass and picks
// "property: value;" pairs out of every block.
func (p *Parser) scrape(text string, log *zap.Logger) []Rule {
	// keep line numbers intact
	text = commentPattern.ReplaceAllStringFunc(text, func(comment string) string {
		return strings.Repeat("\n", strings.Count(comment, "\n"))
	})

	var (
		rules []Rule
		end   int
	)
	for _, m := range blockPattern.FindAllStringSubmatchIndex(text, -1) {
		end = m[1]

		rawSelector := text[m[2]:m[3]]
		if i := strings.LastIndexByte(rawSelector, ';'); i >= 0 {
			// preceding statement, e.g. @charset or @import
			m[2] += i + 1
			rawSelector = rawSelector[i+1:]
		}
		selector := strings.TrimSpace(rawSelector)
		if selector == "" {
			log.Debug("Skipping block without selector", zap.Int("line", lineAt(text, m[0])))
			continue
		}
		lead := len(rawSelector) - len(strings.TrimLeft(rawSelector, " \t\r\n\f"))

		rule := Rule{
			Selector:     selector,
			Declarations: scrapeDeclarations(text[m[4]:m[5]]),
			SourceLine:   lineAt(text, m[2]+lead),
		}
		if strings.Contains(text[m[4]:m[5]], "{") {
			log.Debug("Nested block is not supported, declarations attributed to outer selector",
				zap.String("selector", selector), zap.Int("line", rule.SourceLine))
		}
		rules = append(rules, rule)
	}

	if rest := text[end:]; strings.Contains(rest, "{") {
		log.Debug("Skipping unterminated block", zap.Int("line", lineAt(text, end+strings.Index(rest, "{"))))
	}
	return rules
}

func scrapeDeclarations(block string) []Declaration {
	var decls []Declaration
	for _, m := range declarationPattern.FindAllStringSubmatch(block, -1) {
		prop, value := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if prop == "" || value == "" {
			continue
		}
		decls = append(decls, Declaration{Property: prop, Value: value})
	}
	return decls
}

func lineAt(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}

// tokenize walks tdewolff CSS grammar, descending into @media blocks.
func (p *Parser) tokenize(data []byte, log *zap.Logger) []Rule {
	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var rules []Rule
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				log.Debug("CSS parse error", zap.Error(err))
			}
			return rules

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if atRule == "@media" || atRule == "@supports" {
				rules = append(rules, p.tokenizeBlock(parser)...)
				continue
			}
			// Skip other @-rules with blocks
			p.skipAtRuleBlock(parser)
			log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.BeginRulesetGrammar:
			rules = append(rules, p.tokenizeRuleset(parser, data)...)
		}
	}
}

// tokenizeBlock collects rules inside conditional group at-rule until its end.
func (p *Parser) tokenizeBlock(parser *css.Parser) []Rule {
	var rules []Rule
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules
		case css.BeginAtRuleGrammar:
			rules = append(rules, p.tokenizeBlock(parser)...)
		case css.BeginRulesetGrammar:
			rules = append(rules, p.tokenizeRuleset(parser, data)...)
		}
	}
}

// tokenizeRuleset creates a rule for every selector in the group.
func (p *Parser) tokenizeRuleset(parser *css.Parser, data []byte) []Rule {
	selectors := parseSelectors(data, parser.Values())
	decls := parseDeclarations(parser)

	rules := make([]Rule, 0, len(selectors))
	for _, sel := range selectors {
		rules = append(rules, Rule{
			Selector:     sel,
			Declarations: append([]Declaration(nil), decls...),
		})
	}
	return rules
}

// parseSelectors extracts selector strings from token data.
func parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	// Split by comma for grouped selectors
	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.Join(strings.Fields(s), " ")
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func parseDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar:
			value := joinValue(parser.Values())
			if len(data) > 0 && value != "" {
				decls = append(decls, Declaration{Property: string(data), Value: value})
			}

		case css.CustomPropertyGrammar:
			// CSS custom properties (--var) carry no reusable knowledge
			continue
		}
	}
}

// joinValue builds raw value string collapsing whitespace.
func joinValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
