// Package lint finds and repairs common typing mistakes in stylesheet text.
// Checks are textual and work one line at a time, they do not parse CSS.
package lint

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"csslearn/model"
)

var (
	reMissingSemicolon = regexp.MustCompile(`:[^;{]*$`)
	reNoValue          = regexp.MustCompile(`([a-zA-Z-]+)\s*:\s*$`)
)

// Check reports issues found in a single line. Issues are returned in fixed
// order: double-colon, missing-semicolon, unclosed-bracket,
// property-without-value.
func Check(line string) []Issue {
	var issues []Issue
	if hasDoubleColon(line) {
		issues = append(issues, IssueDoubleColon)
	}
	if reMissingSemicolon.MatchString(line) {
		issues = append(issues, IssueMissingSemicolon)
	}
	if strings.Count(line, "{") != strings.Count(line, "}") {
		issues = append(issues, IssueUnclosedBracket)
	}
	if reNoValue.MatchString(line) {
		issues = append(issues, IssuePropertyWithoutValue)
	}
	return issues
}

func hasDoubleColon(line string) bool {
	return strings.Contains(line, "::") &&
		!strings.Contains(line, "::before") && !strings.Contains(line, "::after")
}

// Fix applies remedies for issues to line. Missing values are taken from m,
// property left without a known value is not touched. Surplus closing
// brackets cannot be fixed by appending and are left alone.
func Fix(line string, issues []Issue, m *model.Model) string {
	if slices.Contains(issues, IssueDoubleColon) {
		line = strings.Replace(line, "::", ":", 1)
	}

	switch {
	case slices.Contains(issues, IssuePropertyWithoutValue):
		// value is appended together with semicolon
		if m == nil {
			break
		}
		match := reNoValue.FindStringSubmatch(line)
		if match == nil {
			break
		}
		if value := m.ValueFor(match[1]); value != "" {
			line = strings.TrimRight(line, " \t") + " " + value + ";"
		}
	case slices.Contains(issues, IssueMissingSemicolon):
		line = insertSemicolon(line)
	}

	if slices.Contains(issues, IssueUnclosedBracket) {
		if open, closed := strings.Count(line, "{"), strings.Count(line, "}"); open > closed {
			line += strings.Repeat("}", open-closed)
		}
	}
	return line
}

// insertSemicolon terminates last declaration, keeping closing brackets at
// the end of line in place.
func insertSemicolon(line string) string {
	trimmed := strings.TrimRight(line, " \t")
	body := strings.TrimRight(trimmed, "} \t")
	return body + ";" + trimmed[len(body):]
}

// Finding is a set of issues found on a line of a file.
type Finding struct {
	Line   int // 1 based
	Text   string
	Issues []Issue
}

func (f Finding) String() string {
	names := make([]string, 0, len(f.Issues))
	for _, issue := range f.Issues {
		names = append(names, issue.String())
	}
	return fmt.Sprintf("%d: %s [%s]", f.Line, strings.TrimSpace(f.Text), strings.Join(names, ", "))
}

// CheckFile checks stylesheet text line by line. Unlike Check, bracket
// balance is tracked for the whole text: a block left open is reported on
// the line where it starts and a stray closing bracket on its own line.
// Missing semicolons and values are only looked for in declarations, so
// selectors spanning several lines are left alone. Comments are ignored.
func CheckFile(r io.Reader) ([]Finding, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	findings, _ := check(lines)
	return findings, nil
}

// FixFile copies stylesheet text from r to w repairing lines CheckFile would
// complain about. Blocks left open are closed at the end of text. It returns
// number of repairs made.
func FixFile(r io.Reader, w io.Writer, m *model.Model) (int, error) {
	lines, err := readLines(r)
	if err != nil {
		return 0, err
	}
	findings, open := check(lines)

	fixed := 0
	for _, f := range findings {
		// brackets are balanced for the whole text below
		issues := slices.DeleteFunc(slices.Clone(f.Issues), func(issue Issue) bool {
			return issue == IssueUnclosedBracket
		})
		if len(issues) == 0 {
			continue
		}
		if line := Fix(f.Text, issues, m); line != f.Text {
			lines[f.Line-1] = line
			fixed++
		}
	}
	for range open {
		lines = append(lines, "}")
		fixed++
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return fixed, bw.Flush()
}

// check returns findings ordered by line and number of blocks left open.
func check(lines []string) ([]Finding, int) {
	var (
		findings  []Finding
		index     = make(map[int]int)
		opened    []int
		inComment bool
	)

	add := func(n int, issue Issue) {
		i, ok := index[n]
		if !ok {
			index[n] = len(findings)
			findings = append(findings, Finding{Line: n, Text: lines[n-1], Issues: []Issue{issue}})
			return
		}
		if !slices.Contains(findings[i].Issues, issue) {
			findings[i].Issues = append(findings[i].Issues, issue)
		}
	}

	for i, text := range lines {
		n := i + 1
		code := stripComments(text, &inComment)
		declarations := isDeclaration(code, len(opened) > 0)
		for _, issue := range Check(code) {
			switch issue {
			case IssueUnclosedBracket:
			case IssueMissingSemicolon, IssuePropertyWithoutValue:
				if declarations {
					add(n, issue)
				}
			default:
				add(n, issue)
			}
		}
		for _, ch := range code {
			switch ch {
			case '{':
				opened = append(opened, n)
			case '}':
				if len(opened) == 0 {
					add(n, IssueUnclosedBracket)
				} else {
					opened = opened[:len(opened)-1]
				}
			}
		}
	}
	for _, n := range opened {
		add(n, IssueUnclosedBracket)
	}

	slices.SortStableFunc(findings, func(a, b Finding) int {
		return a.Line - b.Line
	})
	return findings, len(opened)
}

// isDeclaration tells if line could hold declarations: it starts inside a
// block or opens one. Lines ending with comma continue selector group or
// value list.
func isDeclaration(code string, inBlock bool) bool {
	if strings.HasSuffix(strings.TrimRight(code, " \t"), ",") {
		return false
	}
	return inBlock || strings.Contains(code, "{")
}

// stripComments removes comments from line, open carries state of comment
// spanning several lines.
func stripComments(line string, open *bool) string {
	var sb strings.Builder
	for len(line) > 0 {
		if *open {
			end := strings.Index(line, "*/")
			if end < 0 {
				break
			}
			line, *open = line[end+2:], false
			continue
		}
		start := strings.Index(line, "/*")
		if start < 0 {
			sb.WriteString(line)
			break
		}
		sb.WriteString(line[:start])
		line, *open = line[start+2:], true
	}
	return sb.String()
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
