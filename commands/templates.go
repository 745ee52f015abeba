package commands

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"csslearn/config"
	"csslearn/state"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context string
	Session string
	Corpus  string
	Rules   int
	Seed    uint64
	Date    string
}

// corpusName turns source (corpus path or model file) into short name
// without extension.
func corpusName(src string) string {
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func newValues(env *state.LocalEnv, src string, rules int, seed uint64, now time.Time) Values {
	return Values{
		Session: env.Session.String(),
		Corpus:  corpusName(src),
		Rules:   rules,
		Seed:    seed,
		Date:    now.Format("2006-01-02"),
	}
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
