package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"csslearn/config"
	"csslearn/corpus"
	"csslearn/lint"
	"csslearn/model"
	"csslearn/state"
)

// Lint checks stylesheets for typing mistakes and optionally repairs them in
// place. Values for properties left without one come from the model.
func Lint(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("lint")

	if cmd.NArg() == 0 {
		return errors.New("no input files have been specified")
	}
	fix := cmd.Bool("fix")

	var m *model.Model
	if name := cmd.String("model"); len(name) > 0 {
		if m, err = loadModel(name, nil); err != nil {
			return err
		}
	} else {
		m = model.New()
	}

	var remaining, failed int
	for _, name := range cmd.Args().Slice() {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := lintFile(name, fix, m, env.Rpt, log)
		if err != nil {
			log.Error("Unable to check file", zap.String("file", name), zap.Error(err))
			failed++
			continue
		}
		remaining += n
	}

	switch {
	case failed > 0:
		return fmt.Errorf("unable to check %d file(s)", failed)
	case remaining > 0:
		return fmt.Errorf("%d problem line(s) found", remaining)
	}
	return nil
}

// lintFile reports problems found in the file and returns number of lines
// still having problems. Before fixing, copy of the file is put into the
// debug report (if any).
func lintFile(name string, fix bool, m *model.Model, rpt *config.Report, log *zap.Logger) (int, error) {
	data, err := corpus.ReadStylesheet(name)
	if err != nil {
		return 0, err
	}

	findings, err := lint.CheckFile(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	if len(findings) == 0 {
		log.Debug("No problems found", zap.String("file", name))
		return 0, nil
	}
	if !fix {
		for _, f := range findings {
			log.Warn("Problem found", zap.String("file", name), zap.Int("line", f.Line),
				zap.Stringers("issues", f.Issues), zap.String("text", f.Text))
		}
		return len(findings), nil
	}

	fi, err := os.Stat(name)
	if err != nil {
		return 0, fmt.Errorf("unable to fix file which is not on disk: %w", err)
	}

	buf := new(bytes.Buffer)
	fixed, err := lint.FixFile(bytes.NewReader(data), buf, m)
	if err != nil {
		return 0, err
	}
	if err := rpt.StoreCopy("original/"+filepath.Base(name), name); err != nil {
		log.Warn("Unable to store original file in the report", zap.String("file", name), zap.Error(err))
	}
	if err := os.WriteFile(name, buf.Bytes(), fi.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("unable to save fixed file: %w", err)
	}
	log.Info("File fixed", zap.String("file", name), zap.Int("repairs", fixed))

	findings, err = lint.CheckFile(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return 0, err
	}
	for _, f := range findings {
		log.Warn("Problem could not be fixed", zap.String("file", name), zap.Int("line", f.Line),
			zap.Stringers("issues", f.Issues), zap.String("text", f.Text))
	}
	return len(findings), nil
}
