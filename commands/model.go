// Package commands implements program subcommands: learning the model from a
// corpus, synthesizing new stylesheets and checking existing ones.
package commands

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"csslearn/config"
	"csslearn/corpus"
	"csslearn/css"
	"csslearn/model"
	"csslearn/state"
)

// newRand returns random source for seed and the seed actually used, zero
// seed is replaced with a random one so run could be repeated.
func newRand(seed uint64) (*rand.Rand, uint64) {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed)), seed
}

func scanOptions(conf *config.CorpusConfig) corpus.ScanOptions {
	return corpus.ScanOptions{
		SkipHidden: conf.SkipHidden,
		SkipDirs:   conf.SkipDirs,
		Archives:   conf.Archives,
	}
}

// learnFrom feeds all stylesheets found in src into the model.
func learnFrom(ctx context.Context, src string, m *model.Model, env *state.LocalEnv, log *zap.Logger) (corpus.Stats, error) {
	paths, err := corpus.Resolve(ctx, src, scanOptions(&env.Cfg.Corpus), log)
	if err != nil {
		return corpus.Stats{}, err
	}
	if len(paths) == 0 {
		log.Warn("No stylesheets found, built-in defaults will be used", zap.String("source", src))
	}

	p := css.NewParser(log, env.Cfg.Corpus.Parser)
	st, err := corpus.Learn(ctx, paths, p, m, log)
	if err != nil {
		return st, err
	}

	ms := m.Stats()
	log.Info("Corpus learned",
		zap.Int("files", st.Files), zap.Int("skipped", st.Skipped), zap.Int("rules", st.Rules),
		zap.Int("selectors", ms.Selectors), zap.Int("properties", ms.Properties), zap.Int("values", ms.Values))
	return st, nil
}

func loadModel(name string, rng *rand.Rand) (*model.Model, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open model: %w", err)
	}
	defer f.Close()

	m, err := model.Load(f, model.WithRand(rng))
	if err != nil {
		return nil, fmt.Errorf("unable to load model (%s): %w", name, err)
	}
	return m, nil
}

func saveModel(name string, m *model.Model) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create model file: %w", err)
	}
	if err := m.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// prepareDestination makes sure file could be written, existing file is
// removed when overwriting is allowed.
func prepareDestination(name string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(name); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
		if err = os.Remove(name); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}
