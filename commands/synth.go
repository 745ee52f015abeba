package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"csslearn/model"
	"csslearn/state"
	"csslearn/synth"
)

// Synthesize generates new stylesheet either from saved model or from corpus
// learned on the fly. Without destination result goes to stdout.
func Synthesize(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("synthesize")

	conf := env.Cfg.Synthesis
	if cmd.IsSet("rules") {
		conf.Rules = cmd.Int("rules")
	}
	if cmd.IsSet("seed") {
		conf.Seed = cmd.Uint64("seed")
	}
	if conf.Rules < 0 {
		return fmt.Errorf("number of rules cannot be negative: %d", conf.Rules)
	}
	env.Overwrite = cmd.Bool("overwrite")

	rng, seed := newRand(conf.Seed)

	args := cmd.Args().Slice()

	var (
		m   *model.Model
		src string
	)
	if src = cmd.String("model"); len(src) > 0 {
		if m, err = loadModel(src, rng); err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			return errors.New("no input source has been specified")
		}
		src, args = args[0], args[1:]
		m = model.New(model.WithRand(rng))
		if _, err := learnFrom(ctx, src, m, env, log); err != nil {
			return err
		}
	}

	var dst string
	if len(args) > 0 {
		if dst, err = filepath.Abs(args[0]); err != nil {
			return err
		}
	}
	if len(args) > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", args[1:]))
	}

	s := synth.New(m, log, synth.WithCommentProbability(conf.CommentProbability))
	n := conf.Rules
	if n == 0 {
		n = s.RandomRuleCount()
	}

	// seed is always logged so result could be reproduced
	log.Info("Synthesis starting", zap.String("source", src), zap.Uint64("seed", seed), zap.Int("rules", n),
		zap.Stringer("session", env.Session))

	rules := s.Synthesize(n)
	env.Rpt.StoreData("model.txt", []byte(m.String()))

	if len(dst) == 0 {
		if _, err := synth.Write(os.Stdout, rules); err != nil {
			return fmt.Errorf("unable to write output: %w", err)
		}
		return nil
	}

	outputName := buildOutputPath(dst, newValues(env, src, n, seed, time.Now()), &conf, log)
	if err := prepareDestination(outputName, env.Overwrite, log); err != nil {
		return err
	}
	if err := writeRules(outputName, rules); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	env.Rpt.Store("result"+outputExt, outputName)

	log.Info("Synthesis completed", zap.String("to", outputName))
	return nil
}

func writeRules(name string, rules []synth.Rule) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := synth.Write(f, rules); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
