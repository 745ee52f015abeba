package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"csslearn/model"
	"csslearn/state"
)

// Learn builds the model from corpus and saves its snapshot.
func Learn(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("learn")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	dst := cmd.String("model")
	if len(dst) == 0 {
		return errors.New("no model destination has been specified")
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Learning starting", zap.String("source", src), zap.String("model", dst),
		zap.Stringer("parser", env.Cfg.Corpus.Parser), zap.Stringer("session", env.Session))
	defer func(start time.Time) {
		if err == nil {
			log.Info("Learning completed", zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	// check early, learning could take a while
	if err := prepareDestination(dst, env.Overwrite, log); err != nil {
		return err
	}

	m := model.New()
	if _, err := learnFrom(ctx, src, m, env, log); err != nil {
		return err
	}
	if err := saveModel(dst, m); err != nil {
		return fmt.Errorf("unable to save model: %w", err)
	}

	// sources inside archives cannot be copied
	if err := env.Rpt.StoreCopy("corpus", src); err != nil {
		log.Debug("Unable to store corpus in the report", zap.String("source", src), zap.Error(err))
	}

	env.Rpt.Store("model.yaml", dst)
	env.Rpt.StoreData("model.txt", []byte(m.String()))
	return nil
}
