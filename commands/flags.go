package commands

import (
	cli "github.com/urfave/cli/v3"
)

// LearnFlags returns flags of the learn subcommand.
func LearnFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "model", Aliases: []string{"m"}, Value: "model.yaml", Usage: "save learned model to `FILE` (YAML)"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite existing model file"},
	}
}

// SynthesizeFlags returns flags of the synth subcommand.
func SynthesizeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "model", Aliases: []string{"m"}, Usage: "use model from `FILE` instead of learning from SOURCE"},
		&cli.IntFlag{Name: "rules", Aliases: []string{"n"}, Usage: "number of rules to produce, 0 - random (overrides configuration)"},
		&cli.Uint64Flag{Name: "seed", Usage: "random `SEED`, 0 - random (overrides configuration)"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exits, overwrite files"},
	}
}

// LintFlags returns flags of the lint subcommand.
func LintFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "fix", Usage: "repair files in place"},
		&cli.StringFlag{Name: "model", Aliases: []string{"m"}, Usage: "take values for repairs from model `FILE` instead of built-in table"},
	}
}
