package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thruflo/keymode/internal/config"
	"github.com/thruflo/keymode/internal/devloop"
	"github.com/thruflo/keymode/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "devloop",
	Short: "Format, build and relaunch an example editor in one loop",
	Long: `Devloop runs one iteration of the edit loop used while working on
keymode: format the tree, build the configured example, wait for the
developer to press enter, then launch the fresh binary against the
target file with its stderr captured to a log.

Configuration comes from .devloop.yaml in the current directory; a
missing file means the built-in defaults. The process exits with the
status of the first stage that fails, or with the launched editor's
own exit status.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("devloop version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return err
	}

	logging.Debug("configuration loaded",
		"artifact", cfg.Build.Artifact(),
		"target", cfg.Launch.Target,
		"log", cfg.Launch.Log,
	)

	pipeline, err := devloop.New(pipelineOptions(cwd, cfg))
	if err != nil {
		return err
	}

	_, err = pipeline.Run(ctx)
	return err
}

// pipelineOptions maps the loaded configuration onto the pipeline,
// wired to the process streams.
func pipelineOptions(dir string, cfg *config.Config) devloop.Options {
	return devloop.Options{
		Dir:      dir,
		Format:   cfg.Format.Argv(),
		Build:    cfg.Build.Argv(),
		Artifact: cfg.Build.Artifact(),
		Target:   cfg.Launch.Target,
		LogPath:  cfg.Launch.Log,
		Prompt:   cfg.Gate.Prompt,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}
