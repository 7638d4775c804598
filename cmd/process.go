package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"thaitanloi365/go-face-focus/facefocus"
)

var (
	processOpts Options
	outputDir   string
)

var processCmd = &cobra.Command{
	Use:   "process <image>...",
	Short: "Run the pipeline over image files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runProcess(cmd.Context(), cmd, &processOpts, args)
	},
}

func init() {
	addPipelineFlags(processCmd, &processOpts)
	processCmd.Flags().StringVarP(&outputDir, "output", "o", "out", "Directory for processed images")
	rootCmd.AddCommand(processCmd)
}

func runProcess(ctx context.Context, cmd *cobra.Command, opts *Options, inputs []string) error {
	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}
	pipeline, err := facefocus.New(cfg, log)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("can not create output directory: %w", err)
	}

	bar := progressbar.NewOptions(len(inputs),
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		output := filepath.Join(outputDir, filepath.Base(input))
		if abs(input) == abs(output) {
			return fmt.Errorf("input and output paths must be different: %s", input)
		}
		report, err := pipeline.ProcessFile(input, output)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"input":   input,
			"output":  output,
			"faces":   len(report.Faces),
			"skipped": report.Skipped,
		}).Debug("Image processed")
		if err := bar.Add(1); err != nil {
			log.WithError(err).Debug("Progress bar update failed")
		}
	}
	return bar.Finish()
}

func abs(path string) string {
	p, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return p
}
