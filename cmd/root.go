package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"thaitanloi365/go-face-focus/camera"
)

// Version is the application version.
const Version = "0.1.0"

// Exit statuses.
const (
	exitFailure            = 1
	exitCaptureUnavailable = 2
)

var (
	cfgFile   string
	debugMode bool
	logFile   string

	// log is set up by the root command before any subcommand runs.
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:     "face-focus",
	Short:   "Sharpen faces and blur everything else in camera frames",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = initLogger(debugMode, logFile)
		return nil
	},
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	// Create a context that listens for Ctrl+C (SIGINT) or Kill (SIGTERM)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, camera.ErrCaptureUnavailable) {
		return exitCaptureUnavailable
	}
	return exitFailure
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode with verbose logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file, rotated by size")
}
