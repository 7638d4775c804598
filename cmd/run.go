package cmd

import (
	"context"
	"image"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"thaitanloi365/go-face-focus/camera"
	"thaitanloi365/go-face-focus/facefocus"
)

var (
	runOpts      Options
	deviceID     int
	windowName   string
	pollInterval time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process the webcam feed live until a key is pressed",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runCamera(cmd.Context(), cmd)
	},
}

func init() {
	addPipelineFlags(runCmd, &runOpts)
	runCmd.Flags().IntVarP(&deviceID, "device", "d", 0, "Capture device id")
	runCmd.Flags().StringVar(&windowName, "window", "Camera Frame", "Display window title")
	runCmd.Flags().DurationVar(&pollInterval, "poll", 10*time.Millisecond, "Key poll interval between frames")
	rootCmd.AddCommand(runCmd)
}

func runCamera(ctx context.Context, cmd *cobra.Command) error {
	log.Info("Starting detection program")

	cfg, err := buildConfig(cmd, &runOpts)
	if err != nil {
		return err
	}
	pipeline, err := facefocus.New(cfg, log)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	src, err := camera.OpenWebcam(deviceID)
	if err != nil {
		return err
	}
	defer src.Close()

	sink, err := camera.NewWindow(windowName)
	if err != nil {
		return err
	}
	defer sink.Close()

	shown, err := camera.Run(ctx, src, sink, pollInterval, func(frame *image.RGBA) *image.RGBA {
		out, _ := pipeline.Process(frame)
		return out
	})
	log.WithFields(logrus.Fields{
		"device": deviceID,
		"frames": shown,
	}).Info("Detection program stopped")
	return err
}
