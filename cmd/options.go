package cmd

import (
	"github.com/spf13/cobra"

	"thaitanloi365/go-face-focus/facefocus"
)

// Options holds the pipeline flags shared by run and process.
type Options struct {
	Backend       string
	ScalingFactor float64
	BlurSigma     float64
	EyeScope      string
	AllowDegraded bool
	HUD           bool
	FaceModel     string
	EyeModel      string
	SmileModel    string
}

func addPipelineFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Backend, "backend", "b", facefocus.BackendHaar, "Detector backend: haar, pico")
	cmd.Flags().Float64VarP(&opts.ScalingFactor, "scale", "s", 2, "Detection runs on the frame shrunk by this factor")
	cmd.Flags().Float64Var(&opts.BlurSigma, "blur", 10, "Background blur standard deviation")
	cmd.Flags().StringVar(&opts.EyeScope, "eye-scope", "", "Eye search: frame, legacy, face (default frame, face for pico)")
	cmd.Flags().BoolVar(&opts.AllowDegraded, "allow-degraded", false, "Run even if some models fail to load")
	cmd.Flags().BoolVar(&opts.HUD, "hud", true, "Draw the title and face count on the output")
	cmd.Flags().StringVar(&opts.FaceModel, "face-model", "", "Face model file (default depends on backend)")
	cmd.Flags().StringVar(&opts.EyeModel, "eye-model", "", "Eye model file (default depends on backend)")
	cmd.Flags().StringVar(&opts.SmileModel, "smile-model", "", "Smile model file (default depends on backend, none for pico)")
}

// buildConfig starts from the --config file, if any, and applies every flag
// the user set. Without a config file every flag applies.
func buildConfig(cmd *cobra.Command, opts *Options) (*facefocus.Config, error) {
	cfg := &facefocus.Config{}
	if cfgFile != "" {
		var err error
		if cfg, err = facefocus.LoadConfig(cfgFile); err != nil {
			return nil, err
		}
	}

	use := func(name string) bool {
		return cfgFile == "" || cmd.Flags().Changed(name)
	}
	if use("backend") {
		cfg.Backend = opts.Backend
	}
	if use("scale") {
		cfg.ScalingFactor = opts.ScalingFactor
	}
	if use("blur") {
		cfg.BlurSigma = opts.BlurSigma
	}
	if use("eye-scope") {
		cfg.EyeScope = facefocus.EyeScope(opts.EyeScope)
	}
	if use("allow-degraded") {
		cfg.AllowDegraded = opts.AllowDegraded
	}
	if use("hud") {
		cfg.HUD = opts.HUD
	}
	if opts.FaceModel != "" {
		cfg.Models.Face = opts.FaceModel
	}
	if opts.EyeModel != "" {
		cfg.Models.Eye = opts.EyeModel
	}
	if opts.SmileModel != "" {
		cfg.Models.Smile = opts.SmileModel
	}
	return cfg, nil
}
