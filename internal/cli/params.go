package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/mindlog/internal/config"
)

// paramFlags are the card knobs shared by generate and play.
type paramFlags struct {
	blobs int
	blur  float64
	grain float64
}

func (p *paramFlags) register(flags *pflag.FlagSet) {
	flags.IntVar(&p.blobs, "blobs", config.DefaultBlobCount, fmt.Sprintf("number of blobs (env %s)", config.EnvBlobs))
	flags.Float64Var(&p.blur, "blur", config.DefaultBlurMax, fmt.Sprintf("blur ceiling in pixels (env %s)", config.EnvBlur))
	flags.Float64Var(&p.grain, "grain", config.DefaultGrain, fmt.Sprintf("grain intensity 0-100 (env %s)", config.EnvGrain))
}

// loadConfig reads the environment and lets explicitly set flags win.
func (p *paramFlags) loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	return config.NewBuilder().
		WithEnvConfig().
		WithOverrides(func(params *config.Params) {
			if flags.Changed("blobs") {
				params.BlobCount = p.blobs
			}
			if flags.Changed("blur") {
				params.BlurMax = p.blur
			}
			if flags.Changed("grain") {
				params.Grain = p.grain
			}
		}).
		Build()
}
