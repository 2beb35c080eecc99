package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sipras/cmbspec/grid"
	"github.com/sipras/cmbspec/internal/config"
	"github.com/sipras/cmbspec/model"
)

var (
	cfgPath string
	verbose bool

	cmbTemp   float64
	syncIndex float64
	dustIndex float64
	dustTemp  float64

	minGHz      float64
	maxGHz      float64
	points      int
	spacingName string

	cfg *config.Config
)

func Execute() error {
	root := &cobra.Command{
		Use:           "cmbspec",
		Short:         "CMB spectrum and galactic foreground model",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		c, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		flags := root.PersistentFlags()

		if flags.Changed("cmb-temp") {
			c.Model.CMBTemp = cmbTemp
		}

		if flags.Changed("sync-index") {
			c.Model.SyncIndex = syncIndex
		}

		if flags.Changed("dust-index") {
			c.Model.DustIndex = dustIndex
		}

		if flags.Changed("dust-temp") {
			c.Model.DustTemp = dustTemp
		}

		if flags.Changed("min-ghz") {
			c.Grid.MinFreq = minGHz * 1e9
		}

		if flags.Changed("max-ghz") {
			c.Grid.MaxFreq = maxGHz * 1e9
		}

		if flags.Changed("points") {
			c.Grid.Points = points
		}

		if flags.Changed("spacing") {
			sp, err := grid.ParseSpacing(spacingName)
			if err != nil {
				return err
			}

			c.Grid.Spacing = sp
		}

		if err := c.Model.Validate(); err != nil {
			return err
		}

		cfg = c

		log.Debug().
			Float64("cmb_temp", c.Model.CMBTemp).
			Float64("sync_index", c.Model.SyncIndex).
			Float64("dust_index", c.Model.DustIndex).
			Float64("dust_temp", c.Model.DustTemp).
			Float64("min_ghz", c.Grid.MinFreq/1e9).
			Float64("max_ghz", c.Grid.MaxFreq/1e9).
			Int("points", c.Grid.Points).
			Stringer("spacing", c.Grid.Spacing).
			Msg("configuration loaded")

		return nil
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (YAML)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().Float64Var(&cmbTemp, "cmb-temp", model.DefaultCMBTemp, "CMB temperature in K")
	root.PersistentFlags().Float64Var(&syncIndex, "sync-index", model.DefaultSyncIndex, "synchrotron spectral index")
	root.PersistentFlags().Float64Var(&dustIndex, "dust-index", model.DefaultDustIndex, "dust emissivity index")
	root.PersistentFlags().Float64Var(&dustTemp, "dust-temp", model.DefaultDustTemp, "dust temperature in K")
	root.PersistentFlags().Float64Var(&minGHz, "min-ghz", config.DefaultMinFreq/1e9, "grid start frequency in GHz")
	root.PersistentFlags().Float64Var(&maxGHz, "max-ghz", config.DefaultMaxFreq/1e9, "grid end frequency in GHz")
	root.PersistentFlags().IntVar(&points, "points", config.DefaultPoints, "number of grid points")
	root.PersistentFlags().StringVar(&spacingName, "spacing", grid.Logarithmic.String(), "grid spacing: linear or logarithmic")

	root.AddCommand(tableCmd(), csvCmd(), plotCmd(), bandsCmd())

	return root.Execute()
}

// components evaluates the model over the configured grid.
func components() (model.Components, error) {
	freqs, err := cfg.Frequencies()
	if err != nil {
		return model.Components{}, err
	}

	return model.New(model.WithParams(cfg.Model)).Components(freqs)
}
