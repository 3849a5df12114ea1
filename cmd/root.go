package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bgraf/elevprofile/cmd/profiles"
	"github.com/bgraf/elevprofile/config"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	// configErr holds the failure to read the chosen or found config file.
	configErr error
)

// rootCmd renders one elevation profile image per track segment.
var rootCmd = &cobra.Command{
	Use:   "elevprofile [flags] FILE|DIR...",
	Short: "Render elevation profiles of GPS tracks",
	Long: `Render the elevation profile of every track segment in the given GPX or NMEA
files. Waypoints close to a segment are labeled on its chart. Directories are
scanned for track files.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return fmt.Errorf("read config file: %w", configErr)
		}
		return nil
	},
	RunE: profiles.RunProfilesCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bindFlag(key, name string) {
	if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(name)); err != nil {
		panic(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()

	flags.StringVar(&cfgFile, "config", "", "config file (default is .elevprofile.yaml in the working or home directory)")

	flags.BoolP("debug", "d", false, "Verbose diagnostic logging")
	flags.BoolP("quiet", "q", false, "Log errors only")
	rootCmd.MarkFlagsMutuallyExclusive("debug", "quiet")

	flags.BoolP("avoid-lines", "l", false, "Keep repelled labels off the profile line")
	bindFlag(config.KeyLabelAvoidLines, "avoid-lines")

	flags.StringP("labels", "m", config.DefaultLabelMode(), "Label strategy: repel or marker")
	bindFlag(config.KeyLabelMode, "labels")

	flags.Float64P("threshold", "t", config.DefaultThresholdMeters(), "Maximum distance in meters between a waypoint and the track")
	bindFlag(config.KeyLabelThreshold, "threshold")

	flags.StringP("output-dir", "o", config.DefaultOutputDirectory(), "Output directory")
	bindFlag(config.KeyOutputDirectory, "output-dir")

	flags.StringP("format", "f", config.DefaultOutputFormat(), "Image format: png, jpg, gif, tif or bmp")
	bindFlag(config.KeyOutputFormat, "format")

	flags.BoolP("axis-labels", "a", false, "Show axis titles")
	bindFlag(config.KeyChartAxisLabels, "axis-labels")

	flags.Bool("csv", false, "Also write the distance table of each segment as CSV")
	bindFlag(config.KeyOutputCSV, "csv")

	flags.String("manifest", "", "Write a YAML manifest of all outputs to this file")
	flags.Bool("progress", false, "Show a progress bar")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in working and home directory with name ".elevprofile" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".elevprofile")
	}

	viper.SetEnvPrefix("elevprofile")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Only a config file that was searched for may be missing.
	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = err
		}
	}
}
