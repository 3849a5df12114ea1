package profiles

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bgraf/elevprofile/building"
	"github.com/bgraf/elevprofile/config"
	"github.com/bgraf/elevprofile/log"
	"github.com/bgraf/elevprofile/render"
)

func RunProfilesCmd(cmd *cobra.Command, args []string) error {
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return err
	}

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}

	logger := log.New(log.LevelFromFlags(debug, quiet), cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	if f := viper.ConfigFileUsed(); f != "" {
		logger.Debug("using config file", zap.String("file", f))
	}

	opts, err := OptionsFromConfig(args)
	if err != nil {
		return err
	}

	showProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return err
	}
	if showProgress {
		opts.Progress = cmd.ErrOrStderr()
	}

	logger.Debug("options",
		zap.Strings("paths", opts.Paths),
		zap.String("output", opts.OutputDirectory),
		zap.String("labels", string(opts.LabelMode)),
		zap.Float64("threshold", opts.ThresholdMeters),
	)

	results, err := building.Build(opts, logger)
	if err != nil {
		return err
	}

	manifest, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return err
	}

	if manifest != "" {
		if err := building.WriteManifest(manifest, results); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		logger.Info("written manifest", zap.String("file", manifest))
	}

	logger.Info("done", zap.Int("profiles", len(results)))

	return nil
}

// OptionsFromConfig assembles build options for paths from the configured values.
func OptionsFromConfig(paths []string) (building.Options, error) {
	mode, err := render.ParseLabelMode(config.LabelMode())
	if err != nil {
		return building.Options{}, err
	}

	lineColor, err := render.ParseColor(config.LineColor())
	if err != nil {
		return building.Options{}, err
	}

	gridColor, err := render.ParseColor(config.GridColor())
	if err != nil {
		return building.Options{}, err
	}

	style := render.DefaultStyle()
	style.DPI = config.DPI()
	style.WidthInches = config.WidthInches()
	style.HeightInches = config.HeightInches()
	style.LineColor = lineColor
	style.GridColor = gridColor

	return building.Options{
		Paths:           paths,
		OutputDirectory: config.OutputDirectory(),
		Format:          strings.ToLower(strings.TrimPrefix(config.OutputFormat(), ".")),
		LabelMode:       mode,
		AvoidLines:      config.AvoidLines(),
		ThresholdMeters: config.ThresholdMeters(),
		AxisLabels:      config.AxisLabels(),
		WriteCSV:        config.WriteCSV(),
		Style:           style,
	}, nil
}
