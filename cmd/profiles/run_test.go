package profiles

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgraf/elevprofile/config"
	"github.com/bgraf/elevprofile/render"
)

func resetConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults()
}

func TestOptionsFromConfigDefaults(t *testing.T) {
	resetConfig(t)

	opts, err := OptionsFromConfig([]string{"walk.gpx"})
	require.NoError(t, err)

	assert.Equal(t, []string{"walk.gpx"}, opts.Paths)
	assert.Equal(t, ".", opts.OutputDirectory)
	assert.Equal(t, "png", opts.Format)
	assert.Equal(t, render.LabelModeRepel, opts.LabelMode)
	assert.Equal(t, 500.0, opts.ThresholdMeters)
	assert.False(t, opts.AvoidLines)
	assert.False(t, opts.WriteCSV)
	assert.Nil(t, opts.Progress)

	width, height := opts.Style.PixelSize()
	assert.Equal(t, 2400, width)
	assert.Equal(t, 900, height)
}

func TestOptionsFromConfig(t *testing.T) {
	resetConfig(t)

	viper.Set(config.KeyOutputFormat, ".JPG")
	viper.Set(config.KeyLabelMode, "marker")
	viper.Set(config.KeyLabelAvoidLines, true)
	viper.Set(config.KeyChartDPI, 100)
	viper.Set(config.KeyChartLineColor, "#ff0000")

	opts, err := OptionsFromConfig([]string{"tracks"})
	require.NoError(t, err)

	assert.Equal(t, "jpg", opts.Format)
	assert.Equal(t, render.LabelModeMarker, opts.LabelMode)
	assert.True(t, opts.AvoidLines)
	assert.Equal(t, 100.0, opts.Style.DPI)

	red, err := colorful.Hex("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, red, opts.Style.LineColor)
}

func TestOptionsFromConfigErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{config.KeyLabelMode, "scatter"},
		{config.KeyChartLineColor, "grey"},
		{config.KeyChartGridColor, "#12"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			resetConfig(t)
			viper.Set(tt.key, tt.value)

			_, err := OptionsFromConfig([]string{"walk.gpx"})
			assert.Error(t, err)
		})
	}
}
