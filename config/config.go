package config

import "github.com/spf13/viper"

const (
	KeyOutputDirectory = "output.directory"
	KeyOutputFormat    = "output.format"
	KeyOutputCSV       = "output.csv"

	KeyLabelMode       = "labels.mode"
	KeyLabelThreshold  = "labels.threshold"
	KeyLabelAvoidLines = "labels.avoid_lines"

	KeyChartAxisLabels = "chart.axis_labels"
	KeyChartDPI        = "chart.dpi"
	KeyChartWidth      = "chart.width"
	KeyChartHeight     = "chart.height"
	KeyChartLineColor  = "chart.line_color"
	KeyChartGridColor  = "chart.grid_color"
)

// SetDefaults registers the default of every key with viper.
func SetDefaults() {
	viper.SetDefault(KeyOutputDirectory, DefaultOutputDirectory())
	viper.SetDefault(KeyOutputFormat, DefaultOutputFormat())
	viper.SetDefault(KeyOutputCSV, false)

	viper.SetDefault(KeyLabelMode, DefaultLabelMode())
	viper.SetDefault(KeyLabelThreshold, DefaultThresholdMeters())
	viper.SetDefault(KeyLabelAvoidLines, false)

	viper.SetDefault(KeyChartAxisLabels, false)
	viper.SetDefault(KeyChartDPI, DefaultDPI())
	viper.SetDefault(KeyChartWidth, DefaultWidthInches())
	viper.SetDefault(KeyChartHeight, DefaultHeightInches())
	viper.SetDefault(KeyChartLineColor, DefaultLineColor())
	viper.SetDefault(KeyChartGridColor, DefaultGridColor())
}

func OutputDirectory() string {
	return viper.GetString(KeyOutputDirectory)
}

func OutputFormat() string {
	return viper.GetString(KeyOutputFormat)
}

func WriteCSV() bool {
	return viper.GetBool(KeyOutputCSV)
}

func LabelMode() string {
	return viper.GetString(KeyLabelMode)
}

func ThresholdMeters() float64 {
	return viper.GetFloat64(KeyLabelThreshold)
}

func AvoidLines() bool {
	return viper.GetBool(KeyLabelAvoidLines)
}

func AxisLabels() bool {
	return viper.GetBool(KeyChartAxisLabels)
}

func DPI() float64 {
	return viper.GetFloat64(KeyChartDPI)
}

func WidthInches() float64 {
	return viper.GetFloat64(KeyChartWidth)
}

func HeightInches() float64 {
	return viper.GetFloat64(KeyChartHeight)
}

func LineColor() string {
	return viper.GetString(KeyChartLineColor)
}

func GridColor() string {
	return viper.GetString(KeyChartGridColor)
}

func DefaultOutputDirectory() string {
	return "."
}

func DefaultOutputFormat() string {
	return "png"
}

func DefaultLabelMode() string {
	return "repel"
}

func DefaultThresholdMeters() float64 {
	return 500
}

func DefaultDPI() float64 {
	return 300
}

func DefaultWidthInches() float64 {
	return 8
}

func DefaultHeightInches() float64 {
	return 3
}

func DefaultLineColor() string {
	return "#666666"
}

func DefaultGridColor() string {
	return "#dddddd"
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

// NMEAExtensions lists extensions of raw NMEA logs. Loggers commonly write them as
// plain text files.
func NMEAExtensions() []string {
	return []string{".nmea", ".txt"}
}

func TrackExtensions() []string {
	return append(GPXExtensions(), NMEAExtensions()...)
}

// ScanExtensions lists the extensions picked up when scanning a directory. Plain .txt
// files are only read as NMEA when named explicitly.
func ScanExtensions() []string {
	return []string{".gpx", ".nmea"}
}
