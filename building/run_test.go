package building

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bgraf/elevprofile/geotrack"
	"github.com/bgraf/elevprofile/option"
	"github.com/bgraf/elevprofile/render"
)

func testOptions(t *testing.T) Options {
	return Options{
		Paths:           []string{filepath.Join("testdata", "tracks.gpx")},
		OutputDirectory: filepath.Join(t.TempDir(), "out"),
		Format:          "png",
		LabelMode:       render.LabelModeRepel,
		ThresholdMeters: 500,
		Style:           render.DefaultStyle(),
	}
}

func TestNormalizeFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ridge Walk", "ridge_walk"},
		{"  Tour 2023!  ", "tour_2023_"},
		{"Über", "_ber"},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeFileName(tt.in), tt.in)
	}
}

func TestFilenamer(t *testing.T) {
	f := Filenamer{Directory: "out", Format: "jpg"}
	named := geotrack.Track{Name: option.Some("Ridge Walk")}
	blank := geotrack.Track{Name: option.Some("  ")}

	assert.Equal(t, filepath.Join("out", "01-ridge_walk-01.jpg"), f.SegmentFile(named, 0, 0))
	assert.Equal(t, filepath.Join("out", "03-ridge_walk-12.jpg"), f.SegmentFile(named, 2, 11))
	assert.Equal(t, filepath.Join("out", "02-track-01.jpg"), f.SegmentFile(geotrack.Track{}, 1, 0))
	assert.Equal(t, filepath.Join("out", "02-track-01.jpg"), f.SegmentFile(blank, 1, 0))
	assert.Equal(t, filepath.Join("out", "01-ridge_walk-02.csv"), f.TableFile(named, 0, 1))
}

func TestBuild(t *testing.T) {
	opts := testOptions(t)
	opts.WriteCSV = true

	var progress bytes.Buffer
	opts.Progress = &progress

	results, err := Build(opts, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, results, 4)

	var images []string
	for _, r := range results {
		images = append(images, filepath.Base(r.Image))
		assert.FileExists(t, r.Image)
		assert.FileExists(t, r.Table)
	}

	want := []string{
		"01-ridge_walk-01.png",
		"01-ridge_walk-02.png",
		"02-ridge_walk-01.png",
		"03-track-01.png",
	}
	if diff := cmp.Diff(want, images); diff != "" {
		t.Errorf("image files mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "Ridge Walk", results[0].Track)
	assert.Equal(t, 1, results[0].TrackIndex)
	assert.Equal(t, 2, results[1].SegmentIndex)
	assert.Equal(t, 3, results[0].Points)

	// Both "Summit" waypoints label the segments passing by; the far hut never does.
	require.Len(t, results[0].Labels, 2)
	for _, l := range results[0].Labels {
		assert.Equal(t, "Summit", l.Name)
		assert.Equal(t, results[0].Miles, l.Miles, "matched to the last point")
		assert.Less(t, l.Meters, 500.0)
	}
	assert.Empty(t, results[1].Labels)
	assert.Len(t, results[2].Labels, 2)

	assert.Equal(t, "", results[3].Track)
	assert.Zero(t, results[3].Points)
	assert.Zero(t, results[3].Miles)
	assert.Empty(t, results[3].Labels)

	table, err := os.ReadFile(results[0].Table)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(table)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "lon,lat,alt,distance", lines[0])

	assert.NotZero(t, progress.Len())
}

func TestBuildMarkerLabels(t *testing.T) {
	opts := testOptions(t)
	opts.LabelMode = render.LabelModeMarker
	opts.Format = "jpg"

	results, err := Build(opts, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, ".jpg", filepath.Ext(results[0].Image))
	assert.Empty(t, results[0].Table)
	for _, l := range results[0].Labels {
		assert.False(t, l.Moved)
	}
}

func TestBuildRepelsDuplicateLabels(t *testing.T) {
	results, err := Build(testOptions(t), zap.NewNop())
	require.NoError(t, err)

	require.Len(t, results[0].Labels, 2)
	moved := results[0].Labels[0].Moved || results[0].Labels[1].Moved
	assert.True(t, moved)
}

func TestBuildDirectory(t *testing.T) {
	opts := testOptions(t)
	opts.Paths = []string{"testdata"}

	results, err := Build(opts, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestBuildDirectorySkipsTextFiles(t *testing.T) {
	dir := t.TempDir()

	tracks, err := os.ReadFile(filepath.Join("testdata", "tracks.gpx"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tracks.gpx"), tracks, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("Hiking logs.\n"), 0644))

	opts := testOptions(t)
	opts.Paths = []string{dir}

	results, err := Build(opts, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, results, 4)

	// Named explicitly, a text file is read as NMEA.
	opts.Paths = []string{filepath.Join(dir, "README.txt")}
	_, err = Build(opts, zap.NewNop())

	var parseErr *geotrack.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestBuildAbortsOnBrokenFile(t *testing.T) {
	broken := filepath.Join(t.TempDir(), "broken.gpx")
	require.NoError(t, os.WriteFile(broken, []byte("not a track"), 0644))

	opts := testOptions(t)
	opts.Paths = append(opts.Paths, broken)

	results, err := Build(opts, zap.NewNop())

	var parseErr *geotrack.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, broken, parseErr.Path)
	assert.Empty(t, results)
	assert.NoDirExists(t, opts.OutputDirectory)
}

func TestBuildInvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"no paths", func(o *Options) { o.Paths = nil }},
		{"no output directory", func(o *Options) { o.OutputDirectory = "" }},
		{"unsupported format", func(o *Options) { o.Format = "svg" }},
		{"unknown label mode", func(o *Options) { o.LabelMode = "scatter" }},
		{"zero threshold", func(o *Options) { o.ThresholdMeters = 0 }},
		{"zero dpi", func(o *Options) { o.Style.DPI = 0 }},
		{"huge dpi", func(o *Options) { o.Style.DPI = 30000 }},
		{"huge width", func(o *Options) { o.Style.WidthInches = 400 }},
		{"huge height", func(o *Options) { o.Style.HeightInches = 400 }},
		{"missing line color", func(o *Options) { o.Style.LineColor = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(t)
			tt.modify(&opts)

			_, err := Build(opts, zap.NewNop())

			var validationErrs validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrs), "got %v", err)
			assert.NoDirExists(t, opts.OutputDirectory)
		})
	}
}

func TestManifest(t *testing.T) {
	opts := testOptions(t)
	results, err := Build(opts, zap.NewNop())
	require.NoError(t, err)

	path := filepath.Join(opts.OutputDirectory, "meta", "manifest.yaml")
	require.NoError(t, WriteManifest(path, results))

	read, err := ReadManifest(path)
	require.NoError(t, err)
	if diff := cmp.Diff(results, read); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLogsWaypointMatches(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	results, err := Build(testOptions(t), zap.New(core))
	require.NoError(t, err)
	require.Len(t, results, 4)

	entries := logs.FilterMessage("matched waypoints").All()
	require.Len(t, entries, 4)

	// Waypoints: Summit, Summit, Far Away Hut.
	want := []int64{1, 3, 1, 3}
	for i, e := range entries {
		fields := e.ContextMap()
		assert.Equal(t, int64(3)-want[i], fields["matched"], "segment %d", i)
		assert.Equal(t, want[i], fields["skipped"], "segment %d", i)
	}
}
