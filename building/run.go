package building

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/bgraf/elevprofile/config"
	"github.com/bgraf/elevprofile/filesystem"
	"github.com/bgraf/elevprofile/geotrack"
	"github.com/bgraf/elevprofile/profile"
	"github.com/bgraf/elevprofile/render"
)

var fileNameNormalizationPattern = regexp.MustCompile("[^a-z0-9]")

func normalizeFileName(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return fileNameNormalizationPattern.ReplaceAllString(s, "_")
}

// Filenamer derives output paths. Track and segment indices are 0-based and printed
// 1-based, so every segment of a run gets its own file.
type Filenamer struct {
	Directory string
	Format    string
}

func (f Filenamer) base(track geotrack.Track, trackIndex, segmentIndex int) string {
	name := "track"
	if track.Name.IsSome() {
		if n := normalizeFileName(track.Name.Get()); n != "" {
			name = n
		}
	}

	return filepath.Join(f.Directory, fmt.Sprintf("%02d-%s-%02d", trackIndex+1, name, segmentIndex+1))
}

func (f Filenamer) SegmentFile(track geotrack.Track, trackIndex, segmentIndex int) string {
	return f.base(track, trackIndex, segmentIndex) + "." + f.Format
}

func (f Filenamer) TableFile(track geotrack.Track, trackIndex, segmentIndex int) string {
	return f.base(track, trackIndex, segmentIndex) + ".csv"
}

type Options struct {
	Paths           []string         `validate:"min=1,dive,required"`
	OutputDirectory string           `validate:"required"`
	Format          string           `validate:"oneof=png jpg jpeg gif tif tiff bmp"`
	LabelMode       render.LabelMode `validate:"oneof=repel marker"`
	AvoidLines      bool
	ThresholdMeters float64 `validate:"gt=0"`
	AxisLabels      bool
	WriteCSV        bool

	// Progress receives a progress bar over all segments if set.
	Progress io.Writer

	Style render.Style
}

var validate = validator.New()

// Build renders one elevation profile per track segment found in opts.Paths. The
// first failing file or segment aborts the run; results of segments written so far
// are returned along with the error.
func Build(opts Options, logger *zap.Logger) ([]SegmentResult, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	labeler, err := render.NewLabeler(opts.LabelMode, opts.AvoidLines)
	if err != nil {
		return nil, err
	}

	paths, err := filesystem.GatherFiles(opts.Paths, config.ScanExtensions())
	if err != nil {
		return nil, fmt.Errorf("gather track files: %w", err)
	}

	collection, err := geotrack.LoadAll(paths)
	if err != nil {
		return nil, err
	}

	logger.Info("loaded track files",
		zap.Int("files", len(paths)),
		zap.Int("tracks", len(collection.Tracks)),
		zap.Int("segments", collection.SegmentCount()),
		zap.Int("waypoints", len(collection.Waypoints)),
	)

	state := &buildState{
		Options:   opts,
		logger:    logger,
		labeler:   labeler,
		waypoints: collection.Waypoints,
		filenamer: Filenamer{Directory: opts.OutputDirectory, Format: opts.Format},
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(
			collection.SegmentCount(),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("rendering segments"),
		)
	}

	var results []SegmentResult

	for ti, track := range collection.Tracks {
		for si, segment := range track.Segments {
			result, err := state.buildSegment(track, ti, si, segment)
			if err != nil {
				return results, err
			}

			results = append(results, result)

			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return results, nil
}

type buildState struct {
	Options

	logger    *zap.Logger
	labeler   render.Labeler
	waypoints []geotrack.Waypoint
	filenamer Filenamer
}

func (state *buildState) buildSegment(track geotrack.Track, ti, si int, segment geotrack.Segment) (SegmentResult, error) {
	logger := state.logger.With(
		zap.String("track", track.Name.OrElse("")),
		zap.Int("segment", si+1),
	)

	rows := profile.BuildRows(segment)
	logger.Debug("built distance table",
		zap.Int("points", len(rows)),
		zap.Float64("miles", profile.TotalDistance(rows)),
	)

	canvas, err := render.DrawProfile(rows, render.ChartOptions{
		Title:      track.Name,
		AxisLabels: state.AxisLabels,
		Style:      state.Style,
	})
	if err != nil {
		return SegmentResult{}, err
	}

	anchors := profile.MatchWaypoints(rows, state.waypoints, state.ThresholdMeters)
	for _, a := range anchors {
		logger.Debug("matched waypoint",
			zap.String("waypoint", a.Waypoint.Name),
			zap.Int("row", a.Row),
			zap.Float64("meters", a.Meters),
		)
	}
	logger.Debug("matched waypoints",
		zap.Int("matched", len(anchors)),
		zap.Int("skipped", len(state.waypoints)-len(anchors)),
	)

	placements := state.labeler.Place(canvas, rows, render.LabelsFromAnchors(anchors))

	result := SegmentResult{
		Track:        track.Name.OrElse(""),
		TrackIndex:   ti + 1,
		SegmentIndex: si + 1,
		Image:        state.filenamer.SegmentFile(track, ti, si),
		Miles:        profile.TotalDistance(rows),
		Points:       len(rows),
	}

	for i, p := range placements {
		result.Labels = append(result.Labels, LabelResult{
			Name:   p.Text,
			Miles:  p.X,
			Feet:   p.Y,
			Meters: anchors[i].Meters,
			Moved:  p.Moved,
		})
	}

	if err := canvas.Save(result.Image); err != nil {
		return SegmentResult{}, err
	}

	logger.Info("written profile", zap.String("file", result.Image), zap.Int("labels", len(placements)))

	if state.WriteCSV {
		result.Table = state.filenamer.TableFile(track, ti, si)
		if err := writeTable(result.Table, rows); err != nil {
			return SegmentResult{}, err
		}

		logger.Debug("written distance table", zap.String("file", result.Table))
	}

	return result, nil
}

func writeTable(path string, rows []profile.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create distance table: %w", err)
	}

	defer func() { _ = f.Close() }()

	if err := profile.WriteCSV(f, rows); err != nil {
		return fmt.Errorf("write distance table '%s': %w", path, err)
	}

	return f.Close()
}
