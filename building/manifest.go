package building

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/bgraf/elevprofile/filesystem"
)

type manifest struct {
	Segments []SegmentResult `yaml:"segments"`
}

// SegmentResult describes the files written for one segment.
type SegmentResult struct {
	Track        string        `yaml:"track,omitempty"`
	TrackIndex   int           `yaml:"track_index"`
	SegmentIndex int           `yaml:"segment_index"`
	Image        string        `yaml:"image"`
	Table        string        `yaml:"table,omitempty"`
	Miles        float64       `yaml:"miles"`
	Points       int           `yaml:"points"`
	Labels       []LabelResult `yaml:"labels,omitempty"`
}

type LabelResult struct {
	Name   string  `yaml:"name"`
	Miles  float64 `yaml:"miles"`
	Feet   float64 `yaml:"feet"`
	Meters float64 `yaml:"meters"` // waypoint to matched point
	Moved  bool    `yaml:"moved,omitempty"`
}

func WriteManifest(path string, results []SegmentResult) error {
	payloadBytes, err := yaml.Marshal(manifest{Segments: results})
	if err != nil {
		return err
	}

	if err := filesystem.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, payloadBytes, 0o666)
}

func ReadManifest(path string) (results []SegmentResult, err error) {
	payloadBytes, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var m manifest
	err = yaml.Unmarshal(payloadBytes, &m)
	results = m.Segments
	return
}
