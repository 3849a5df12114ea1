package geotrack

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/bgraf/elevprofile/config"
)

// Load reads a single track file. The format is chosen by the file extension.
func Load(trackFilePath string) (*Collection, error) {
	var (
		collection *Collection
		err        error
	)

	ext := strings.ToLower(path.Ext(trackFilePath))
	if slices.Contains(config.GPXExtensions(), ext) {
		collection, err = loadGPXTrack(trackFilePath)
	} else if slices.Contains(config.NMEAExtensions(), ext) {
		collection, err = loadNMEATrack(trackFilePath)
	} else {
		err = fmt.Errorf("%w '%s'", ErrUnknownFormat, ext)
	}

	if err != nil {
		return nil, &ParseError{Path: trackFilePath, Err: err}
	}

	return collection, nil
}

// LoadAll reads all track files in order and merges them. The first failing file
// aborts loading.
func LoadAll(trackFilePaths []string) (*Collection, error) {
	merged := &Collection{}

	for _, p := range trackFilePaths {
		collection, err := Load(p)
		if err != nil {
			return nil, err
		}

		merged.Merge(collection)
	}

	return merged, nil
}
