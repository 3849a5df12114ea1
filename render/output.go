package render

import (
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/bgraf/elevprofile/filesystem"
)

// Save writes img to path, creating missing directories. The encoder is chosen by
// the file extension (png, jpg, jpeg, gif, tif, tiff, bmp).
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return &RenderError{Op: "save image", Path: path, Err: err}
	}

	if err := filesystem.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return &RenderError{Op: "create output directory", Path: path, Err: err}
	}

	if err := imaging.Save(img, path); err != nil {
		return &RenderError{Op: "save image", Path: path, Err: err}
	}

	return nil
}
