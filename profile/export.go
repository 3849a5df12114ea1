package profile

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes the distance table with a lon,lat,alt,distance header.
func WriteCSV(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("write profile table: %w", err)
	}
	return nil
}
