package export

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/louisbranch/charmap/internal/charset"
	"golang.org/x/sync/errgroup"
)

// Output file names inside the output directory.
const (
	CodepointsFile = "codepoints.json"
	DataJSONFile   = "data.json"
	DataCSVFile    = "data.csv"
)

// Artifacts is everything one generator run persists.
type Artifacts struct {
	Dir string
	// Codepoints are the catalog rows exactly as read; they are re-indented
	// but otherwise written unchanged.
	Codepoints []json.RawMessage
	Records    []charset.Record
	// SQLitePath enables the database artifact when set.
	SQLitePath string
}

// Paths returns the destination of each file artifact.
func (a Artifacts) Paths() (codepoints, dataJSON, dataCSV string) {
	return filepath.Join(a.Dir, CodepointsFile),
		filepath.Join(a.Dir, DataJSONFile),
		filepath.Join(a.Dir, DataCSVFile)
}

// WriteArtifacts writes every artifact independently. A failure on one
// destination does not roll back the others; the first error is returned
// wrapped with its destination.
func WriteArtifacts(ctx context.Context, a Artifacts) error {
	codepointsPath, dataJSONPath, dataCSVPath := a.Paths()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := WriteJSON(codepointsPath, a.Codepoints); err != nil {
			return fmt.Errorf("write %s: %w", codepointsPath, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := WriteJSON(dataJSONPath, a.Records); err != nil {
			return fmt.Errorf("write %s: %w", dataJSONPath, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := WriteCSV(dataCSVPath, a.Records); err != nil {
			return fmt.Errorf("write %s: %w", dataCSVPath, err)
		}
		return nil
	})
	if a.SQLitePath != "" {
		g.Go(func() error {
			if err := WriteSQLite(ctx, a.SQLitePath, a.Records); err != nil {
				return fmt.Errorf("write %s: %w", a.SQLitePath, err)
			}
			return nil
		})
	}
	return g.Wait()
}
