// Package seed loads catalog entries from a YAML document.
//
// The document is a top-level "books" list. Each entry is decoded into a
// book.Draft, so an omitted isbn, title or author is reported as missing
// rather than as an empty, malformed value.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"bookstore/internal/book"
	"bookstore/internal/catalog"
	"bookstore/internal/config"
)

type document struct {
	Books []book.Draft `yaml:"books"`
}

// Rejection records an entry that was not added to the catalog.
type Rejection struct {
	Index int
	Err   error
}

func (r Rejection) String() string {
	return fmt.Sprintf("entry %d: %v", r.Index, r.Err)
}

// Report summarizes a load.
type Report struct {
	Added    int
	Rejected []Rejection
}

// ErrDuplicate is recorded for an entry whose ISBN is already in the catalog.
var ErrDuplicate = errors.New("duplicate isbn")

// Load decodes r and adds every valid entry to c. A malformed document is an
// error; an invalid entry is recorded in the report and skipped.
func Load(r io.Reader, c *catalog.Catalog, cfg config.Config) (Report, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return Report{}, fmt.Errorf("decode seed document: %w", err)
	}

	var report Report
	for i, draft := range doc.Books {
		b, err := draft.Build(cfg)
		if err != nil {
			report.Rejected = append(report.Rejected, Rejection{Index: i, Err: err})
			continue
		}
		if !c.Add(b) {
			report.Rejected = append(report.Rejected, Rejection{
				Index: i,
				Err:   fmt.Errorf("%w: %s", ErrDuplicate, b.ISBN()),
			})
			continue
		}
		report.Added++
	}
	return report, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, c *catalog.Catalog, cfg config.Config) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return Load(f, c, cfg)
}
