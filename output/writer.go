package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Document name tags: the month the period starts in closes a timesheet
// ("Ende"), the month it ends in opens the next one ("Anfang").
const (
	TagEnde   = "Ende"
	TagAnfang = "Anfang"
)

// DocumentName returns the deterministic output file name for a month.
func DocumentName(year int, month time.Month, tag string) string {
	return fmt.Sprintf("Zeiterfassung_%04d-%02d_%s.tex", year, int(month), tag)
}

// WriteDocument writes content to path atomically: the text lands in a
// temporary file first and is renamed into place, so a failed run never
// leaves a truncated document behind.
func WriteDocument(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temporary output in %s: %w", dir, err)
	}

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write output %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close output %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename output into place: %w", err)
	}
	return nil
}
