package importer

import (
	"fmt"

	"zeitblatt/worklog"
)

// Mapper normalizes one input row into a worklog entry. A (nil, false, nil)
// result skips the row.
type Mapper interface {
	Name() string
	Map(record Record) (*worklog.Entry, bool, error)
}

func SupportedMapperNames() []string {
	return []string{"clockify"}
}

func MapperByName(name string) (Mapper, error) {
	switch normalizeHeader(name) {
	case "clockify":
		return &ClockifyMapper{}, nil
	default:
		return nil, fmt.Errorf("unsupported mapper: %s", name)
	}
}
