// Package identifier wraps the UUID generation tool.
package identifier

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxCount bounds a single generation request.
const MaxCount = 100

// Result is the output shape of the uuid tool.
type Result struct {
	UUIDs   []string `json:"uuids"`
	Version int      `json:"version"`
	Count   int      `json:"count"`
	Format  string   `json:"format"`
}

// Generate produces count UUIDs of the requested version (1 or 4).
// Zero values default to version 4 and a single UUID.
func Generate(version, count int) (*Result, error) {
	if version == 0 {
		version = 4
	}
	if count == 0 {
		count = 1
	}
	if version != 1 && version != 4 {
		return nil, fmt.Errorf("UUID version must be 1 or 4 (got %d)", version)
	}
	if count < 1 || count > MaxCount {
		return nil, fmt.Errorf("count must be between 1 and %d (got %d)", MaxCount, count)
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var (
			id  uuid.UUID
			err error
		)
		if version == 1 {
			id, err = uuid.NewUUID()
		} else {
			id, err = uuid.NewRandom()
		}
		if err != nil {
			return nil, fmt.Errorf("generating uuid: %w", err)
		}
		ids = append(ids, id.String())
	}

	return &Result{
		UUIDs:   ids,
		Version: version,
		Count:   len(ids),
		Format:  "8-4-4-4-12 hexadecimal digits",
	}, nil
}
