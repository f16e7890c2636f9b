package ports

import "context"

// AuxiliaryLookup finds the directory of an optional helper executable.
// Implementations never return errors; any failure means "not found".
type AuxiliaryLookup interface {
	Lookup(ctx context.Context) (dir string, ok bool)
}
