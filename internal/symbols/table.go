package symbols

import "context"

// Table maps a subject name to the last numeric literal assigned to it.
type Table interface {
	Assign(ctx context.Context, name, value string) error
	Lookup(ctx context.Context, name string) (string, bool, error)
	Snapshot(ctx context.Context) (map[string]string, error)
	Reset(ctx context.Context) error
}

type Type string

const (
	InMem Type = "in_mem"
	PG    Type = "pg"
)

type StorageError string

const (
	ErrUnsupportedStorage StorageError = "unsupported symbol table storage: %s"
)

func (e StorageError) Error() string {
	return string(e)
}
