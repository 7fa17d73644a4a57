package fontkit

import "context"

// Face holds one family's raw outline bytes, ready to hand to a render
// context. Ownership of Data transfers to the context on install; the
// manager keeps only the family name.
type Face struct {
	Family string
	Data   []byte
}

// Source is the OS font service boundary. Both operations are synchronous
// and fallible; they run only at startup and on explicit switches, never
// per frame.
type Source interface {
	// Name returns the identifier for this source.
	Name() string

	// Scan queries the service once and returns a snapshot of the
	// distinct installed family names. Callers needing a fresh list must
	// scan again; nothing is refreshed implicitly.
	Scan(ctx context.Context) (*Catalog, error)

	// Load retrieves the outline bytes for one family. A family can be
	// listed by Scan yet have no loadable face; Load distinguishes that
	// from an unknown name and from a failed byte read.
	Load(ctx context.Context, family string) (*Face, error)
}
