package fontkit

import (
	"context"

	"github.com/rs/zerolog"
)

// Definitions is the immutable snapshot handed to a render context: one
// family's name and its raw outline bytes. A fresh value is built for every
// install; previous definitions stay valid until the context swaps them out.
type Definitions struct {
	Family string
	Data   []byte
}

// RenderContext is the host text-rendering boundary. The core renders
// nothing itself; it hands definitions across and trusts the host to pick
// them up on its next draw cycle.
//
// Implementations must treat SetFontDefinitions as a single swap of the
// active definitions, not an incremental edit of a structure the renderer
// may be reading mid-frame. All manager operations must run on the thread
// that owns the context.
type RenderContext interface {
	// SetFontDefinitions replaces the active font definitions. The
	// previous definitions' memory becomes eligible for release.
	SetFontDefinitions(defs Definitions)

	// MarkDirty tells the context to rebuild its glyph and layout
	// structures before the next draw.
	MarkDirty()
}

// installFace performs the install step: build the snapshot, swap it in,
// mark the context for rebuild.
func installFace(ctx context.Context, rc RenderContext, face *Face) {
	rc.SetFontDefinitions(Definitions{Family: face.Family, Data: face.Data})
	rc.MarkDirty()
	zerolog.Ctx(ctx).Debug().
		Str("family", face.Family).
		Int("bytes", len(face.Data)).
		Msg("installed font definitions")
}
