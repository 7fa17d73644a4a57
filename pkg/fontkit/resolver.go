package fontkit

import (
	"context"

	"github.com/rs/zerolog"
)

// Resolve returns the highest-priority preset family for lang that is
// present in the catalog. Preference order is the sole tie-break. A missing
// font for one language is never satisfied by another language's presets.
func Resolve(ctx context.Context, lang Language, catalog *Catalog) (string, error) {
	for _, candidate := range Presets(lang) {
		if catalog.Contains(candidate) {
			zerolog.Ctx(ctx).Debug().
				Stringer("language", lang).
				Str("family", candidate).
				Msg("resolved preset font")
			return candidate, nil
		}
	}
	return "", &NoSuitableFontError{Language: lang}
}
