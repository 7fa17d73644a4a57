package fontkit

import (
	"context"
	"os"

	"github.com/go-text/typesetting/fontscan"
	"github.com/rs/zerolog"
)

// SystemSource reads installed fonts through fontscan. Scan must run before
// Load; the manager does this during initialization.
type SystemSource struct {
	cacheDir string
	families map[string][]fontscan.Footprint
}

// NewSystemSource creates a source using the user cache directory for
// fontscan's index. An unavailable cache directory is not an error; the
// scan just runs uncached.
func NewSystemSource() *SystemSource {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = ""
	}
	return &SystemSource{cacheDir: cacheDir}
}

// NewSystemSourceWithCacheDir creates a source with an explicit fontscan
// cache directory.
func NewSystemSourceWithCacheDir(dir string) *SystemSource {
	return &SystemSource{cacheDir: dir}
}

func (s *SystemSource) Name() string {
	return "system"
}

// Scan enumerates installed families. One OS query per call; the footprint
// index is retained so Load can locate faces without re-scanning.
func (s *SystemSource) Scan(ctx context.Context) (*Catalog, error) {
	footprints, err := fontscan.SystemFonts(nil, s.cacheDir)
	if err != nil {
		return nil, &ScanError{Reason: err.Error()}
	}

	index := make(map[string][]fontscan.Footprint)
	for _, fp := range footprints {
		index[fp.Family] = append(index[fp.Family], fp)
	}

	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}

	catalog, err := NewCatalog(names)
	if err != nil {
		return nil, err
	}

	s.families = index
	zerolog.Ctx(ctx).Debug().
		Int("families", catalog.Len()).
		Int("faces", len(footprints)).
		Msg("scanned system fonts")
	return catalog, nil
}

// Load reads the outline bytes for one family from disk.
func (s *SystemSource) Load(ctx context.Context, family string) (*Face, error) {
	faces, ok := s.families[family]
	if !ok {
		return nil, &FontNotFoundError{Name: family}
	}

	fp, ok := pickFace(faces)
	if !ok {
		return nil, &NoFontInFamilyError{Name: family}
	}

	data, err := os.ReadFile(fp.Location.File)
	if err != nil {
		return nil, &LoadError{Name: family, Err: err}
	}

	zerolog.Ctx(ctx).Debug().
		Str("family", family).
		Str("file", fp.Location.File).
		Int("bytes", len(data)).
		Msg("loaded font face")
	return &Face{Family: family, Data: data}, nil
}

// pickFace prefers the regular face (normal style, weight 400) and falls
// back to the family's first face with an on-disk location.
func pickFace(faces []fontscan.Footprint) (fontscan.Footprint, bool) {
	var fallback fontscan.Footprint
	found := false
	for _, fp := range faces {
		if fp.Location.File == "" {
			continue
		}
		if fp.Aspect.Style == 1 && fp.Aspect.Weight == 400 {
			return fp, true
		}
		if !found {
			fallback = fp
			found = true
		}
	}
	return fallback, found
}
