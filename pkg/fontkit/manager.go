package fontkit

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/glyphbox/glyphbox/pkg/notify"
)

// Manager owns the catalog snapshot, the selected language and the loaded
// family name, and drives detect → scan → resolve → load → install.
//
// A Manager is single-owner by design: switch operations mutate state the
// render context reads every frame, so all calls must run on the thread
// that owns that context. The catalog snapshot itself is immutable and may
// be read concurrently.
type Manager struct {
	source   Source
	notifier *notify.Queue

	catalog         *Catalog
	currentLanguage Language
	currentFont     string
}

// Option configures NewManager.
type Option func(*managerConfig)

type managerConfig struct {
	source   Source
	notifier *notify.Queue
	language *Language
}

// WithSource overrides the OS font service implementation.
func WithSource(s Source) Option {
	return func(cfg *managerConfig) {
		cfg.source = s
	}
}

// WithLanguage skips locale detection and starts from the given language.
func WithLanguage(lang Language) Option {
	return func(cfg *managerConfig) {
		cfg.language = &lang
	}
}

// WithNotifier attaches a notification queue. Switch outcomes are reported
// to it; the manager never depends on one being present.
func WithNotifier(q *notify.Queue) Option {
	return func(cfg *managerConfig) {
		cfg.notifier = q
	}
}

// NewManager runs the full startup sequence: detect the system language,
// scan the OS font service once, resolve the best preset family, load its
// bytes and install them into rc. Construction is all-or-nothing; any
// step's failure is returned as that step's error and no partial manager
// exists afterwards.
func NewManager(ctx context.Context, rc RenderContext, opts ...Option) (*Manager, error) {
	cfg := managerConfig{source: NewSystemSource()}
	for _, opt := range opts {
		opt(&cfg)
	}

	var lang Language
	if cfg.language != nil {
		lang = *cfg.language
	} else {
		lang = DetectLanguage(ctx)
	}

	catalog, err := cfg.source.Scan(ctx)
	if err != nil {
		return nil, err
	}

	family, err := Resolve(ctx, lang, catalog)
	if err != nil {
		return nil, err
	}

	face, err := cfg.source.Load(ctx, family)
	if err != nil {
		return nil, err
	}

	installFace(ctx, rc, face)

	zerolog.Ctx(ctx).Info().
		Stringer("language", lang).
		Str("family", face.Family).
		Int("families", catalog.Len()).
		Msg("font manager initialized")

	return &Manager{
		source:          cfg.source,
		notifier:        cfg.notifier,
		catalog:         catalog,
		currentLanguage: lang,
		currentFont:     face.Family,
	}, nil
}

// CurrentFont returns the loaded family name.
func (m *Manager) CurrentFont() string {
	return m.currentFont
}

// CurrentLanguage returns the selected language.
func (m *Manager) CurrentLanguage() Language {
	return m.currentLanguage
}

// AvailableFonts returns the cached catalog's family names, sorted and
// without duplicates.
func (m *Manager) AvailableFonts() []string {
	return m.catalog.Names()
}

// Catalog returns the cached catalog snapshot.
func (m *Manager) Catalog() *Catalog {
	return m.catalog
}

// SwitchLanguage re-resolves against the cached catalog (no re-scan), loads
// and installs the resulting family, then records the new language and
// family. On any failure the previous state is left completely unchanged.
// Switching to the current language is a no-op success.
func (m *Manager) SwitchLanguage(ctx context.Context, rc RenderContext, lang Language) error {
	if lang == m.currentLanguage {
		return nil
	}

	family, err := Resolve(ctx, lang, m.catalog)
	if err != nil {
		m.reportError(err)
		return err
	}

	face, err := m.source.Load(ctx, family)
	if err != nil {
		m.reportError(err)
		return err
	}

	installFace(ctx, rc, face)
	m.currentLanguage = lang
	m.currentFont = face.Family

	m.reportInfo(fmt.Sprintf("switched to %s (%s)", lang, face.Family))
	zerolog.Ctx(ctx).Info().
		Stringer("language", lang).
		Str("family", face.Family).
		Msg("switched language")
	return nil
}

// SwitchFont bypasses language resolution and installs an explicitly named
// family. The name must be a member of the cached catalog. The selection is
// a manual override; the language state is untouched.
func (m *Manager) SwitchFont(ctx context.Context, rc RenderContext, family string) error {
	if !m.catalog.Contains(family) {
		err := &FontNotFoundError{Name: family}
		m.reportError(err)
		return err
	}

	face, err := m.source.Load(ctx, family)
	if err != nil {
		m.reportError(err)
		return err
	}

	installFace(ctx, rc, face)
	m.currentFont = face.Family

	m.reportInfo(fmt.Sprintf("switched to font %s", face.Family))
	zerolog.Ctx(ctx).Info().
		Str("family", face.Family).
		Msg("switched font")
	return nil
}

// Rescan queries the OS font service again and replaces the cached catalog.
// This is the only recovery path after fonts are installed or removed while
// the manager is alive; switches never re-scan on their own. The current
// selection is not revalidated against the new catalog.
func (m *Manager) Rescan(ctx context.Context) error {
	catalog, err := m.source.Scan(ctx)
	if err != nil {
		m.reportError(err)
		return err
	}
	m.catalog = catalog
	zerolog.Ctx(ctx).Info().
		Int("families", catalog.Len()).
		Msg("rescanned system fonts")
	return nil
}

func (m *Manager) reportError(err error) {
	if m.notifier != nil {
		m.notifier.Error(err.Error())
	}
}

func (m *Manager) reportInfo(text string) {
	if m.notifier != nil {
		m.notifier.Info(text)
	}
}
