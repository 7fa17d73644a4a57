package fontkit_test

import (
	"context"
	"errors"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/glyphbox/glyphbox/pkg/fontkit"
	"github.com/glyphbox/glyphbox/pkg/notify"
)

// Mock OS font service for testing
type mockSource struct {
	names         []string
	faces         map[string][]byte
	emptyFamilies map[string]struct{}
	loadFailures  map[string]error
	scanErr       error

	scanCount   int
	loadedNames []string
}

func newMockSource(names ...string) *mockSource {
	return &mockSource{
		names:         names,
		faces:         make(map[string][]byte),
		emptyFamilies: make(map[string]struct{}),
		loadFailures:  make(map[string]error),
	}
}

func (s *mockSource) Name() string {
	return "mock"
}

func (s *mockSource) Scan(ctx context.Context) (*fontkit.Catalog, error) {
	s.scanCount++
	if s.scanErr != nil {
		return nil, s.scanErr
	}
	return fontkit.NewCatalog(s.names)
}

func (s *mockSource) Load(ctx context.Context, family string) (*fontkit.Face, error) {
	s.loadedNames = append(s.loadedNames, family)
	if _, ok := s.emptyFamilies[family]; ok {
		return nil, &fontkit.NoFontInFamilyError{Name: family}
	}
	if err, ok := s.loadFailures[family]; ok {
		return nil, &fontkit.LoadError{Name: family, Err: err}
	}
	if !slices.Contains(s.names, family) {
		return nil, &fontkit.FontNotFoundError{Name: family}
	}
	data := s.faces[family]
	if data == nil {
		data = []byte(family + " outline bytes")
	}
	return &fontkit.Face{Family: family, Data: data}, nil
}

// Mock render context recording every definitions swap
type mockContext struct {
	installs []fontkit.Definitions
	dirty    int
}

func (c *mockContext) SetFontDefinitions(defs fontkit.Definitions) {
	c.installs = append(c.installs, defs)
}

func (c *mockContext) MarkDirty() {
	c.dirty++
}

var _ = Describe("Manager", func() {
	var (
		ctx      context.Context
		source   *mockSource
		renderer *mockContext
	)

	BeforeEach(func() {
		ctx = context.Background()
		source = newMockSource("Arial", "SimSun", "Noto Sans CJK JP")
		renderer = &mockContext{}
	})

	newManager := func(lang fontkit.Language) *fontkit.Manager {
		manager, err := fontkit.NewManager(ctx, renderer,
			fontkit.WithSource(source),
			fontkit.WithLanguage(lang),
		)
		Expect(err).NotTo(HaveOccurred())
		return manager
	}

	Context("initialization", func() {
		It("resolves, loads and installs the best preset family", func() {
			manager := newManager(fontkit.Chinese)

			Expect(manager.CurrentLanguage()).To(Equal(fontkit.Chinese))
			Expect(manager.CurrentFont()).To(Equal("SimSun"))
			Expect(renderer.installs).To(HaveLen(1))
			Expect(renderer.installs[0].Family).To(Equal("SimSun"))
			Expect(renderer.installs[0].Data).NotTo(BeEmpty())
			Expect(renderer.dirty).To(Equal(1))
		})

		It("scans the font service exactly once", func() {
			newManager(fontkit.English)
			Expect(source.scanCount).To(Equal(1))
		})

		It("exposes the scanned catalog sorted and without duplicates", func() {
			source.names = []string{"SimSun", "Arial", "SimSun", "Arial"}
			manager := newManager(fontkit.Chinese)

			Expect(manager.AvailableFonts()).To(Equal([]string{"Arial", "SimSun"}))
		})

		It("fails as a whole when the scan fails", func() {
			source.scanErr = &fontkit.ScanError{Reason: "service unavailable"}

			manager, err := fontkit.NewManager(ctx, renderer,
				fontkit.WithSource(source),
				fontkit.WithLanguage(fontkit.English),
			)
			Expect(manager).To(BeNil())
			var scanErr *fontkit.ScanError
			Expect(errors.As(err, &scanErr)).To(BeTrue())
			Expect(renderer.installs).To(BeEmpty())
		})

		It("treats an empty scan as a scan failure", func() {
			source.names = nil

			_, err := fontkit.NewManager(ctx, renderer,
				fontkit.WithSource(source),
				fontkit.WithLanguage(fontkit.English),
			)
			var scanErr *fontkit.ScanError
			Expect(errors.As(err, &scanErr)).To(BeTrue())
		})

		It("fails when no preset candidate is installed", func() {
			manager, err := fontkit.NewManager(ctx, renderer,
				fontkit.WithSource(source),
				fontkit.WithLanguage(fontkit.Korean),
			)
			Expect(manager).To(BeNil())
			var noFont *fontkit.NoSuitableFontError
			Expect(errors.As(err, &noFont)).To(BeTrue())
			Expect(noFont.Language).To(Equal(fontkit.Korean))
			Expect(renderer.installs).To(BeEmpty())
		})

		It("fails when the resolved family has no loadable face", func() {
			source.emptyFamilies["SimSun"] = struct{}{}

			_, err := fontkit.NewManager(ctx, renderer,
				fontkit.WithSource(source),
				fontkit.WithLanguage(fontkit.Chinese),
			)
			var empty *fontkit.NoFontInFamilyError
			Expect(errors.As(err, &empty)).To(BeTrue())
			Expect(empty.Name).To(Equal("SimSun"))
			Expect(renderer.installs).To(BeEmpty())
		})
	})

	Context("switching languages", func() {
		It("loads and installs the new language's family", func() {
			manager := newManager(fontkit.Chinese)

			Expect(manager.SwitchLanguage(ctx, renderer, fontkit.Japanese)).To(Succeed())
			Expect(manager.CurrentLanguage()).To(Equal(fontkit.Japanese))
			Expect(manager.CurrentFont()).To(Equal("Noto Sans CJK JP"))
			Expect(renderer.installs).To(HaveLen(2))
			Expect(renderer.installs[1].Family).To(Equal("Noto Sans CJK JP"))
		})

		It("does not re-scan the font service", func() {
			manager := newManager(fontkit.Chinese)

			Expect(manager.SwitchLanguage(ctx, renderer, fontkit.Japanese)).To(Succeed())
			Expect(source.scanCount).To(Equal(1))
		})

		It("is a no-op for the current language", func() {
			manager := newManager(fontkit.Chinese)
			loads := len(source.loadedNames)

			Expect(manager.SwitchLanguage(ctx, renderer, fontkit.Chinese)).To(Succeed())
			Expect(source.loadedNames).To(HaveLen(loads))
			Expect(renderer.installs).To(HaveLen(1))
		})

		It("leaves state untouched when resolution fails", func() {
			manager := newManager(fontkit.Chinese)

			err := manager.SwitchLanguage(ctx, renderer, fontkit.Korean)
			var noFont *fontkit.NoSuitableFontError
			Expect(errors.As(err, &noFont)).To(BeTrue())

			Expect(manager.CurrentLanguage()).To(Equal(fontkit.Chinese))
			Expect(manager.CurrentFont()).To(Equal("SimSun"))
			Expect(renderer.installs).To(HaveLen(1))
		})

		It("leaves state untouched when loading fails", func() {
			manager := newManager(fontkit.Chinese)
			source.loadFailures["Noto Sans CJK JP"] = errors.New("read error")

			err := manager.SwitchLanguage(ctx, renderer, fontkit.Japanese)
			var loadErr *fontkit.LoadError
			Expect(errors.As(err, &loadErr)).To(BeTrue())

			Expect(manager.CurrentLanguage()).To(Equal(fontkit.Chinese))
			Expect(manager.CurrentFont()).To(Equal("SimSun"))
			Expect(renderer.installs).To(HaveLen(1))
		})
	})

	Context("switching fonts by name", func() {
		It("installs an explicitly named family without touching the language", func() {
			manager := newManager(fontkit.Chinese)

			Expect(manager.SwitchFont(ctx, renderer, "Arial")).To(Succeed())
			Expect(manager.CurrentFont()).To(Equal("Arial"))
			Expect(manager.CurrentLanguage()).To(Equal(fontkit.Chinese))
		})

		It("is idempotent for a valid name", func() {
			manager := newManager(fontkit.Chinese)

			Expect(manager.SwitchFont(ctx, renderer, "Arial")).To(Succeed())
			Expect(manager.SwitchFont(ctx, renderer, "Arial")).To(Succeed())
			Expect(manager.CurrentFont()).To(Equal("Arial"))
		})

		It("rejects names absent from the catalog without loading", func() {
			manager := newManager(fontkit.Chinese)
			loads := len(source.loadedNames)

			err := manager.SwitchFont(ctx, renderer, "Helvetica")
			var notFound *fontkit.FontNotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.Name).To(Equal("Helvetica"))

			Expect(manager.CurrentFont()).To(Equal("SimSun"))
			Expect(source.loadedNames).To(HaveLen(loads))
			Expect(renderer.installs).To(HaveLen(1))
		})

		It("reports a listed family with no loadable face", func() {
			manager := newManager(fontkit.Chinese)
			source.emptyFamilies["Arial"] = struct{}{}

			err := manager.SwitchFont(ctx, renderer, "Arial")
			var empty *fontkit.NoFontInFamilyError
			Expect(errors.As(err, &empty)).To(BeTrue())
			Expect(manager.CurrentFont()).To(Equal("SimSun"))
		})
	})

	Context("rescanning", func() {
		It("replaces the cached catalog", func() {
			manager := newManager(fontkit.Chinese)
			source.names = append(source.names, "Malgun Gothic")

			Expect(manager.AvailableFonts()).NotTo(ContainElement("Malgun Gothic"))
			Expect(manager.Rescan(ctx)).To(Succeed())
			Expect(manager.AvailableFonts()).To(ContainElement("Malgun Gothic"))

			Expect(manager.SwitchLanguage(ctx, renderer, fontkit.Korean)).To(Succeed())
			Expect(manager.CurrentFont()).To(Equal("Malgun Gothic"))
			Expect(source.scanCount).To(Equal(2))
		})

		It("keeps the old catalog when the scan fails", func() {
			manager := newManager(fontkit.Chinese)
			before := manager.AvailableFonts()
			source.scanErr = &fontkit.ScanError{Reason: "service unavailable"}

			Expect(manager.Rescan(ctx)).NotTo(Succeed())
			Expect(manager.AvailableFonts()).To(Equal(before))
		})
	})

	Context("with a notifier", func() {
		It("reports switch failures to the queue", func() {
			queue := notify.New()
			manager, err := fontkit.NewManager(ctx, renderer,
				fontkit.WithSource(source),
				fontkit.WithLanguage(fontkit.Chinese),
				fontkit.WithNotifier(queue),
			)
			Expect(err).NotTo(HaveOccurred())

			Expect(manager.SwitchLanguage(ctx, renderer, fontkit.Korean)).NotTo(Succeed())

			pending := queue.Pending()
			Expect(pending).To(HaveLen(1))
			Expect(pending[0].Level).To(Equal(notify.LevelError))
			Expect(pending[0].Text).To(ContainSubstring("Korean"))
		})

		It("reports successful switches at info level", func() {
			queue := notify.New()
			manager, err := fontkit.NewManager(ctx, renderer,
				fontkit.WithSource(source),
				fontkit.WithLanguage(fontkit.Chinese),
				fontkit.WithNotifier(queue),
			)
			Expect(err).NotTo(HaveOccurred())

			Expect(manager.SwitchFont(ctx, renderer, "Arial")).To(Succeed())

			pending := queue.Pending()
			Expect(pending).To(HaveLen(1))
			Expect(pending[0].Level).To(Equal(notify.LevelInfo))
			Expect(pending[0].Text).To(ContainSubstring("Arial"))
		})
	})
})
