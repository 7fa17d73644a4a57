package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/sfnt"

	"github.com/glyphbox/glyphbox/internal/logging"
	"github.com/glyphbox/glyphbox/pkg/fontkit"
	"github.com/glyphbox/glyphbox/pkg/notify"
)

var (
	verbose  bool
	cacheDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glyphbox",
	Short: "glyphbox selects and loads system fonts for a text rendering host",
	Long: `glyphbox discovers the fonts installed on this machine, picks the best
family for a detected or chosen language, and loads its outline bytes the
way a host rendering context would receive them.

Examples:
  # Show the language detected from the system locale
  glyphbox detect

  # List every installed font family
  glyphbox fonts

  # Show which family a language would get
  glyphbox resolve japanese

  # Load the detected language's font into a sample context
  glyphbox use

  # Load a specific family or language
  glyphbox use "Noto Sans CJK SC"
  glyphbox use korean`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := logging.New(verbose)
		cmd.SetContext(logging.WithContext(cmd.Context(), logger))
	},
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the language detected from the system locale",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(fontkit.DetectLanguage(cmd.Context()))
		return nil
	},
}

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List installed font families",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := newSource().Scan(cmd.Context())
		if err != nil {
			return fmt.Errorf("scanning fonts: %w", err)
		}
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		fmt.Printf("\n%d families installed\n", catalog.Len())
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [language]",
	Short: "Show which family a language resolves to",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		lang := fontkit.DetectLanguage(ctx)
		if len(args) == 1 {
			parsed, ok := fontkit.ParseLanguage(args[0])
			if !ok {
				return fmt.Errorf("unknown language %q", args[0])
			}
			lang = parsed
		}

		catalog, err := newSource().Scan(ctx)
		if err != nil {
			return fmt.Errorf("scanning fonts: %w", err)
		}

		family, err := fontkit.Resolve(ctx, lang, catalog)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", lang, err)
		}

		fmt.Printf("%s -> %s\n", lang, family)
		return nil
	},
}

var useCmd = &cobra.Command{
	Use:   "use [family or language]",
	Short: "Load a font into a sample rendering context",
	Long: `Runs the full startup sequence against a sample rendering context and
reports what the context received. With no argument the system language
decides the font; an argument is tried first as a language name, then as an
exact family name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		queue := notify.New()
		sample := &sniffContext{}

		opts := []fontkit.Option{
			fontkit.WithSource(newSource()),
			fontkit.WithNotifier(queue),
		}

		var switchTo string
		if len(args) == 1 {
			if lang, ok := fontkit.ParseLanguage(args[0]); ok {
				opts = append(opts, fontkit.WithLanguage(lang))
			} else {
				switchTo = args[0]
			}
		}

		manager, err := fontkit.NewManager(ctx, sample, opts...)
		if err != nil {
			return fmt.Errorf("initializing font manager: %w", err)
		}

		if switchTo != "" {
			if err := manager.SwitchFont(ctx, sample, switchTo); err != nil {
				printNotifications(queue)
				return fmt.Errorf("switching font: %w", err)
			}
		}

		fmt.Printf("Language: %s\n", manager.CurrentLanguage())
		fmt.Printf("Family:   %s\n", manager.CurrentFont())
		if err := sample.describe(); err != nil {
			return fmt.Errorf("inspecting installed bytes: %w", err)
		}
		printNotifications(queue)
		return nil
	},
}

func newSource() *fontkit.SystemSource {
	if cacheDir != "" {
		return fontkit.NewSystemSourceWithCacheDir(cacheDir)
	}
	return fontkit.NewSystemSource()
}

func printNotifications(queue *notify.Queue) {
	for _, msg := range queue.Pending() {
		fmt.Printf("[%s] %s\n", msg.Level, msg.Text)
	}
}

// sniffContext stands in for a host rendering context. Instead of
// rasterizing anything it parses the installed bytes and reports what a
// renderer would see.
type sniffContext struct {
	defs  fontkit.Definitions
	dirty bool
}

func (c *sniffContext) SetFontDefinitions(defs fontkit.Definitions) {
	c.defs = defs
}

func (c *sniffContext) MarkDirty() {
	c.dirty = true
}

func (c *sniffContext) describe() error {
	// ParseCollection handles both standalone fonts and .ttc collections,
	// which macOS system fonts commonly ship as.
	collection, err := sfnt.ParseCollection(c.defs.Data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", c.defs.Family, err)
	}
	parsed, err := collection.Font(0)
	if err != nil {
		return fmt.Errorf("reading first face of %s: %w", c.defs.Family, err)
	}

	name, err := parsed.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		name = c.defs.Family
	}

	fmt.Printf("Face:     %s (%d glyphs, %d bytes)\n", name, parsed.NumGlyphs(), len(c.defs.Data))
	return nil
}

func init() {
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(fontsCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(useCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "Directory for the font index cache")
}
