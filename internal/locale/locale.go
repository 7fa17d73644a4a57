// Package locale reads the host operating system's configured locale.
// It reports a raw tag only; mapping onto a supported language set belongs
// to the caller.
package locale

import (
	"context"
	"os"
	"strings"
)

// Environment variables consulted in priority order.
var envKeys = []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"}

// Current returns the configured locale as a normalized tag ("zh-CN",
// "en-US"), or the empty string when nothing is configured. It never fails:
// any underlying query error reads as "nothing configured".
func Current(ctx context.Context) string {
	for _, key := range envKeys {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			continue
		}
		// LANGUAGE holds a colon-separated preference list.
		if key == "LANGUAGE" {
			raw = strings.SplitN(raw, ":", 2)[0]
			if raw == "" {
				continue
			}
		}
		return Normalize(raw)
	}

	// GUI processes often start with no locale environment at all; fall
	// back to asking the OS directly.
	if raw := nativeLocale(ctx); raw != "" {
		return Normalize(raw)
	}

	return ""
}

// Normalize strips the encoding/modifier suffix and canonicalizes
// separators: "zh_CN.UTF-8" becomes "zh-CN".
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	return strings.ReplaceAll(raw, "_", "-")
}
