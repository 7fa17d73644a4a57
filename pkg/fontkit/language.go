package fontkit

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/glyphbox/glyphbox/internal/locale"
)

// Language identifies one of the languages the preset table knows about.
type Language int

const (
	English Language = iota
	Chinese
	Japanese
	Korean
)

func (l Language) String() string {
	switch l {
	case Chinese:
		return "Chinese"
	case Japanese:
		return "Japanese"
	case Korean:
		return "Korean"
	default:
		return "English"
	}
}

// Languages returns every supported language, useful for UI pickers.
func Languages() []Language {
	return []Language{English, Chinese, Japanese, Korean}
}

// ParseLanguage maps a user-entered name ("chinese", "ja", "Korean") to a
// Language. The boolean reports whether the name was recognized.
func ParseLanguage(name string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "english", "en":
		return English, true
	case "chinese", "zh":
		return Chinese, true
	case "japanese", "ja":
		return Japanese, true
	case "korean", "ko":
		return Korean, true
	default:
		return English, false
	}
}

// DetectLanguage maps the host's configured locale onto the closed language
// set. Detection never fails outward: an unreadable or unrecognized locale
// is reported as English.
func DetectLanguage(ctx context.Context) Language {
	tag := locale.Current(ctx)
	lang := languageForTag(tag)
	zerolog.Ctx(ctx).Debug().
		Str("locale", tag).
		Stringer("language", lang).
		Msg("detected system language")
	return lang
}

// languageForTag applies the prefix-match policy on the language subtag.
func languageForTag(tag string) Language {
	if tag == "" {
		return English
	}

	// Reduce well-formed tags like "zh-Hans-CN" to their base language.
	// Malformed input keeps the raw string and falls through to the
	// prefix checks.
	if parsed, err := language.Parse(tag); err == nil {
		if base, conf := parsed.Base(); conf > language.No {
			tag = base.String()
		}
	}

	switch {
	case strings.HasPrefix(tag, "zh"):
		return Chinese
	case strings.HasPrefix(tag, "ja"):
		return Japanese
	case strings.HasPrefix(tag, "ko"):
		return Korean
	default:
		return English
	}
}
