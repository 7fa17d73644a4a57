package fontkit

import "fmt"

// ScanError reports that enumerating the OS font service failed, or that it
// reported no families at all. Fatal to manager initialization; recoverable
// only by an explicit rescan.
type ScanError struct {
	Reason string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scanning system fonts: %s", e.Reason)
}

// FontNotFoundError reports that an explicitly requested family is absent
// from the cached catalog.
type FontNotFoundError struct {
	Name string
}

func (e *FontNotFoundError) Error() string {
	return fmt.Sprintf("font not found: %s", e.Name)
}

// NoFontInFamilyError reports a family the OS lists but that contains no
// loadable face.
type NoFontInFamilyError struct {
	Name string
}

func (e *NoFontInFamilyError) Error() string {
	return fmt.Sprintf("no fonts in family: %s", e.Name)
}

// LoadError reports that retrieving a present family's bytes failed for an
// OS-level reason. Never retried internally.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading font %s: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NoSuitableFontError reports that no preset candidate for the language is
// present in the catalog. The caller may fall back to SwitchFont with an
// explicit name.
type NoSuitableFontError struct {
	Language Language
}

func (e *NoSuitableFontError) Error() string {
	return fmt.Sprintf("no suitable font found for language: %s", e.Language)
}
