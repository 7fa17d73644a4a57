package locale

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
)

// nativeLocale asks the OS for its locale when the environment is empty.
func nativeLocale(ctx context.Context) string {
	if runtime.GOOS == "darwin" {
		return darwinLocale(ctx)
	}
	// On Linux the environment variables are authoritative.
	return ""
}

func darwinLocale(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleLocale").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
