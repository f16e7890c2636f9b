package application

import (
	"strings"

	"github.com/bnema/asne/internal/domain"
)

// AugmentSearchPath prepends dirs to the existing search path, dropping
// empty entries.
func AugmentSearchPath(existing, separator string, dirs ...string) string {
	entries := make([]string, 0, len(dirs)+strings.Count(existing, separator)+1)
	for _, dir := range dirs {
		if dir != "" {
			entries = append(entries, dir)
		}
	}
	for _, entry := range strings.Split(existing, separator) {
		if entry != "" {
			entries = append(entries, entry)
		}
	}

	return strings.Join(entries, separator)
}

// ChildEnv copies environ, rewrites the search path variable and sets the
// marker variable to "1".
func ChildEnv(environ []string, goos domain.OS, marker string, dirs ...string) []string {
	pathKey := "PATH"
	existing := ""
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if ok && sameEnvKey(goos, key, "PATH") {
			pathKey = key
			existing = value
		}
	}

	env := make([]string, 0, len(environ)+2)
	for _, kv := range environ {
		key, _, _ := strings.Cut(kv, "=")
		if sameEnvKey(goos, key, "PATH") || (marker != "" && sameEnvKey(goos, key, marker)) {
			continue
		}
		env = append(env, kv)
	}

	env = append(env, pathKey+"="+AugmentSearchPath(existing, goos.PathListSeparator(), dirs...))
	if marker != "" {
		env = append(env, marker+"=1")
	}

	return env
}

func sameEnvKey(goos domain.OS, a, b string) bool {
	if goos == domain.OSWindows {
		return strings.EqualFold(a, b)
	}
	return a == b
}
