// Package pathresolve locates an executable file for a bare command name.
package pathresolve

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// StatFunc abstracts os.Stat for testability.
type StatFunc func(path string) (os.FileInfo, error)

// Resolve locates an executable for name. If name contains a path
// separator it is used directly (and must point at a regular, executable
// file). Otherwise each directory in searchPath (already split on ':') is
// tried in order. Resolve never mutates state.
func Resolve(name string, searchPath []string, stat StatFunc) (string, bool) {
	if strings.Contains(name, "/") {
		if isExecutableRegularFile(name, stat) {
			return name, true
		}
		return "", false
	}

	for _, dir := range searchPath {
		if dir == "" {
			continue
		}
		candidate := dir + "/" + name
		if isExecutableRegularFile(candidate, stat) {
			return candidate, true
		}
	}

	return "", false
}

// SplitPath splits the colon-separated PATH environment variable value.
// An empty or missing value yields a nil (empty) search path.
func SplitPath(pathEnv string) []string {
	if pathEnv == "" {
		return nil
	}
	return strings.Split(pathEnv, ":")
}

func isExecutableRegularFile(path string, stat StatFunc) bool {
	info, err := stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}

// ResolveSystem resolves name against the live process environment's PATH,
// using unix.Access to honor the effective user's actual executable
// permission (including ACLs and filesystem mount options that a bare mode
// bit check would miss).
func ResolveSystem(name, pathEnv string) (string, bool) {
	if strings.Contains(name, "/") {
		if accessExecutable(name) {
			return name, true
		}
		return "", false
	}

	for _, dir := range SplitPath(pathEnv) {
		if dir == "" {
			continue
		}
		candidate := dir + "/" + name
		if accessExecutable(candidate) {
			return candidate, true
		}
	}

	return "", false
}

func accessExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
