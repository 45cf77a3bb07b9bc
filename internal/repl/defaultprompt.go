package repl

import "fmt"

// DefaultPromptRenderer is the fixed ASCII fallback spec.md §6 requires
// when no richer renderer (git branch, color, path shortening — all
// out-of-scope external collaborators) is wired in. It never panics.
type DefaultPromptRenderer struct{}

// Render formats "user@host:cwd$ ", with a trailing "!" instead of "$" when
// the previous command's exit status was non-zero.
func (DefaultPromptRenderer) Render(cwd, home string, lastStatus int, user, host string) string {
	marker := "$"
	if lastStatus != 0 {
		marker = "!"
	}
	if user == "" {
		user = "user"
	}
	if host == "" {
		host = "helix"
	}
	return fmt.Sprintf("%s@%s:%s%s ", user, host, cwd, marker)
}
