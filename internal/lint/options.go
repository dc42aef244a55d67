package lint

// Options is the normalized invocation context for one run.
// It is built once by the CLI layer from the resolved flags and
// positional arguments and passed unchanged into an operation.
type Options struct {
	// Inputs holds the files or directories to operate on, in the order
	// the user supplied them. The CLI layer guarantees it is never empty:
	// when the user supplies nothing it contains the working directory.
	Inputs []string

	// Excludes holds file-name patterns (filepath.Match syntax) or whole
	// paths that discovery must skip.
	Excludes []string

	// Skips holds check names that must not run.
	Skips []string

	// Recursive walks directories instead of listing only their
	// immediate entries.
	Recursive bool

	// Quiet suppresses progress and summary output. Warnings themselves
	// are always printed.
	Quiet bool

	// NoBackup prevents Fix from writing a backup copy before rewriting
	// a file. Only the fix path sets it.
	NoBackup bool
}
