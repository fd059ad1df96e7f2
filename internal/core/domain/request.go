package domain

// ResolveData is the host bundler's mutable resolution request.
type ResolveData struct {
	// Request is the specifier being resolved, e.g. "react" or "./lib/index.js".
	Request string
	// Context is the directory the request is resolved from.
	Context string
}

// RewriteOutcome is the result of a successful rewrite.
type RewriteOutcome struct {
	// Path is the rewritten absolute path.
	Path string
	// Original is the path the request resolved to before rewriting.
	Original string
	// Key is the duplicate set the path belongs to.
	Key PackageKey
	// Matched is the duplicate directory the original path was under.
	Matched string
	// Canonical is the directory the path now points into.
	Canonical string
}
