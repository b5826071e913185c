package jsonparser

// Severity expresses how a reader-level issue is treated.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate object keys. With Ignore
// and Warn the last occurrence of a key wins and keeps the first position.
type Strictness struct {
	OnDuplicateKey Severity
}

// Warning is a non-fatal reader issue reported through ParseOpt.OnWarning.
type Warning struct {
	Code    string
	Path    string // JSON Pointer
	Message string
}

// ParseOpt bundles document reading options. The zero value applies no limits.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	// OnWarning receives Warn-level issues. Nil drops them.
	OnWarning func(Warning)
}
