package archwiki

// PageCache stores converted pages keyed by page identity and format.
type PageCache interface {
	// Fresh reports whether a stored artifact exists and may be reused.
	Fresh(identity string, format PageFormat) bool

	// Read returns a stored artifact.
	// Returns EIO if the artifact cannot be read, including when it vanished
	// after a Fresh check.
	Read(identity string, format PageFormat) (string, error)

	// Write stores an artifact, replacing any previous one.
	// Returns EIO on filesystem failures.
	Write(identity string, format PageFormat, content string) error
}
