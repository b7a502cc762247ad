package model

// ErrorCodeEntry binds a symbolic error code name to its numeric identifier.
type ErrorCodeEntry struct {
	Name   string
	Number int
}
