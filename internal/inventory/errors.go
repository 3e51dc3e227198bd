package inventory

import "errors"

// Kinds of sync failure. Use case errors wrap exactly one of these.
var (
	ErrConnection = errors.New("connection error")
	ErrSchema     = errors.New("schema error")
	ErrExtraction = errors.New("extraction error")
	ErrTransform  = errors.New("transform error")
	ErrLoad       = errors.New("load error")
)
