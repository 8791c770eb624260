package dragonfly

import "errors"

// Error kinds of the engine. Errors returned by sub-packages wrap one of these,
// clients test for them with errors.Is.
var (
	ErrIO                   = errors.New("io error")
	ErrURLParse             = errors.New("url parser error")
	ErrHTTP                 = errors.New("http error")
	ErrFontSelection        = errors.New("font selection error")
	ErrNoFilesystem         = errors.New("no filesystem present")
	ErrFontLoading          = errors.New("failed to load font")
	ErrUnknownStyleProperty = errors.New("unknown css property")
)
