package ingesting

import "errors"

var (
	ErrUnsupportedFile = errors.New("file type not supported")
	ErrInvalidFileName = errors.New("invalid file name")
	ErrFileNotLoaded   = errors.New("file could not be loaded")
)
