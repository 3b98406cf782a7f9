package formats

import "github.com/pkg/errors"

// errors
var (
	ErrUnsupportedExtension = errors.New("unsupported extension")
)
