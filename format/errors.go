package format

import (
	"errors"
	"fmt"
)

// UnsupportedFormatError reports an operation a format does not
// support, such as encoding to tag-value or any operation on an
// unknown format.
type UnsupportedFormatError struct {
	// Format is the format the operation was attempted with.
	Format Format

	// Operation is the attempted operation, "encode" or "decode".
	Operation string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("format %q does not support %s", e.Format, e.Operation)
}

// UnknownExtensionError reports a file path whose extension maps to
// no known document format.
type UnknownExtensionError struct {
	// Path is the file path that could not be matched to a format.
	Path string
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("no document format known for extension of %q", e.Path)
}

// IsUnsupportedFormat reports whether err is an UnsupportedFormatError.
func IsUnsupportedFormat(err error) bool {
	var formatErr *UnsupportedFormatError
	return errors.As(err, &formatErr)
}

// IsUnknownExtension reports whether err is an UnknownExtensionError.
func IsUnknownExtension(err error) bool {
	var extErr *UnknownExtensionError
	return errors.As(err, &extErr)
}
