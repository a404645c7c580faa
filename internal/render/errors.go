package render

import "fmt"

// ErrorKind discriminates the anticipated failure modes of a conversion.
type ErrorKind int

const (
	// KindNotFound means the image path does not exist or is not
	// accessible. No decode is attempted.
	KindNotFound ErrorKind = iota

	// KindDecode means the file exists but could not be interpreted as a
	// supported image (corrupt data or unsupported codec).
	KindDecode

	// KindInvalidParameter means the caller supplied a non-positive output
	// width or an empty palette.
	KindInvalidParameter
)

// String returns a short name for the kind, used in error messages.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindDecode:
		return "decode failed"
	case KindInvalidParameter:
		return "invalid parameter"
	default:
		return "unknown"
	}
}

// Error is the discriminated error returned by Render and RenderImage.
//
// Callers branch on Kind rather than matching message text:
//
//	var rerr *render.Error
//	if errors.As(err, &rerr) && rerr.Kind == render.KindNotFound {
//	    // handle missing file
//	}
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Path is the image path involved, if any.
	Path string

	// Err is the underlying cause, if any. Exposed via Unwrap.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("render %s: %s: %v", e.Path, e.Kind, e.Err)
	case e.Path != "":
		return fmt.Sprintf("render %s: %s", e.Path, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("render: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("render: %s", e.Kind)
	}
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

func notFoundError(path string, cause error) *Error {
	return &Error{Kind: KindNotFound, Path: path, Err: cause}
}

func decodeError(path string, cause error) *Error {
	return &Error{Kind: KindDecode, Path: path, Err: cause}
}

func invalidParameterError(cause error) *Error {
	return &Error{Kind: KindInvalidParameter, Err: cause}
}
