package media

import "fmt"

// ExtractionError wraps any failure reported by the extractor itself:
// malformed URLs, network failures, unsupported sites, and internal
// extractor errors are all collapsed into this one class. Whether the
// wrapped cause is exposed to the client is the handler's decision, not
// this type's.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ResolutionError means the extractor reported success but the resolved
// output path does not exist on disk.
type ResolutionError struct {
	Path string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("downloaded file missing: %s", e.Path)
}
