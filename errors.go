package suttadown

import (
	"errors"
	"fmt"
)

var (
	// ErrStructure indicates the page does not follow the sutta template.
	ErrStructure = errors.New("unexpected page structure")
	// ErrFetch indicates the page could not be retrieved.
	ErrFetch = errors.New("fetch failed")
)

// StructureError reports a missing piece of the sutta template, such as the
// content root or the title heading.
type StructureError struct {
	Element string // what was looked for, e.g. "content root", "h1"
	Message string
}

func (e *StructureError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Element, e.Message)
	}
	return fmt.Sprintf("%s not found", e.Element)
}

func (e *StructureError) Unwrap() error {
	return ErrStructure
}

// FetchError reports a transport failure or a non-success HTTP status.
type FetchError struct {
	URL        string
	StatusCode int   // zero when no response was received
	Err        error // underlying transport error, if any
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrFetch
}

// Is makes errors.Is(err, ErrFetch) hold whether or not Err is set.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}
