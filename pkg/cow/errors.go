package cow

import "fmt"

// RenderError reports a render stage that could not complete.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render cow: %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
