package starlarkjdom

// ValueError wraps a jdom error crossing into Starlark.
type ValueError struct {
	err error
}

func newValueError(err error) error {
	return &ValueError{err: err}
}

func (e *ValueError) Error() string {
	return "ValueError: " + e.err.Error()
}

func (e *ValueError) Unwrap() error {
	return e.err
}

type TypeError string

func (e TypeError) Error() string {
	return "TypeError: " + string(e)
}
