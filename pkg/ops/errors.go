package ops

import "fmt"

// ErrCastDomain reports an operator applied outside its domain: a cast pair
// absent from the matrix, or Rem/ShL/ShR used outside their domain.
type ErrCastDomain struct {
	Msg string
}

func (e *ErrCastDomain) Error() string { return e.Msg }

func domainErr(format string, args ...any) error {
	return &ErrCastDomain{Msg: fmt.Sprintf(format, args...)}
}
