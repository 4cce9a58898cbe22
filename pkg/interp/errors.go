package interp

import "fmt"

// The interpreter's distinct error kinds. Each is its own Go type so that
// callers can tell them apart with errors.As when they need to; the CLI
// and the interpreter internals only ever use the message.

type ErrFreeVariables struct{ Detail string }

func (e *ErrFreeVariables) Error() string { return "Free variables: " + e.Detail }

type ErrControlFlowNotGround struct{ Detail string }

func (e *ErrControlFlowNotGround) Error() string {
	return "Partial evaluation not supported for control flow: " + e.Detail
}

type ErrUnsupportedConstruct struct{ Construct string }

func (e *ErrUnsupportedConstruct) Error() string {
	return fmt.Sprintf("Unsupported construct: %s", e.Construct)
}

type ErrExplicit struct{ Msg string }

func (e *ErrExplicit) Error() string { return e.Msg }

type ErrTypeProjection struct{ Detail string }

func (e *ErrTypeProjection) Error() string { return e.Detail }

type ErrPartialAssignment struct{ Detail string }

func (e *ErrPartialAssignment) Error() string {
	return "Partial assignment for arrays/structs not supported: " + e.Detail
}

type ErrMalformedLhs struct{ Detail string }

func (e *ErrMalformedLhs) Error() string { return "Malformed assignment target: " + e.Detail }
