package synco

import "github.com/rotisserie/eris"

// Contract violations. The World panics with one of these (wrapped with
// context by eris) when a caller breaks a precondition. Callers that recover
// can match them with errors.Is.
var (
	ErrMissingResource       = eris.New("resource not present")
	ErrUnregisteredComponent = eris.New("component type not registered")
	ErrTooManyComponents     = eris.New("too many component types")
	ErrIncompatibleFilter    = eris.New("incompatible filter")
	ErrBorrowConflict        = eris.New("borrow conflict")
	ErrEntityNotFound        = eris.New("entity does not exist")
	ErrEntitySpaceExhausted  = eris.New("no more entity slots may be allocated")
	ErrComponentPresent      = eris.New("component already present at index")
	ErrComponentNotPresent   = eris.New("component not present at index")
	ErrNotZeroSize           = eris.New("marker storage requires a zero-size type")
	ErrQueryClosed           = eris.New("query is closed")
	ErrPinnedResource        = eris.New("resource is owned by the world")
)
