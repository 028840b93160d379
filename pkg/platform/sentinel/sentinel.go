package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and modem drivers return
// these (optionally wrapped) so services can translate them into domain errors.
//
// - ErrNotFound: record does not exist in the store or on the SIM
// - ErrConflict: record or instance already exists
// - ErrInvalidState: instance in wrong state for the requested operation
// - ErrUnavailable: modem, storage or backing service temporarily unavailable
// - ErrRejected: the SIM refused the operation (wrong PIN2, write protected)
// - ErrClosed: the owning instance has been torn down
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
	ErrRejected     = errors.New("rejected")
	ErrClosed       = errors.New("closed")
)
