package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrStageRegression is returned when AdvanceStage is asked to move an
	// application to an earlier stage. Stages only ever advance forward.
	ErrStageRegression = errors.New("stage regression")
	// ErrTerminalApplication is returned when a mutation targets an
	// application already in a terminal status (rejected or completed).
	ErrTerminalApplication = errors.New("application is terminal")
)
