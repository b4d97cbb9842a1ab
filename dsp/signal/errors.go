package signal

import "errors"

// ErrShapeMismatch is returned when two signals, or a signal and a batch,
// do not have compatible batch layouts.
var ErrShapeMismatch = errors.New("signal shape mismatch")
