package hunter

import "errors"

// ErrInvalidObservation is returned by ApplyShot for a shot outside the
// grid or an observation inconsistent with the value already recorded
// for that cell. The core treats this as a programmer error: the
// contract is to validate at this boundary and reject, never to guess.
var ErrInvalidObservation = errors.New("hunter: invalid observation")
