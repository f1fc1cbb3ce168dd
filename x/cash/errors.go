package cash

import "github.com/covault/covault/errors"

// cash reserves 1020 ~ 1029

// ErrInsufficientFunds is returned when the source wallet
// does not hold enough coins to cover a movement
var ErrInsufficientFunds = errors.Register(1020, "insufficient funds")
