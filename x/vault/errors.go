package vault

import (
	"github.com/covault/covault/errors"
)

// ErrInsufficientApprovals is returned when execution is requested
// before a proposal collected threshold many approvals.
var ErrInsufficientApprovals = errors.Register(1030, "insufficient approvals")
