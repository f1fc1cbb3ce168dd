package app

import (
	"github.com/covault/covault"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/x/hostauth"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (covault.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ covault.Tx = (*Tx)(nil)
var _ hostauth.SignerTx = (*Tx)(nil)

// GetMsg returns the message carried by this transaction. Exactly
// one of the message fields must be set.
func (tx *Tx) GetMsg() (covault.Msg, error) {
	var (
		msg   covault.Msg
		found int
	)
	if m := tx.ProposeTransferMsg; m != nil {
		msg, found = m, found+1
	}
	if m := tx.ProposeAddParticipantMsg; m != nil {
		msg, found = m, found+1
	}
	if m := tx.ProposeRemoveParticipantMsg; m != nil {
		msg, found = m, found+1
	}
	if m := tx.ProposeChangeThresholdMsg; m != nil {
		msg, found = m, found+1
	}
	if m := tx.ApproveMsg; m != nil {
		msg, found = m, found+1
	}
	if m := tx.RevokeApprovalMsg; m != nil {
		msg, found = m, found+1
	}
	if m := tx.ExecuteProposalMsg; m != nil {
		msg, found = m, found+1
	}
	if m := tx.DepositMsg; m != nil {
		msg, found = m, found+1
	}

	switch found {
	case 0:
		return nil, errors.Wrap(errors.ErrInput, "transaction without message")
	case 1:
		return msg, nil
	default:
		return nil, errors.Wrap(errors.ErrInput, "transaction with multiple messages")
	}
}
