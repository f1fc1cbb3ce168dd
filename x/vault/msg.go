package vault

import (
	"github.com/covault/covault"
	"github.com/covault/covault/errors"
)

// Routing paths of the vault messages
const (
	pathProposeTransferMsg          = "vault/propose_transfer"
	pathProposeAddParticipantMsg    = "vault/propose_add_participant"
	pathProposeRemoveParticipantMsg = "vault/propose_remove_participant"
	pathProposeChangeThresholdMsg   = "vault/propose_change_threshold"
	pathApproveMsg                  = "vault/approve"
	pathRevokeApprovalMsg           = "vault/revoke"
	pathExecuteProposalMsg          = "vault/execute"
	pathDepositMsg                  = "vault/deposit"
)

var _ covault.Msg = (*ProposeTransferMsg)(nil)
var _ covault.Msg = (*ProposeAddParticipantMsg)(nil)
var _ covault.Msg = (*ProposeRemoveParticipantMsg)(nil)
var _ covault.Msg = (*ProposeChangeThresholdMsg)(nil)
var _ covault.Msg = (*ApproveMsg)(nil)
var _ covault.Msg = (*RevokeApprovalMsg)(nil)
var _ covault.Msg = (*ExecuteProposalMsg)(nil)
var _ covault.Msg = (*DepositMsg)(nil)

// Path fulfills covault.Msg interface to allow routing
func (ProposeTransferMsg) Path() string {
	return pathProposeTransferMsg
}

// Validate makes sure that this is sensible
func (m *ProposeTransferMsg) Validate() error {
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if m.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := m.Amount.Validate(); err != nil {
		return err
	}
	if !m.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %v", m.Amount)
	}
	return nil
}

// Path fulfills covault.Msg interface to allow routing
func (ProposeAddParticipantMsg) Path() string {
	return pathProposeAddParticipantMsg
}

// Validate makes sure that this is sensible
func (m *ProposeAddParticipantMsg) Validate() error {
	return errors.Wrap(m.Participant.Validate(), "participant")
}

// Path fulfills covault.Msg interface to allow routing
func (ProposeRemoveParticipantMsg) Path() string {
	return pathProposeRemoveParticipantMsg
}

// Validate makes sure that this is sensible
func (m *ProposeRemoveParticipantMsg) Validate() error {
	return errors.Wrap(m.Participant.Validate(), "participant")
}

// Path fulfills covault.Msg interface to allow routing
func (ProposeChangeThresholdMsg) Path() string {
	return pathProposeChangeThresholdMsg
}

// Validate makes sure that this is sensible.
// The upper bound depends on the current participant count and
// is checked by the handler.
func (m *ProposeChangeThresholdMsg) Validate() error {
	if m.NewThreshold < 1 {
		return errors.Wrapf(errors.ErrInput, "threshold %d", m.NewThreshold)
	}
	return nil
}

// Path fulfills covault.Msg interface to allow routing
func (ApproveMsg) Path() string {
	return pathApproveMsg
}

// Validate makes sure that this is sensible
func (m *ApproveMsg) Validate() error {
	return validateProposalID(m.ProposalId)
}

// Path fulfills covault.Msg interface to allow routing
func (RevokeApprovalMsg) Path() string {
	return pathRevokeApprovalMsg
}

// Validate makes sure that this is sensible
func (m *RevokeApprovalMsg) Validate() error {
	return validateProposalID(m.ProposalId)
}

// Path fulfills covault.Msg interface to allow routing
func (ExecuteProposalMsg) Path() string {
	return pathExecuteProposalMsg
}

// Validate makes sure that this is sensible
func (m *ExecuteProposalMsg) Validate() error {
	return validateProposalID(m.ProposalId)
}

// Path fulfills covault.Msg interface to allow routing
func (DepositMsg) Path() string {
	return pathDepositMsg
}

// Validate makes sure that this is sensible
func (m *DepositMsg) Validate() error {
	if m.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := m.Amount.Validate(); err != nil {
		return err
	}
	if !m.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive deposit: %v", m.Amount)
	}
	return nil
}

// validateProposalID ensures the id is the output of a sequence
func validateProposalID(id []byte) error {
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "proposal id: %X", id)
	}
	return nil
}
