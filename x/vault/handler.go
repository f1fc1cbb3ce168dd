package vault

import (
	"strconv"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/covault/covault"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/orm"
	"github.com/covault/covault/x"
	"github.com/covault/covault/x/cash"
)

const (
	proposalCost int64 = 300
	approvalCost int64 = 100
	executeCost  int64 = 500
	depositCost  int64 = 100
)

// RegisterRoutes will instantiate and register all handlers in
// this package
func RegisterRoutes(r covault.Registry, auth x.Authenticator, ctrl cash.Controller) {
	vaults := NewVaultBucket()
	proposals := NewProposalBucket()

	create := CreateProposalHandler{
		auth:      auth,
		vaults:    vaults,
		proposals: proposals,
	}
	r.Handle(pathProposeTransferMsg, create)
	r.Handle(pathProposeAddParticipantMsg, create)
	r.Handle(pathProposeRemoveParticipantMsg, create)
	r.Handle(pathProposeChangeThresholdMsg, create)

	r.Handle(pathApproveMsg, ApprovalHandler{
		auth:      auth,
		vaults:    vaults,
		proposals: proposals,
		approve:   true,
	})
	r.Handle(pathRevokeApprovalMsg, ApprovalHandler{
		auth:      auth,
		vaults:    vaults,
		proposals: proposals,
		approve:   false,
	})

	r.Handle(pathExecuteProposalMsg, ExecuteHandler{
		auth:      auth,
		vaults:    vaults,
		proposals: proposals,
		ctrl:      ctrl,
	})
	r.Handle(pathDepositMsg, DepositHandler{
		auth: auth,
		ctrl: ctrl,
	})
}

// RegisterQuery will register the registry and proposals as
// "/vaults" and "/proposals"
func RegisterQuery(qr covault.QueryRouter) {
	NewVaultBucket().Register("vaults", qr)
	NewProposalBucket().Register("proposals", qr)
}

//--- CreateProposalHandler

// CreateProposalHandler turns any of the four propose messages
// into a new Pending proposal with the proposer's approval
// already recorded.
type CreateProposalHandler struct {
	auth      x.Authenticator
	vaults    VaultBucket
	proposals ProposalBucket
}

var _ covault.Handler = CreateProposalHandler{}

// Check verifies the proposal could be created
func (h CreateProposalHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &covault.CheckResult{GasAllocated: proposalCost}, nil
}

// Deliver persists the new proposal and returns its id
func (h CreateProposalHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.DeliverResult, error) {
	proposal, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.proposals.Create(db, proposal)
	if err != nil {
		return nil, err
	}
	res := &covault.DeliverResult{
		Data: id,
		Tags: []common.KVPair{
			{Key: []byte("proposal"), Value: id},
			{Key: []byte("proposer"), Value: []byte(proposal.Proposer.String())},
			{Key: []byte("type"), Value: []byte(proposal.Type.String())},
		},
	}
	return res, nil
}

// validate builds the proposal from the message, checking the
// signer is a participant and the payload against the current
// registry.
func (h CreateProposalHandler) validate(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*Proposal, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}

	vault, err := h.vaults.GetVault(db)
	if err != nil {
		return nil, err
	}
	if vault == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "vault not initialized")
	}

	proposer := x.MainSigner(ctx, h.auth)
	if proposer == nil || !vault.IsParticipant(proposer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "proposer is not a participant")
	}

	proposal := &Proposal{
		Proposer:  proposer,
		Approvals: []covault.Address{proposer},
		Status:    ProposalStatus_Pending,
	}
	switch msg := msg.(type) {
	case *ProposeTransferMsg:
		if err := msg.Validate(); err != nil {
			return nil, err
		}
		proposal.Type = ProposalType_Transfer
		proposal.Target = msg.Destination
		proposal.Amount = msg.Amount
	case *ProposeAddParticipantMsg:
		if err := msg.Validate(); err != nil {
			return nil, err
		}
		if vault.IsParticipant(msg.Participant) {
			return nil, errors.Wrapf(errors.ErrDuplicate, "participant %s", msg.Participant)
		}
		proposal.Type = ProposalType_AddParticipant
		proposal.Target = msg.Participant
	case *ProposeRemoveParticipantMsg:
		if err := msg.Validate(); err != nil {
			return nil, err
		}
		// optimistic check, repeated at execution time since
		// membership may shift in between
		if err := checkRemoval(vault, msg.Participant); err != nil {
			return nil, err
		}
		proposal.Type = ProposalType_RemoveParticipant
		proposal.Target = msg.Participant
	case *ProposeChangeThresholdMsg:
		if err := msg.Validate(); err != nil {
			return nil, err
		}
		if err := checkThreshold(vault, msg.NewThreshold); err != nil {
			return nil, err
		}
		proposal.Type = ProposalType_ChangeThreshold
		proposal.NewThreshold = msg.NewThreshold
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unknown message %T", msg)
	}
	return proposal, nil
}

// checkRemoval verifies that removing addr keeps a non-empty
// registry with a reachable threshold.
func checkRemoval(v *Vault, addr covault.Address) error {
	if !v.IsParticipant(addr) {
		return errors.Wrapf(errors.ErrNotFound, "participant %s", addr)
	}
	if len(v.Participants)-1 < 1 {
		return errors.Wrap(errors.ErrState, "cannot remove last participant")
	}
	if int(v.Threshold) > len(v.Participants)-1 {
		return errors.Wrapf(errors.ErrState,
			"threshold %d unreachable with %d participants", v.Threshold, len(v.Participants)-1)
	}
	return nil
}

// checkThreshold bounds the new threshold against the current
// participant count.
func checkThreshold(v *Vault, threshold uint32) error {
	if threshold < 1 || int(threshold) > len(v.Participants) {
		return errors.Wrapf(errors.ErrInput,
			"threshold %d with %d participants", threshold, len(v.Participants))
	}
	return nil
}

//--- ApprovalHandler

// ApprovalHandler records or withdraws one participant's
// approval on a Pending proposal.
type ApprovalHandler struct {
	auth      x.Authenticator
	vaults    VaultBucket
	proposals ProposalBucket
	// approve records an approval when true and revokes one
	// otherwise
	approve bool
}

var _ covault.Handler = ApprovalHandler{}

// Check verifies the vote could be recorded
func (h ApprovalHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &covault.CheckResult{GasAllocated: approvalCost}, nil
}

// Deliver updates the proposal's approval set
func (h ApprovalHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.DeliverResult, error) {
	id, proposal, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if h.approve {
		proposal.Approvals = append(proposal.Approvals, signer)
	} else {
		proposal.strike(signer)
	}
	if err := h.proposals.Update(db, id, proposal); err != nil {
		return nil, err
	}

	res := &covault.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte("proposal"), Value: id},
			{Key: []byte("participant"), Value: []byte(signer.String())},
		},
	}
	return res, nil
}

func (h ApprovalHandler) validate(ctx covault.Context, db covault.KVStore, tx covault.Tx) ([]byte, *Proposal, covault.Address, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot get message")
	}

	var id []byte
	switch msg := msg.(type) {
	case *ApproveMsg:
		if err := msg.Validate(); err != nil {
			return nil, nil, nil, err
		}
		id = msg.ProposalId
	case *RevokeApprovalMsg:
		if err := msg.Validate(); err != nil {
			return nil, nil, nil, err
		}
		id = msg.ProposalId
	default:
		return nil, nil, nil, errors.Wrapf(errors.ErrMsg, "unknown message %T", msg)
	}

	vault, err := h.vaults.GetVault(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if vault == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrNotFound, "vault not initialized")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil || !vault.IsParticipant(signer) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "signer is not a participant")
	}

	proposal, err := h.proposals.GetProposal(db, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if proposal == nil {
		return nil, nil, nil, errors.Wrapf(errors.ErrNotFound, "proposal %X", id)
	}
	if proposal.Status != ProposalStatus_Pending {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "proposal %X is %s", id, proposal.Status)
	}

	if h.approve {
		if proposal.HasApproval(signer) {
			return nil, nil, nil, errors.Wrapf(errors.ErrDuplicate, "approval of %s", signer)
		}
	} else {
		if !proposal.HasApproval(signer) {
			return nil, nil, nil, errors.Wrapf(errors.ErrState, "no approval of %s to revoke", signer)
		}
	}
	return id, proposal, signer, nil
}

//--- ExecuteHandler

// ExecuteHandler applies a Pending proposal once it collected
// threshold many approvals.
type ExecuteHandler struct {
	auth      x.Authenticator
	vaults    VaultBucket
	proposals ProposalBucket
	ctrl      cash.Controller
}

var _ covault.Handler = ExecuteHandler{}

// Check verifies the proposal is ready to be executed
func (h ExecuteHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &covault.CheckResult{GasAllocated: executeCost}, nil
}

// Deliver marks the proposal Executed and applies its effect.
// The terminal state is written before any funds move, so a
// reentrant call observes an Executed proposal and is rejected
// by the ordinary state check. Any error returned here rolls
// back the whole delivery, including the Executed flag.
func (h ExecuteHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.DeliverResult, error) {
	id, proposal, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	proposal.Status = ProposalStatus_Executed
	if err := h.proposals.Update(db, id, proposal); err != nil {
		return nil, err
	}

	tags := []common.KVPair{
		{Key: []byte("proposal"), Value: id},
		{Key: []byte("type"), Value: []byte(proposal.Type.String())},
	}

	switch proposal.Type {
	case ProposalType_Transfer:
		err := h.ctrl.MoveCoins(db, CustodyAddress(), proposal.Target, *proposal.Amount)
		if err != nil {
			return nil, err
		}
		tags = append(tags,
			common.KVPair{Key: []byte("destination"), Value: []byte(proposal.Target.String())},
			common.KVPair{Key: []byte("amount"), Value: []byte(proposal.Amount.String())},
		)
	case ProposalType_AddParticipant:
		if vault.IsParticipant(proposal.Target) {
			return nil, errors.Wrapf(errors.ErrDuplicate, "participant %s", proposal.Target)
		}
		vault.Participants = append(vault.Participants, proposal.Target)
		if err := h.vaults.SaveVault(db, vault); err != nil {
			return nil, err
		}
		tags = append(tags, common.KVPair{Key: []byte("participant"), Value: []byte(proposal.Target.String())})
	case ProposalType_RemoveParticipant:
		if err := checkRemoval(vault, proposal.Target); err != nil {
			return nil, err
		}
		for i, p := range vault.Participants {
			if p.Equals(proposal.Target) {
				vault.Participants = append(vault.Participants[:i], vault.Participants[i+1:]...)
				break
			}
		}
		if err := h.vaults.SaveVault(db, vault); err != nil {
			return nil, err
		}
		if err := h.sweepApprovals(db, proposal.Target); err != nil {
			return nil, err
		}
		tags = append(tags, common.KVPair{Key: []byte("participant"), Value: []byte(proposal.Target.String())})
	case ProposalType_ChangeThreshold:
		if err := checkThreshold(vault, proposal.NewThreshold); err != nil {
			return nil, err
		}
		vault.Threshold = proposal.NewThreshold
		if err := h.vaults.SaveVault(db, vault); err != nil {
			return nil, err
		}
		tags = append(tags, common.KVPair{Key: []byte("threshold"), Value: []byte(strconv.FormatUint(uint64(proposal.NewThreshold), 10))})
	default:
		return nil, errors.Wrapf(errors.ErrType, "proposal type %s", proposal.Type)
	}

	return &covault.DeliverResult{Data: id, Tags: tags}, nil
}

func (h ExecuteHandler) validate(ctx covault.Context, db covault.KVStore, tx covault.Tx) ([]byte, *Proposal, *Vault, error) {
	var msg ExecuteProposalMsg
	if err := covault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	vault, err := h.vaults.GetVault(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if vault == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrNotFound, "vault not initialized")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil || !vault.IsParticipant(signer) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "signer is not a participant")
	}

	proposal, err := h.proposals.GetProposal(db, msg.ProposalId)
	if err != nil {
		return nil, nil, nil, err
	}
	if proposal == nil {
		return nil, nil, nil, errors.Wrapf(errors.ErrNotFound, "proposal %X", msg.ProposalId)
	}
	if proposal.Status != ProposalStatus_Pending {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "proposal %X is %s", msg.ProposalId, proposal.Status)
	}
	if len(proposal.Approvals) < int(vault.Threshold) {
		return nil, nil, nil, errors.Wrapf(ErrInsufficientApprovals,
			"have %d of %d", len(proposal.Approvals), vault.Threshold)
	}
	return msg.ProposalId, proposal, vault, nil
}

// sweepApprovals voids every approval the removed participant
// holds on still Pending proposals. It walks all ids the
// sequence ever handed out.
func (h ExecuteHandler) sweepApprovals(db covault.KVStore, removed covault.Address) error {
	total := h.proposals.Issued(db)
	for i := int64(0); i < total; i++ {
		id := orm.EncodeSequence(i)
		proposal, err := h.proposals.GetProposal(db, id)
		if err != nil {
			return err
		}
		if proposal == nil || proposal.Status != ProposalStatus_Pending {
			continue
		}
		if !proposal.strike(removed) {
			continue
		}
		if err := h.proposals.Update(db, id, proposal); err != nil {
			return err
		}
	}
	return nil
}

//--- DepositHandler

// DepositHandler credits the custody account. Anyone may
// deposit, no participant check applies.
type DepositHandler struct {
	auth x.Authenticator
	ctrl cash.Controller
}

var _ covault.Handler = DepositHandler{}

// Check verifies the deposit amount is sensible
func (h DepositHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &covault.CheckResult{GasAllocated: depositCost}, nil
}

// Deliver issues the deposited coins to the custody account
func (h DepositHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.ctrl.IssueCoins(db, CustodyAddress(), *msg.Amount); err != nil {
		return nil, err
	}
	balance, err := h.ctrl.Balance(db, CustodyAddress())
	if err != nil {
		return nil, err
	}

	sender := "(anonymous)"
	if signer := x.MainSigner(ctx, h.auth); signer != nil {
		sender = signer.String()
	}
	res := &covault.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte("sender"), Value: []byte(sender)},
			{Key: []byte("amount"), Value: []byte(msg.Amount.String())},
			{Key: []byte("balance"), Value: []byte(balance.String())},
		},
	}
	return res, nil
}

func (h DepositHandler) validate(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*DepositMsg, error) {
	var msg DepositMsg
	if err := covault.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return &msg, nil
}
