package vault

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault"
	"github.com/covault/covault/coin"
	"github.com/covault/covault/covtest"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store"
	"github.com/covault/covault/x/cash"
)

type fixture struct {
	t         *testing.T
	db        store.CacheableKVStore
	auth      *covtest.CtxAuth
	ctrl      cash.Controller
	vaults    VaultBucket
	proposals ProposalBucket

	create  CreateProposalHandler
	approve ApprovalHandler
	revoke  ApprovalHandler
	execute ExecuteHandler
	deposit DepositHandler

	p1, p2, p3 covault.Address
}

func newFixture(t *testing.T, threshold uint32) *fixture {
	f := &fixture{
		t:         t,
		db:        store.MemStore(),
		auth:      &covtest.CtxAuth{Key: "auth"},
		ctrl:      cash.NewController(cash.NewBucket()),
		vaults:    NewVaultBucket(),
		proposals: NewProposalBucket(),
		p1:        covtest.RandAddr(),
		p2:        covtest.RandAddr(),
		p3:        covtest.RandAddr(),
	}
	f.create = CreateProposalHandler{auth: f.auth, vaults: f.vaults, proposals: f.proposals}
	f.approve = ApprovalHandler{auth: f.auth, vaults: f.vaults, proposals: f.proposals, approve: true}
	f.revoke = ApprovalHandler{auth: f.auth, vaults: f.vaults, proposals: f.proposals, approve: false}
	f.execute = ExecuteHandler{auth: f.auth, vaults: f.vaults, proposals: f.proposals, ctrl: f.ctrl}
	f.deposit = DepositHandler{auth: f.auth, ctrl: f.ctrl}

	vault := &Vault{
		Participants: []covault.Address{f.p1, f.p2, f.p3},
		Threshold:    threshold,
	}
	require.NoError(t, f.vaults.SaveVault(f.db, vault))
	return f
}

// as returns a context authenticating the given address
func (f *fixture) as(addr covault.Address) covault.Context {
	return f.auth.SetPermissions(context.Background(), addr)
}

// propose delivers the message as signer and returns the new id
func (f *fixture) propose(signer covault.Address, msg covault.Msg) []byte {
	f.t.Helper()
	res, err := f.create.Deliver(f.as(signer), f.db, &covtest.Tx{Msg: msg})
	require.NoError(f.t, err)
	return res.Data
}

// fund credits the custody account
func (f *fixture) fund(amount coin.Coin) {
	f.t.Helper()
	require.NoError(f.t, f.ctrl.IssueCoins(f.db, CustodyAddress(), amount))
}

// proposal loads one proposal that must exist
func (f *fixture) proposal(id []byte) *Proposal {
	f.t.Helper()
	p, err := f.proposals.GetProposal(f.db, id)
	require.NoError(f.t, err)
	require.NotNil(f.t, p)
	return p
}

func TestCreateProposal(t *testing.T) {
	f := newFixture(t, 2)

	dest := covtest.RandAddr()
	id := f.propose(f.p1, &ProposeTransferMsg{
		Destination: dest,
		Amount:      coin.NewCoinp(5, 0, "COV"),
	})
	assert.Equal(t, covtest.SequenceID(0), id)

	p := f.proposal(id)
	assert.Equal(t, ProposalType_Transfer, p.Type)
	assert.Equal(t, ProposalStatus_Pending, p.Status)
	assert.Equal(t, dest, p.Target)
	// the proposer approval is recorded on creation
	assert.Equal(t, []covault.Address{f.p1}, p.Approvals)

	// ids are sequential
	id2 := f.propose(f.p2, &ProposeAddParticipantMsg{Participant: covtest.RandAddr()})
	assert.Equal(t, covtest.SequenceID(1), id2)
}

func TestCreateProposalAuthorization(t *testing.T) {
	f := newFixture(t, 2)

	msg := &ProposeTransferMsg{
		Destination: covtest.RandAddr(),
		Amount:      coin.NewCoinp(5, 0, "COV"),
	}

	// an outsider cannot propose
	_, err := f.create.Deliver(f.as(covtest.RandAddr()), f.db, &covtest.Tx{Msg: msg})
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// no signer at all
	_, err = f.create.Deliver(context.Background(), f.db, &covtest.Tx{Msg: msg})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestCreateProposalValidation(t *testing.T) {
	f := newFixture(t, 2)

	cases := map[string]struct {
		msg     covault.Msg
		wantErr *errors.Error
	}{
		"transfer without amount": {
			msg:     &ProposeTransferMsg{Destination: covtest.RandAddr()},
			wantErr: errors.ErrEmpty,
		},
		"transfer of nothing": {
			msg: &ProposeTransferMsg{
				Destination: covtest.RandAddr(),
				Amount:      coin.NewCoinp(0, 0, "COV"),
			},
			wantErr: errors.ErrAmount,
		},
		"transfer to a malformed destination": {
			msg: &ProposeTransferMsg{
				Destination: []byte{0x1},
				Amount:      coin.NewCoinp(5, 0, "COV"),
			},
			wantErr: errors.ErrInput,
		},
		"add an existing participant": {
			msg:     &ProposeAddParticipantMsg{Participant: f.p2},
			wantErr: errors.ErrDuplicate,
		},
		"remove an outsider": {
			msg:     &ProposeRemoveParticipantMsg{Participant: covtest.RandAddr()},
			wantErr: errors.ErrNotFound,
		},
		"threshold of zero": {
			msg:     &ProposeChangeThresholdMsg{NewThreshold: 0},
			wantErr: errors.ErrInput,
		},
		"threshold above the participant count": {
			msg:     &ProposeChangeThresholdMsg{NewThreshold: 4},
			wantErr: errors.ErrInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.create.Deliver(f.as(f.p1), f.db, &covtest.Tx{Msg: tc.msg})
			assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
		})
	}
}

func TestCreateRemoveProposalWithFullThreshold(t *testing.T) {
	// with threshold 3 of 3 no participant can be removed
	f := newFixture(t, 3)
	_, err := f.create.Deliver(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &ProposeRemoveParticipantMsg{Participant: f.p3},
	})
	assert.True(t, errors.ErrState.Is(err))
}

func TestApproveAndRevoke(t *testing.T) {
	f := newFixture(t, 2)
	id := f.propose(f.p1, &ProposeTransferMsg{
		Destination: covtest.RandAddr(),
		Amount:      coin.NewCoinp(5, 0, "COV"),
	})

	// approving a missing proposal fails
	_, err := f.approve.Deliver(f.as(f.p2), f.db, &covtest.Tx{
		Msg: &ApproveMsg{ProposalId: covtest.SequenceID(42)},
	})
	assert.True(t, errors.ErrNotFound.Is(err))

	// an outsider cannot vote
	_, err = f.approve.Deliver(f.as(covtest.RandAddr()), f.db, &covtest.Tx{
		Msg: &ApproveMsg{ProposalId: id},
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// revoking without a prior approval fails
	_, err = f.revoke.Deliver(f.as(f.p2), f.db, &covtest.Tx{
		Msg: &RevokeApprovalMsg{ProposalId: id},
	})
	assert.True(t, errors.ErrState.Is(err))

	before := f.proposal(id)

	// a regular approval is recorded
	_, err = f.approve.Deliver(f.as(f.p2), f.db, &covtest.Tx{
		Msg: &ApproveMsg{ProposalId: id},
	})
	require.NoError(t, err)
	assert.Equal(t, []covault.Address{f.p1, f.p2}, f.proposal(id).Approvals)

	// approving twice fails
	_, err = f.approve.Deliver(f.as(f.p2), f.db, &covtest.Tx{
		Msg: &ApproveMsg{ProposalId: id},
	})
	assert.True(t, errors.ErrDuplicate.Is(err))

	// revoking returns the proposal to its prior state
	_, err = f.revoke.Deliver(f.as(f.p2), f.db, &covtest.Tx{
		Msg: &RevokeApprovalMsg{ProposalId: id},
	})
	require.NoError(t, err)
	assert.Equal(t, before, f.proposal(id))
}

func TestTransferLifecycle(t *testing.T) {
	f := newFixture(t, 2)
	f.fund(coin.NewCoin(100, 0, "COV"))

	dest := covtest.RandAddr()
	id := f.propose(f.p1, &ProposeTransferMsg{
		Destination: dest,
		Amount:      coin.NewCoinp(5, 0, "COV"),
	})

	// one approval is not enough for threshold 2
	_, err := f.execute.Deliver(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &ExecuteProposalMsg{ProposalId: id},
	})
	assert.True(t, ErrInsufficientApprovals.Is(err))

	_, err = f.approve.Deliver(f.as(f.p2), f.db, &covtest.Tx{
		Msg: &ApproveMsg{ProposalId: id},
	})
	require.NoError(t, err)

	// any participant may trigger execution
	_, err = f.execute.Deliver(f.as(f.p3), f.db, &covtest.Tx{
		Msg: &ExecuteProposalMsg{ProposalId: id},
	})
	require.NoError(t, err)

	assert.Equal(t, ProposalStatus_Executed, f.proposal(id).Status)

	custody, err := f.ctrl.Balance(f.db, CustodyAddress())
	require.NoError(t, err)
	assert.True(t, custody.Contains(coin.NewCoin(95, 0, "COV")))

	received, err := f.ctrl.Balance(f.db, dest)
	require.NoError(t, err)
	assert.True(t, received.Contains(coin.NewCoin(5, 0, "COV")))

	// execution fires exactly once
	_, err = f.execute.Deliver(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &ExecuteProposalMsg{ProposalId: id},
	})
	assert.True(t, errors.ErrState.Is(err))

	received, err = f.ctrl.Balance(f.db, dest)
	require.NoError(t, err)
	assert.True(t, received.Contains(coin.NewCoin(5, 0, "COV")))
	assert.False(t, received.Contains(coin.NewCoin(10, 0, "COV")))
}

func TestExecuteAuthorization(t *testing.T) {
	f := newFixture(t, 1)
	f.fund(coin.NewCoin(10, 0, "COV"))
	id := f.propose(f.p1, &ProposeTransferMsg{
		Destination: covtest.RandAddr(),
		Amount:      coin.NewCoinp(5, 0, "COV"),
	})

	_, err := f.execute.Deliver(f.as(covtest.RandAddr()), f.db, &covtest.Tx{
		Msg: &ExecuteProposalMsg{ProposalId: id},
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestFailedExecutionLeavesNoTrace(t *testing.T) {
	f := newFixture(t, 1)
	// no funds in custody, the transfer must fail
	id := f.propose(f.p1, &ProposeTransferMsg{
		Destination: covtest.RandAddr(),
		Amount:      coin.NewCoinp(5, 0, "COV"),
	})

	// deliveries run on a savepoint that is discarded on error
	cache := f.db.CacheWrap()
	_, err := f.execute.Deliver(f.as(f.p1), cache, &covtest.Tx{
		Msg: &ExecuteProposalMsg{ProposalId: id},
	})
	assert.True(t, cash.ErrInsufficientFunds.Is(err))
	cache.Discard()

	// the tentative Executed flag was rolled back with the rest
	assert.Equal(t, ProposalStatus_Pending, f.proposal(id).Status)
}

func TestExecuteAddParticipant(t *testing.T) {
	f := newFixture(t, 2)
	joiner := covtest.RandAddr()

	id := f.propose(f.p1, &ProposeAddParticipantMsg{Participant: joiner})
	_, err := f.approve.Deliver(f.as(f.p2), f.db, &covtest.Tx{
		Msg: &ApproveMsg{ProposalId: id},
	})
	require.NoError(t, err)
	_, err = f.execute.Deliver(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &ExecuteProposalMsg{ProposalId: id},
	})
	require.NoError(t, err)

	vault, err := f.vaults.GetVault(f.db)
	require.NoError(t, err)
	assert.Equal(t, 4, len(vault.Participants))
	assert.True(t, vault.IsParticipant(joiner))

	// the new participant has full proposal rights
	f.propose(joiner, &ProposeChangeThresholdMsg{NewThreshold: 3})
}

func TestExecuteRemoveParticipantSweep(t *testing.T) {
	f := newFixture(t, 2)
	f.fund(coin.NewCoin(100, 0, "COV"))

	// a pending transfer approved by p3 and p1
	transferID := f.propose(f.p3, &ProposeTransferMsg{
		Destination: covtest.RandAddr(),
		Amount:      coin.NewCoinp(5, 0, "COV"),
	})
	_, err := f.approve.Deliver(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &ApproveMsg{ProposalId: transferID},
	})
	require.NoError(t, err)

	// a pending proposal p3 never touched
	untouchedID := f.propose(f.p2, &ProposeChangeThresholdMsg{NewThreshold: 1})

	// remove p3
	removeID := f.propose(f.p1, &ProposeRemoveParticipantMsg{Participant: f.p3})
	_, err = f.approve.Deliver(f.as(f.p2), f.db, &covtest.Tx{
		Msg: &ApproveMsg{ProposalId: removeID},
	})
	require.NoError(t, err)
	_, err = f.execute.Deliver(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &ExecuteProposalMsg{ProposalId: removeID},
	})
	require.NoError(t, err)

	vault, err := f.vaults.GetVault(f.db)
	require.NoError(t, err)
	assert.False(t, vault.IsParticipant(f.p3))
	assert.Equal(t, 2, len(vault.Participants))

	// p3's approval on the pending transfer is void, p1's remains
	assert.Equal(t, []covault.Address{f.p1}, f.proposal(transferID).Approvals)
	// proposals p3 never approved are untouched
	assert.Equal(t, []covault.Address{f.p2}, f.proposal(untouchedID).Approvals)

	// p3 lost all rights
	_, err = f.approve.Deliver(f.as(f.p3), f.db, &covtest.Tx{
		Msg: &ApproveMsg{ProposalId: transferID},
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestExecuteChangeThreshold(t *testing.T) {
	f := newFixture(t, 2)

	id := f.propose(f.p1, &ProposeChangeThresholdMsg{NewThreshold: 1})
	_, err := f.approve.Deliver(f.as(f.p2), f.db, &covtest.Tx{
		Msg: &ApproveMsg{ProposalId: id},
	})
	require.NoError(t, err)
	_, err = f.execute.Deliver(f.as(f.p3), f.db, &covtest.Tx{
		Msg: &ExecuteProposalMsg{ProposalId: id},
	})
	require.NoError(t, err)

	vault, err := f.vaults.GetVault(f.db)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), vault.Threshold)

	// with threshold 1 a single proposer can execute alone
	f.fund(coin.NewCoin(10, 0, "COV"))
	transferID := f.propose(f.p1, &ProposeTransferMsg{
		Destination: covtest.RandAddr(),
		Amount:      coin.NewCoinp(1, 0, "COV"),
	})
	_, err = f.execute.Deliver(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &ExecuteProposalMsg{ProposalId: transferID},
	})
	require.NoError(t, err)
}

func TestExecuteRevalidatesMembership(t *testing.T) {
	// two proposals to remove the same participant can both be
	// created, but only the first execution passes
	f := newFixture(t, 1)

	first := f.propose(f.p1, &ProposeRemoveParticipantMsg{Participant: f.p3})
	second := f.propose(f.p2, &ProposeRemoveParticipantMsg{Participant: f.p3})

	_, err := f.execute.Deliver(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &ExecuteProposalMsg{ProposalId: first},
	})
	require.NoError(t, err)

	// p3 is gone, the second removal fails at execution time
	_, err = f.execute.Deliver(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &ExecuteProposalMsg{ProposalId: second},
	})
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestDeposit(t *testing.T) {
	f := newFixture(t, 2)

	// anyone can deposit, no participant check applies
	outsider := covtest.RandAddr()
	res, err := f.deposit.Deliver(f.as(outsider), f.db, &covtest.Tx{
		Msg: &DepositMsg{Amount: coin.NewCoinp(10, 0, "COV")},
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	balance, err := f.ctrl.Balance(f.db, CustodyAddress())
	require.NoError(t, err)
	assert.True(t, balance.Contains(coin.NewCoin(10, 0, "COV")))

	// deposits accumulate
	_, err = f.deposit.Deliver(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &DepositMsg{Amount: coin.NewCoinp(2, 0, "COV")},
	})
	require.NoError(t, err)
	balance, err = f.ctrl.Balance(f.db, CustodyAddress())
	require.NoError(t, err)
	assert.True(t, balance.Contains(coin.NewCoin(12, 0, "COV")))

	// a non-positive deposit is rejected
	_, err = f.deposit.Deliver(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &DepositMsg{Amount: coin.NewCoinp(-1, 0, "COV")},
	})
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestCheckAllocatesGas(t *testing.T) {
	f := newFixture(t, 2)
	f.fund(coin.NewCoin(10, 0, "COV"))

	res, err := f.create.Check(f.as(f.p1), f.db, &covtest.Tx{
		Msg: &ProposeTransferMsg{
			Destination: covtest.RandAddr(),
			Amount:      coin.NewCoinp(5, 0, "COV"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, proposalCost, res.GasAllocated)

	// check must not create the proposal
	p, err := f.proposals.GetProposal(f.db, covtest.SequenceID(0))
	require.NoError(t, err)
	assert.Nil(t, p)
}
