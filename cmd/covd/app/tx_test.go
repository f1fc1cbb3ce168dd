package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault/coin"
	"github.com/covault/covault/covtest"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/x/vault"
)

func TestTxDecoder(t *testing.T) {
	signer := covtest.RandAddr()
	tx := &Tx{
		Signer: signer,
		ProposeTransferMsg: &vault.ProposeTransferMsg{
			Destination: covtest.RandAddr(),
			Amount:      coin.NewCoinp(7, 0, "COV"),
		},
	}
	bz, err := tx.Marshal()
	require.NoError(t, err)

	parsed, err := TxDecoder(bz)
	require.NoError(t, err)
	assert.Equal(t, signer, parsed.(*Tx).GetSigner())

	msg, err := parsed.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, "vault/propose_transfer", msg.Path())
}

func TestTxGetMsg(t *testing.T) {
	// no message
	tx := &Tx{Signer: covtest.RandAddr()}
	_, err := tx.GetMsg()
	assert.True(t, errors.ErrInput.Is(err))

	// multiple messages
	tx = &Tx{
		Signer:     covtest.RandAddr(),
		ApproveMsg: &vault.ApproveMsg{ProposalId: covtest.SequenceID(0)},
		DepositMsg: &vault.DepositMsg{Amount: coin.NewCoinp(1, 0, "COV")},
	}
	_, err = tx.GetMsg()
	assert.True(t, errors.ErrInput.Is(err))

	// exactly one
	tx = &Tx{
		Signer:     covtest.RandAddr(),
		ApproveMsg: &vault.ApproveMsg{ProposalId: covtest.SequenceID(0)},
	}
	msg, err := tx.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, "vault/approve", msg.Path())
}
