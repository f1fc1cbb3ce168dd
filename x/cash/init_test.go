package cash

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault"
	"github.com/covault/covault/coin"
	"github.com/covault/covault/covtest"
	"github.com/covault/covault/store"
)

func TestInitFromGenesis(t *testing.T) {
	addr := covtest.RandAddr()
	raw := fmt.Sprintf(`{
		"cash": [
			{
				"address": "%s",
				"coins": [
					{"whole": 50, "ticker": "COV"},
					{"whole": 1, "fractional": 20, "ticker": "ETH"}
				]
			}
		]
	}`, addr)

	var opts covault.Options
	require.NoError(t, json.Unmarshal([]byte(raw), &opts))

	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	wallet, err := NewBucket().Get(db, addr)
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.True(t, wallet.Coins().Contains(coin.NewCoin(50, 0, "COV")))
	assert.True(t, wallet.Coins().Contains(coin.NewCoin(1, 20, "ETH")))
}

func TestInitBadAddress(t *testing.T) {
	raw := `{"cash": [{"address": "0011", "coins": []}]}`
	var opts covault.Options
	require.NoError(t, json.Unmarshal([]byte(raw), &opts))

	db := store.MemStore()
	assert.Error(t, Initializer{}.FromGenesis(opts, db))
}
