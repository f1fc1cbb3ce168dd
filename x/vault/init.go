package vault

import (
	"github.com/covault/covault"
)

const optKey = "vault"

// GenesisVault is used to parse the json from genesis file
type GenesisVault struct {
	Participants []covault.Address `json:"participants"`
	Threshold    uint32            `json:"threshold"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ covault.Initializer = Initializer{}

// FromGenesis will parse the initial participant set and
// threshold from genesis and save it to the database
func (Initializer) FromGenesis(opts covault.Options, kv covault.KVStore) error {
	var gen GenesisVault
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	if len(gen.Participants) == 0 && gen.Threshold == 0 {
		return nil
	}
	vault := &Vault{
		Participants: gen.Participants,
		Threshold:    gen.Threshold,
	}
	return NewVaultBucket().SaveVault(kv, vault)
}
