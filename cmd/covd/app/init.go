package app

import (
	"encoding/hex"
	"encoding/json"
	"path/filepath"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/covault/covault"
	"github.com/covault/covault/app"
	"github.com/covault/covault/commands/server"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/x/cash"
	"github.com/covault/covault/x/vault"
)

// GenInitOptions produces the app_state for a fresh chain. Each
// argument is one hex encoded participant address. The approval
// threshold defaults to a simple majority of the participants.
func GenInitOptions(args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(errors.ErrInput, "at least one participant address required")
	}

	participants := make([]covault.Address, len(args))
	for i, arg := range args {
		addr, err := hex.DecodeString(arg)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "address %q is not valid hex", arg)
		}
		participants[i] = covault.Address(addr)
		if err := participants[i].Validate(); err != nil {
			return nil, err
		}
	}
	threshold := uint32(len(participants)/2 + 1)

	type dict map[string]interface{}
	return json.Marshal(dict{
		"vault": vault.GenesisVault{
			Participants: participants,
			Threshold:    threshold,
		},
	})
}

// GenerateApp is used to create a stub for the server start command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}

	stack := Stack()
	application, err := Application("covault", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		cash.Initializer{},
		vault.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}
