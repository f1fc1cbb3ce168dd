package server

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	cfg "github.com/tendermint/tendermint/config"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/privval"
	tmtypes "github.com/tendermint/tendermint/types"
	tmtime "github.com/tendermint/tendermint/types/time"

	"github.com/covault/covault/errors"
)

// GenOptions can parse command-line args to generate a default
// app_state for the genesis file. This is application-specific.
type GenOptions func(args []string) (json.RawMessage, error)

// InitCmd will initialize all files for tendermint under the home
// directory, along with a genesis file carrying the app_state
// produced by the given GenOptions.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	config := cfg.DefaultConfig()
	config.SetRoot(home)
	cfg.EnsureRoot(home)

	pv, err := initPrivValidator(config, logger)
	if err != nil {
		return err
	}
	if err := initGenesisFile(config, logger, pv); err != nil {
		return err
	}

	// no app_state requested, leave like tendermint
	if gen == nil {
		return nil
	}

	options, err := gen(args)
	if err != nil {
		return err
	}
	return addGenesisOptions(config.GenesisFile(), options)
}

func initPrivValidator(config *cfg.Config, logger log.Logger) (*privval.FilePV, error) {
	keyFile := config.PrivValidatorKeyFile()
	stateFile := config.PrivValidatorStateFile()

	if fileExists(keyFile) {
		logger.Info("Found private validator", "path", keyFile)
		return privval.LoadFilePV(keyFile, stateFile), nil
	}

	pv := privval.GenFilePV(keyFile, stateFile)
	pv.Save()
	logger.Info("Generated private validator", "path", keyFile)
	return pv, nil
}

func initGenesisFile(config *cfg.Config, logger log.Logger, pv *privval.FilePV) error {
	genFile := config.GenesisFile()
	if fileExists(genFile) {
		logger.Info("Found genesis file", "path", genFile)
		return nil
	}

	genDoc := tmtypes.GenesisDoc{
		GenesisTime: tmtime.Now(),
		ChainID:     fmt.Sprintf("test-chain-%v", cmn.RandStr(6)),
		Validators: []tmtypes.GenesisValidator{{
			PubKey: pv.GetPubKey(),
			Power:  10,
		}},
	}
	if err := genDoc.SaveAs(genFile); err != nil {
		return errors.Wrap(err, "save genesis file")
	}
	logger.Info("Generated genesis file", "path", genFile)
	return nil
}

func fileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one key.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "read genesis file")
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrap(err, "parse genesis file")
	}

	doc["app_state"] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serialize genesis file")
	}

	return ioutil.WriteFile(filename, out, 0600)
}
