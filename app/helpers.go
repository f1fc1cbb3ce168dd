package app

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/covault/covault"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store"
)

// ABCIStore exposes the abci.Query interface as a ReadOnlyKVStore,
// so buckets can reuse their key and parse logic on top of a
// running application.
type ABCIStore struct {
	app abci.Application
}

var _ covault.ReadOnlyKVStore = (*ABCIStore)(nil)

func NewABCIStore(app abci.Application) *ABCIStore {
	return &ABCIStore{app: app}
}

// Get will query for exactly one value over the abci store.
func (a *ABCIStore) Get(key []byte) []byte {
	query := a.app.Query(abci.RequestQuery{
		Path: "/",
		Data: key,
	})
	// the abci interface cannot return errors
	if query.Code != 0 {
		panic(query.Log)
	}
	var value ResultSet
	if err := value.Unmarshal(query.Value); err != nil {
		panic(errors.Wrap(err, "unmarshal result set"))
	}
	if len(value.Results) == 0 {
		return nil
	}
	return value.Results[0]
}

// Has returns true if the given key is in the abci app store
func (a *ABCIStore) Has(key []byte) bool {
	return len(a.Get(key)) > 0
}

// Iterator attempts to do a range iteration over the store.
// Only iterating the entire range is supported over abci queries.
func (a *ABCIStore) Iterator(start, end []byte) covault.Iterator {
	if start != nil || end != nil {
		panic("iterator only implemented for entire range")
	}

	query := a.app.Query(abci.RequestQuery{
		Path: "/?prefix",
		Data: nil,
	})
	if query.Code != 0 {
		panic(query.Log)
	}
	models, err := toModels(query.Key, query.Value)
	if err != nil {
		panic(errors.Wrap(err, "cannot convert to model"))
	}

	return store.NewSliceIterator(models)
}

func (a *ABCIStore) ReverseIterator(start, end []byte) covault.Iterator {
	panic("not implemented")
}

func toModels(keys, values []byte) ([]covault.Model, error) {
	var k, v ResultSet
	if err := k.Unmarshal(keys); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal keys")
	}
	if err := v.Unmarshal(values); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal values")
	}
	return JoinResults(&k, &v)
}
