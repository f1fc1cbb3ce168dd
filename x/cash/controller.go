package cash

import (
	"github.com/covault/covault"
	"github.com/covault/covault/coin"
	"github.com/covault/covault/errors"
)

// CoinMover moves coins between the accounts
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to
	// the destination
	MoveCoins(store covault.KVStore, src covault.Address,
		dest covault.Address, amount coin.Coin) error
}

// CoinMinter creates new coins out of thin air
type CoinMinter interface {
	// IssueCoins increase the number of funds on given account.
	IssueCoins(store covault.KVStore, dest covault.Address,
		amount coin.Coin) error
}

// Controller is the functionality needed by the vault handlers.
// BaseController is the standard implementation.
type Controller interface {
	CoinMover
	CoinMinter

	// Balance returns the amount of funds stored on the given account.
	Balance(covault.ReadOnlyKVStore, covault.Address) (coin.Coins, error)
}

// BaseController implements Controller on top of a wallet bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of funds stored on the given account.
func (c BaseController) Balance(store covault.ReadOnlyKVStore, src covault.Address) (coin.Coins, error) {
	wallet, err := c.bucket.Get(store, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get wallet")
	}
	if wallet == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "account %s", src)
	}
	return wallet.Coins(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(store covault.KVStore,
	src covault.Address, dest covault.Address, amount coin.Coin) error {

	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %v", &amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(ErrInsufficientFunds, "empty account %s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "requested %v", &amount)
	}

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := c.bucket.Save(store, sender); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(store covault.KVStore,
	dest covault.Address, amount coin.Coin) error {

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}
