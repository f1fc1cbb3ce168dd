package vault

import (
	"github.com/covault/covault"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/orm"
)

const (
	// VaultBucketName stores the participant registry
	VaultBucketName = "vault"
	// ProposalBucketName stores every proposal ever created
	ProposalBucketName = "proposal"
)

// registryKey is the fixed key of the single registry record
var registryKey = []byte("registry")

// CustodyCondition guards the pooled funds.
func CustodyCondition() covault.Condition {
	return covault.NewCondition("vault", "custody", []byte("pool"))
}

// CustodyAddress is the account holding all deposited funds.
func CustodyAddress() covault.Address {
	return CustodyCondition().Address()
}

//--- Vault

// Validate enforces the registry invariants: at least one
// participant, no duplicate or malformed entries, and a
// threshold between 1 and the participant count.
func (v *Vault) Validate() error {
	if len(v.Participants) == 0 {
		return errors.Wrap(errors.ErrEmpty, "participants")
	}
	for i, p := range v.Participants {
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "participant #%d", i)
		}
		for _, prev := range v.Participants[:i] {
			if p.Equals(prev) {
				return errors.Wrapf(errors.ErrDuplicate, "participant %s", p)
			}
		}
	}
	if v.Threshold < 1 || int(v.Threshold) > len(v.Participants) {
		return errors.Wrapf(errors.ErrInput,
			"threshold %d with %d participants", v.Threshold, len(v.Participants))
	}
	return nil
}

// Copy produces an independent copy of the registry.
func (v *Vault) Copy() *Vault {
	participants := make([]covault.Address, len(v.Participants))
	for i, p := range v.Participants {
		participants[i] = append(covault.Address(nil), p...)
	}
	return &Vault{
		Participants: participants,
		Threshold:    v.Threshold,
	}
}

// IsParticipant returns true if addr is currently registered.
func (v *Vault) IsParticipant(addr covault.Address) bool {
	for _, p := range v.Participants {
		if p.Equals(addr) {
			return true
		}
	}
	return false
}

//--- Proposal

// Validate checks the type specific payload along with the
// fields shared by all proposals.
func (p *Proposal) Validate() error {
	switch p.Type {
	case ProposalType_Transfer:
		if err := p.Target.Validate(); err != nil {
			return errors.Wrap(err, "destination")
		}
		if p.Amount == nil {
			return errors.Wrap(errors.ErrEmpty, "amount")
		}
		if err := p.Amount.Validate(); err != nil {
			return err
		}
		if !p.Amount.IsPositive() {
			return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %v", p.Amount)
		}
	case ProposalType_AddParticipant, ProposalType_RemoveParticipant:
		if err := p.Target.Validate(); err != nil {
			return errors.Wrap(err, "participant")
		}
	case ProposalType_ChangeThreshold:
		if p.NewThreshold < 1 {
			return errors.Wrapf(errors.ErrInput, "threshold %d", p.NewThreshold)
		}
	default:
		return errors.Wrapf(errors.ErrType, "proposal type %s", p.Type)
	}
	if err := p.Proposer.Validate(); err != nil {
		return errors.Wrap(err, "proposer")
	}
	for i, a := range p.Approvals {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "approval #%d", i)
		}
	}
	if p.Status != ProposalStatus_Pending && p.Status != ProposalStatus_Executed {
		return errors.Wrapf(errors.ErrState, "status %s", p.Status)
	}
	return nil
}

// Copy produces an independent copy of the proposal.
func (p *Proposal) Copy() *Proposal {
	approvals := make([]covault.Address, len(p.Approvals))
	for i, a := range p.Approvals {
		approvals[i] = append(covault.Address(nil), a...)
	}
	cpy := &Proposal{
		Type:         p.Type,
		Target:       append(covault.Address(nil), p.Target...),
		NewThreshold: p.NewThreshold,
		Proposer:     append(covault.Address(nil), p.Proposer...),
		Approvals:    approvals,
		Status:       p.Status,
	}
	if p.Amount != nil {
		cpy.Amount = p.Amount.Clone()
	}
	return cpy
}

// HasApproval returns true if the approval of addr is recorded.
func (p *Proposal) HasApproval(addr covault.Address) bool {
	for _, a := range p.Approvals {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

// strike removes the approval of addr, reporting if the
// proposal changed.
func (p *Proposal) strike(addr covault.Address) bool {
	for i, a := range p.Approvals {
		if a.Equals(addr) {
			p.Approvals = append(p.Approvals[:i], p.Approvals[i+1:]...)
			return true
		}
	}
	return false
}

//--- VaultBucket

// VaultBucket is a type-safe wrapper around orm.Bucket that
// holds the single registry record.
type VaultBucket struct {
	orm.Bucket
}

// NewVaultBucket initializes a VaultBucket with default name
func NewVaultBucket() VaultBucket {
	return VaultBucket{
		Bucket: orm.NewBucket(VaultBucketName, orm.NewSimpleObj(nil, new(Vault))),
	}
}

// GetVault loads the registry, nil if never initialized
func (b VaultBucket) GetVault(db covault.ReadOnlyKVStore) (*Vault, error) {
	obj, err := b.Get(db, registryKey)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.Value().(*Vault), nil
}

// SaveVault persists the registry under the fixed key
func (b VaultBucket) SaveVault(db covault.KVStore, v *Vault) error {
	return b.Save(db, orm.NewSimpleObj(registryKey, v))
}

//--- ProposalBucket

// ProposalBucket is a type-safe wrapper around orm.Bucket that
// assigns sequential ids on creation. Proposals are never
// deleted and ids are never reused.
type ProposalBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewProposalBucket initializes a ProposalBucket with default name
func NewProposalBucket() ProposalBucket {
	bucket := orm.NewBucket(ProposalBucketName, orm.NewSimpleObj(nil, new(Proposal)))
	return ProposalBucket{
		Bucket: bucket,
		idSeq:  bucket.Sequence(orm.SeqID),
	}
}

// Create assigns the next sequential id, persists the proposal
// and returns the id.
func (b ProposalBucket) Create(db covault.KVStore, p *Proposal) ([]byte, error) {
	id := b.idSeq.NextVal(db)
	if err := b.Save(db, orm.NewSimpleObj(id, p)); err != nil {
		return nil, err
	}
	return id, nil
}

// GetProposal loads one proposal, nil if missing
func (b ProposalBucket) GetProposal(db covault.ReadOnlyKVStore, id []byte) (*Proposal, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.Value().(*Proposal), nil
}

// Update overwrites an existing proposal
func (b ProposalBucket) Update(db covault.KVStore, id []byte, p *Proposal) error {
	return b.Save(db, orm.NewSimpleObj(id, p))
}

// Issued returns how many ids were handed out so far.
func (b ProposalBucket) Issued(db covault.ReadOnlyKVStore) int64 {
	return b.idSeq.Issued(db)
}
