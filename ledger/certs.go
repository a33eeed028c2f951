// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledger

import (
	"bytes"

	"github.com/blinklabs-io/goledger/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

const (
	CertificateTypeStakeRegistration               = 0
	CertificateTypeStakeDeregistration             = 1
	CertificateTypeStakeDelegation                 = 2
	CertificateTypePoolRegistration                = 3
	CertificateTypePoolRetirement                  = 4
	CertificateTypeGenesisKeyDelegation            = 5
	CertificateTypeMoveInstantaneousRewards        = 6
	CertificateTypeRegistration                    = 7
	CertificateTypeDeregistration                  = 8
	CertificateTypeVoteDelegation                  = 9
	CertificateTypeStakeVoteDelegation             = 10
	CertificateTypeStakeRegistrationDelegation     = 11
	CertificateTypeVoteRegistrationDelegation      = 12
	CertificateTypeStakeVoteRegistrationDelegation = 13
	CertificateTypeAuthCommitteeHot                = 14
	CertificateTypeResignCommitteeCold             = 15
	CertificateTypeRegistrationDrep                = 16
	CertificateTypeDeregistrationDrep              = 17
	CertificateTypeUpdateDrep                      = 18
)

var certificateTypes = []uint64{
	CertificateTypeStakeRegistration,
	CertificateTypeStakeDeregistration,
	CertificateTypeStakeDelegation,
	CertificateTypePoolRegistration,
	CertificateTypePoolRetirement,
	CertificateTypeGenesisKeyDelegation,
	CertificateTypeMoveInstantaneousRewards,
	CertificateTypeRegistration,
	CertificateTypeDeregistration,
	CertificateTypeVoteDelegation,
	CertificateTypeStakeVoteDelegation,
	CertificateTypeStakeRegistrationDelegation,
	CertificateTypeVoteRegistrationDelegation,
	CertificateTypeStakeVoteRegistrationDelegation,
	CertificateTypeAuthCommitteeHot,
	CertificateTypeResignCommitteeCold,
	CertificateTypeRegistrationDrep,
	CertificateTypeDeregistrationDrep,
	CertificateTypeUpdateDrep,
}

func CertificateTypeName(certType uint64) string {
	switch certType {
	case CertificateTypeStakeRegistration:
		return "stake_registration"
	case CertificateTypeStakeDeregistration:
		return "stake_deregistration"
	case CertificateTypeStakeDelegation:
		return "stake_delegation"
	case CertificateTypePoolRegistration:
		return "pool_registration"
	case CertificateTypePoolRetirement:
		return "pool_retirement"
	case CertificateTypeGenesisKeyDelegation:
		return "genesis_key_delegation"
	case CertificateTypeMoveInstantaneousRewards:
		return "move_instantaneous_rewards"
	case CertificateTypeRegistration:
		return "registration"
	case CertificateTypeDeregistration:
		return "deregistration"
	case CertificateTypeVoteDelegation:
		return "vote_delegation"
	case CertificateTypeStakeVoteDelegation:
		return "stake_vote_delegation"
	case CertificateTypeStakeRegistrationDelegation:
		return "stake_registration_delegation"
	case CertificateTypeVoteRegistrationDelegation:
		return "vote_registration_delegation"
	case CertificateTypeStakeVoteRegistrationDelegation:
		return "stake_vote_registration_delegation"
	case CertificateTypeAuthCommitteeHot:
		return "auth_committee_hot"
	case CertificateTypeResignCommitteeCold:
		return "resign_committee_cold"
	case CertificateTypeRegistrationDrep:
		return "registration_drep"
	case CertificateTypeDeregistrationDrep:
		return "deregistration_drep"
	case CertificateTypeUpdateDrep:
		return "update_drep"
	}
	return "unknown"
}

type Certificate interface {
	isCertificate()
	Cbor() []byte
	Utxorpc() (*utxorpc.Certificate, error)
	Type() uint
}

type CertificateWrapper struct {
	Type        uint
	Certificate Certificate
}

func (c *CertificateWrapper) UnmarshalCBOR(data []byte) error {
	cert, err := CertificateFromCbor(data)
	if err != nil {
		return err
	}
	c.Type = cert.Type()
	c.Certificate = cert
	return nil
}

func (c *CertificateWrapper) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(c.Certificate)
}

// CertificateFromCbor determines the certificate type from the leading array
// element and decodes the full certificate
func CertificateFromCbor(data []byte) (Certificate, error) {
	certType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return nil, cbor.SchemaViolationError{
			Entity:  "certificate",
			Field:   "cert_type",
			Message: err.Error(),
		}
	}
	var tmpCert Certificate
	switch certType {
	case CertificateTypeStakeRegistration:
		tmpCert = &StakeRegistrationCertificate{}
	case CertificateTypeStakeDeregistration:
		tmpCert = &StakeDeregistrationCertificate{}
	case CertificateTypeStakeDelegation:
		tmpCert = &StakeDelegationCertificate{}
	case CertificateTypePoolRegistration:
		tmpCert = &PoolRegistrationCertificate{}
	case CertificateTypePoolRetirement:
		tmpCert = &PoolRetirementCertificate{}
	case CertificateTypeGenesisKeyDelegation:
		tmpCert = &GenesisKeyDelegationCertificate{}
	case CertificateTypeMoveInstantaneousRewards:
		tmpCert = &MoveInstantaneousRewardsCertificate{}
	case CertificateTypeRegistration:
		tmpCert = &RegistrationCertificate{}
	case CertificateTypeDeregistration:
		tmpCert = &DeregistrationCertificate{}
	case CertificateTypeVoteDelegation:
		tmpCert = &VoteDelegationCertificate{}
	case CertificateTypeStakeVoteDelegation:
		tmpCert = &StakeVoteDelegationCertificate{}
	case CertificateTypeStakeRegistrationDelegation:
		tmpCert = &StakeRegistrationDelegationCertificate{}
	case CertificateTypeVoteRegistrationDelegation:
		tmpCert = &VoteRegistrationDelegationCertificate{}
	case CertificateTypeStakeVoteRegistrationDelegation:
		tmpCert = &StakeVoteRegistrationDelegationCertificate{}
	case CertificateTypeAuthCommitteeHot:
		tmpCert = &AuthCommitteeHotCertificate{}
	case CertificateTypeResignCommitteeCold:
		tmpCert = &ResignCommitteeColdCertificate{}
	case CertificateTypeRegistrationDrep:
		tmpCert = &RegistrationDrepCertificate{}
	case CertificateTypeDeregistrationDrep:
		tmpCert = &DeregistrationDrepCertificate{}
	case CertificateTypeUpdateDrep:
		tmpCert = &UpdateDrepCertificate{}
	default:
		return nil, cbor.NewUnknownEnumError(
			"certificate",
			"cert_type",
			// certType is known to be non-negative here
			uint64(certType), // #nosec G115
			certificateTypes,
			CertificateTypeName,
		)
	}
	if _, err := cbor.Decode(data, tmpCert); err != nil {
		return nil, err
	}
	return tmpCert, nil
}

// CertificatesEqual reports structural equality between two certificates.
// Certificates of different types are never equal; child entities compare
// via their own equality
func CertificatesEqual(a, b Certificate) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch certA := a.(type) {
	case *StakeRegistrationCertificate:
		certB, ok := b.(*StakeRegistrationCertificate)
		return ok && certA.StakeCredential.Equal(&certB.StakeCredential)
	case *StakeDeregistrationCertificate:
		certB, ok := b.(*StakeDeregistrationCertificate)
		return ok && certA.StakeCredential.Equal(&certB.StakeCredential)
	case *StakeDelegationCertificate:
		certB, ok := b.(*StakeDelegationCertificate)
		return ok && certA.StakeCredential.Equal(&certB.StakeCredential) &&
			certA.PoolKeyHash == certB.PoolKeyHash
	case *PoolRegistrationCertificate:
		certB, ok := b.(*PoolRegistrationCertificate)
		return ok && poolRegistrationsEqual(certA, certB)
	case *PoolRetirementCertificate:
		certB, ok := b.(*PoolRetirementCertificate)
		return ok && certA.PoolKeyHash == certB.PoolKeyHash &&
			certA.Epoch == certB.Epoch
	case *GenesisKeyDelegationCertificate:
		certB, ok := b.(*GenesisKeyDelegationCertificate)
		return ok && bytes.Equal(certA.GenesisHash, certB.GenesisHash) &&
			bytes.Equal(certA.GenesisDelegateHash, certB.GenesisDelegateHash) &&
			certA.VrfKeyHash == certB.VrfKeyHash
	case *MoveInstantaneousRewardsCertificate:
		certB, ok := b.(*MoveInstantaneousRewardsCertificate)
		return ok && mirRewardsEqual(&certA.Reward, &certB.Reward)
	case *RegistrationCertificate:
		certB, ok := b.(*RegistrationCertificate)
		return ok && certA.StakeCredential.Equal(&certB.StakeCredential) &&
			certA.Amount == certB.Amount
	case *DeregistrationCertificate:
		certB, ok := b.(*DeregistrationCertificate)
		return ok && certA.StakeCredential.Equal(&certB.StakeCredential) &&
			certA.Amount == certB.Amount
	case *VoteDelegationCertificate:
		certB, ok := b.(*VoteDelegationCertificate)
		return ok && certA.StakeCredential.Equal(&certB.StakeCredential) &&
			certA.Drep.Equal(&certB.Drep)
	case *StakeVoteDelegationCertificate:
		certB, ok := b.(*StakeVoteDelegationCertificate)
		return ok && certA.StakeCredential.Equal(&certB.StakeCredential) &&
			certA.PoolKeyHash == certB.PoolKeyHash &&
			certA.Drep.Equal(&certB.Drep)
	case *StakeRegistrationDelegationCertificate:
		certB, ok := b.(*StakeRegistrationDelegationCertificate)
		return ok && certA.StakeCredential.Equal(&certB.StakeCredential) &&
			certA.PoolKeyHash == certB.PoolKeyHash &&
			certA.Amount == certB.Amount
	case *VoteRegistrationDelegationCertificate:
		certB, ok := b.(*VoteRegistrationDelegationCertificate)
		return ok && certA.StakeCredential.Equal(&certB.StakeCredential) &&
			certA.Drep.Equal(&certB.Drep) &&
			certA.Amount == certB.Amount
	case *StakeVoteRegistrationDelegationCertificate:
		certB, ok := b.(*StakeVoteRegistrationDelegationCertificate)
		return ok && certA.StakeCredential.Equal(&certB.StakeCredential) &&
			certA.PoolKeyHash == certB.PoolKeyHash &&
			certA.Drep.Equal(&certB.Drep) &&
			certA.Amount == certB.Amount
	case *AuthCommitteeHotCertificate:
		certB, ok := b.(*AuthCommitteeHotCertificate)
		return ok && certA.ColdCredential.Equal(&certB.ColdCredential) &&
			certA.HotCredential.Equal(&certB.HotCredential)
	case *ResignCommitteeColdCertificate:
		certB, ok := b.(*ResignCommitteeColdCertificate)
		return ok && certA.ColdCredential.Equal(&certB.ColdCredential) &&
			certA.Anchor.Equal(certB.Anchor)
	case *RegistrationDrepCertificate:
		certB, ok := b.(*RegistrationDrepCertificate)
		return ok && certA.DrepCredential.Equal(&certB.DrepCredential) &&
			certA.Amount == certB.Amount &&
			certA.Anchor.Equal(certB.Anchor)
	case *DeregistrationDrepCertificate:
		certB, ok := b.(*DeregistrationDrepCertificate)
		return ok && certA.DrepCredential.Equal(&certB.DrepCredential) &&
			certA.Amount == certB.Amount
	case *UpdateDrepCertificate:
		certB, ok := b.(*UpdateDrepCertificate)
		return ok && certA.DrepCredential.Equal(&certB.DrepCredential) &&
			certA.Anchor.Equal(certB.Anchor)
	}
	return false
}

func poolRegistrationsEqual(a, b *PoolRegistrationCertificate) bool {
	if a.Operator != b.Operator ||
		a.VrfKeyHash != b.VrfKeyHash ||
		a.Pledge != b.Pledge ||
		a.Cost != b.Cost ||
		!bytes.Equal(a.RewardAccount, b.RewardAccount) {
		return false
	}
	if (a.Margin.Rat == nil) != (b.Margin.Rat == nil) {
		return false
	}
	if a.Margin.Rat != nil && a.Margin.Cmp(b.Margin.Rat) != 0 {
		return false
	}
	if len(a.PoolOwners) != len(b.PoolOwners) {
		return false
	}
	for i := range a.PoolOwners {
		if a.PoolOwners[i] != b.PoolOwners[i] {
			return false
		}
	}
	if len(a.Relays) != len(b.Relays) {
		return false
	}
	for i := range a.Relays {
		if !a.Relays[i].Equal(&b.Relays[i]) {
			return false
		}
	}
	return a.PoolMetadata.Equal(b.PoolMetadata)
}

func mirRewardsEqual(
	a, b *MoveInstantaneousRewardsCertificateReward,
) bool {
	if a.Source != b.Source || a.OtherPot != b.OtherPot {
		return false
	}
	if len(a.Rewards) != len(b.Rewards) {
		return false
	}
	// Reward keys are pointers: match entries by credential value
	for credA, amountA := range a.Rewards {
		found := false
		for credB, amountB := range b.Rewards {
			if credA.Equal(credB) {
				if amountA != amountB {
					return false
				}
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Decode helpers shared by the certificate codecs. Field decode failures are
// reported as schema violations naming the entity and field; nested entity
// failures (credential, anchor, drep) pass through unchanged

func decodeCredentialField(data cbor.RawMessage) (Credential, error) {
	var cred Credential
	if _, err := cbor.Decode(data, &cred); err != nil {
		return Credential{}, err
	}
	return cred, nil
}

func decodeDrepField(data cbor.RawMessage) (Drep, error) {
	var drep Drep
	if _, err := cbor.Decode(data, &drep); err != nil {
		return Drep{}, err
	}
	return drep, nil
}

// decodeOptionalAnchor consumes either an anchor encoding or an explicit
// null. The two cases are not distinguishable without reading ahead, so the
// value kind is peeked before deciding which decoder to delegate to
func decodeOptionalAnchor(data cbor.RawMessage) (*Anchor, error) {
	if cbor.PeekValueKind(data) == cbor.KindNull {
		return nil, nil
	}
	var anchor Anchor
	if _, err := cbor.Decode(data, &anchor); err != nil {
		return nil, err
	}
	return &anchor, nil
}

func decodeUint64Field(
	entity string,
	field string,
	data cbor.RawMessage,
) (uint64, error) {
	var value uint64
	if _, err := cbor.Decode(data, &value); err != nil {
		return 0, cbor.SchemaViolationError{
			Entity:  entity,
			Field:   field,
			Message: err.Error(),
		}
	}
	return value, nil
}

func decodeInt64Field(
	entity string,
	field string,
	data cbor.RawMessage,
) (int64, error) {
	var value int64
	if _, err := cbor.Decode(data, &value); err != nil {
		return 0, cbor.SchemaViolationError{
			Entity:  entity,
			Field:   field,
			Message: err.Error(),
		}
	}
	return value, nil
}

func decodeBytesField(
	entity string,
	field string,
	data cbor.RawMessage,
) ([]byte, error) {
	var value []byte
	if _, err := cbor.Decode(data, &value); err != nil {
		return nil, cbor.SchemaViolationError{
			Entity:  entity,
			Field:   field,
			Message: err.Error(),
		}
	}
	return value, nil
}

type StakeRegistrationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
}

func NewStakeRegistrationCertificate(
	credential *Credential,
) (*StakeRegistrationCertificate, error) {
	if credential == nil {
		return nil, NilArgumentError{
			Function: "NewStakeRegistrationCertificate",
			Argument: "credential",
		}
	}
	return &StakeRegistrationCertificate{
		CertType:        CertificateTypeStakeRegistration,
		StakeCredential: *credential,
	}, nil
}

func (c StakeRegistrationCertificate) isCertificate() {}

func (c *StakeRegistrationCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "stake_registration_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 2)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeStakeRegistration,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 2); err != nil {
		return err
	}
	c.CertType = CertificateTypeStakeRegistration
	c.StakeCredential = cred
	c.SetCbor(cborData)
	return nil
}

func (c *StakeRegistrationCertificate) SetStakeCredential(
	credential *Credential,
) error {
	if credential == nil {
		return NilArgumentError{
			Function: "StakeRegistrationCertificate.SetStakeCredential",
			Argument: "credential",
		}
	}
	c.StakeCredential = *credential
	return nil
}

func (c *StakeRegistrationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeRegistration{
			StakeRegistration: stakeCred,
		},
	}, nil
}

func (c *StakeRegistrationCertificate) Type() uint {
	return c.CertType
}

type StakeDeregistrationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
}

func NewStakeDeregistrationCertificate(
	credential *Credential,
) (*StakeDeregistrationCertificate, error) {
	if credential == nil {
		return nil, NilArgumentError{
			Function: "NewStakeDeregistrationCertificate",
			Argument: "credential",
		}
	}
	return &StakeDeregistrationCertificate{
		CertType:        CertificateTypeStakeDeregistration,
		StakeCredential: *credential,
	}, nil
}

func (c StakeDeregistrationCertificate) isCertificate() {}

func (c *StakeDeregistrationCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "stake_deregistration_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 2)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeStakeDeregistration,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 2); err != nil {
		return err
	}
	c.CertType = CertificateTypeStakeDeregistration
	c.StakeCredential = cred
	c.SetCbor(cborData)
	return nil
}

func (c *StakeDeregistrationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeDeregistration{
			StakeDeregistration: stakeCred,
		},
	}, nil
}

func (c *StakeDeregistrationCertificate) Type() uint {
	return c.CertType
}

type StakeDelegationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
	PoolKeyHash     PoolKeyHash
}

func NewStakeDelegationCertificate(
	credential *Credential,
	poolKeyHash PoolKeyHash,
) (*StakeDelegationCertificate, error) {
	if credential == nil {
		return nil, NilArgumentError{
			Function: "NewStakeDelegationCertificate",
			Argument: "credential",
		}
	}
	return &StakeDelegationCertificate{
		CertType:        CertificateTypeStakeDelegation,
		StakeCredential: *credential,
		PoolKeyHash:     poolKeyHash,
	}, nil
}

func (c StakeDelegationCertificate) isCertificate() {}

func (c *StakeDelegationCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "stake_delegation_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 3)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeStakeDelegation,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	poolKeyHash, err := decodeBytesField(entity, "pool_key_hash", elems[2])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 3); err != nil {
		return err
	}
	c.CertType = CertificateTypeStakeDelegation
	c.StakeCredential = cred
	c.PoolKeyHash = NewBlake2b224(poolKeyHash)
	c.SetCbor(cborData)
	return nil
}

func (c *StakeDelegationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeDelegation{
			StakeDelegation: &utxorpc.StakeDelegationCert{
				StakeCredential: stakeCred,
				PoolKeyhash:     c.PoolKeyHash[:],
			},
		},
	}, nil
}

func (c *StakeDelegationCertificate) Type() uint {
	return c.CertType
}

type PoolRegistrationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType      uint
	Operator      PoolKeyHash
	VrfKeyHash    VrfKeyHash
	Pledge        uint64
	Cost          uint64
	Margin        cbor.Rat
	RewardAccount []byte
	PoolOwners    []AddrKeyHash
	Relays        []PoolRelay
	PoolMetadata  *PoolMetadata
}

func NewPoolRegistrationCertificate(
	operator PoolKeyHash,
	vrfKeyHash VrfKeyHash,
	pledge uint64,
	cost uint64,
	margin *cbor.Rat,
	rewardAccount []byte,
	poolOwners []AddrKeyHash,
	relays []PoolRelay,
	poolMetadata *PoolMetadata,
) (*PoolRegistrationCertificate, error) {
	if margin == nil || margin.Rat == nil {
		return nil, NilArgumentError{
			Function: "NewPoolRegistrationCertificate",
			Argument: "margin",
		}
	}
	if rewardAccount == nil {
		return nil, NilArgumentError{
			Function: "NewPoolRegistrationCertificate",
			Argument: "rewardAccount",
		}
	}
	return &PoolRegistrationCertificate{
		CertType:      CertificateTypePoolRegistration,
		Operator:      operator,
		VrfKeyHash:    vrfKeyHash,
		Pledge:        pledge,
		Cost:          cost,
		Margin:        *margin,
		RewardAccount: rewardAccount,
		PoolOwners:    poolOwners,
		Relays:        relays,
		PoolMetadata:  poolMetadata,
	}, nil
}

func (c PoolRegistrationCertificate) isCertificate() {}

func (c *PoolRegistrationCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "pool_registration_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 10)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypePoolRegistration,
		CertificateTypeName,
	); err != nil {
		return err
	}
	operator, err := decodeBytesField(entity, "operator", elems[1])
	if err != nil {
		return err
	}
	vrfKeyHash, err := decodeBytesField(entity, "vrf_key_hash", elems[2])
	if err != nil {
		return err
	}
	pledge, err := decodeUint64Field(entity, "pledge", elems[3])
	if err != nil {
		return err
	}
	cost, err := decodeUint64Field(entity, "cost", elems[4])
	if err != nil {
		return err
	}
	var margin cbor.Rat
	if _, err := cbor.Decode(elems[5], &margin); err != nil {
		return cbor.SchemaViolationError{
			Entity:  entity,
			Field:   "margin",
			Message: err.Error(),
		}
	}
	rewardAccount, err := decodeBytesField(entity, "reward_account", elems[6])
	if err != nil {
		return err
	}
	var poolOwners []AddrKeyHash
	if _, err := cbor.Decode(elems[7], &poolOwners); err != nil {
		return cbor.SchemaViolationError{
			Entity:  entity,
			Field:   "pool_owners",
			Message: err.Error(),
		}
	}
	var relays []PoolRelay
	if _, err := cbor.Decode(elems[8], &relays); err != nil {
		return err
	}
	var poolMetadata *PoolMetadata
	if cbor.PeekValueKind(elems[9]) != cbor.KindNull {
		var tmpMetadata PoolMetadata
		if _, err := cbor.Decode(elems[9], &tmpMetadata); err != nil {
			return cbor.SchemaViolationError{
				Entity:  entity,
				Field:   "pool_metadata",
				Message: err.Error(),
			}
		}
		poolMetadata = &tmpMetadata
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 10); err != nil {
		return err
	}
	c.CertType = CertificateTypePoolRegistration
	c.Operator = NewBlake2b224(operator)
	c.VrfKeyHash = NewBlake2b256(vrfKeyHash)
	c.Pledge = pledge
	c.Cost = cost
	c.Margin = margin
	c.RewardAccount = rewardAccount
	c.PoolOwners = poolOwners
	c.Relays = relays
	c.PoolMetadata = poolMetadata
	c.SetCbor(cborData)
	return nil
}

func (c *PoolRegistrationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	tmpPoolOwners := make([][]byte, len(c.PoolOwners))
	for i, owner := range c.PoolOwners {
		tmpPoolOwners[i] = owner[:]
	}
	tmpRelays := make([]*utxorpc.Relay, len(c.Relays))
	for i, relay := range c.Relays {
		relayUtxo, err := relay.Utxorpc()
		if err != nil {
			return nil, err
		}
		tmpRelays[i] = relayUtxo
	}
	poolMetadata, err := c.PoolMetadata.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_PoolRegistration{
			PoolRegistration: &utxorpc.PoolRegistrationCert{
				Operator:   c.Operator[:],
				VrfKeyhash: c.VrfKeyHash[:],
				Pledge:     c.Pledge,
				Cost:       c.Cost,
				// margin components are known to fit the proto types
				// #nosec G115
				Margin: &utxorpc.RationalNumber{
					Numerator:   int32(c.Margin.Num().Int64()),
					Denominator: uint32(c.Margin.Denom().Uint64()),
				},
				RewardAccount: c.RewardAccount,
				PoolOwners:    tmpPoolOwners,
				Relays:        tmpRelays,
				PoolMetadata:  poolMetadata,
			},
		},
	}, nil
}

func (c *PoolRegistrationCertificate) Type() uint {
	return c.CertType
}

type PoolRetirementCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType    uint
	PoolKeyHash PoolKeyHash
	Epoch       uint64
}

func (c PoolRetirementCertificate) isCertificate() {}

func (c *PoolRetirementCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "pool_retirement_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 3)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypePoolRetirement,
		CertificateTypeName,
	); err != nil {
		return err
	}
	poolKeyHash, err := decodeBytesField(entity, "pool_key_hash", elems[1])
	if err != nil {
		return err
	}
	epoch, err := decodeUint64Field(entity, "epoch", elems[2])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 3); err != nil {
		return err
	}
	c.CertType = CertificateTypePoolRetirement
	c.PoolKeyHash = NewBlake2b224(poolKeyHash)
	c.Epoch = epoch
	c.SetCbor(cborData)
	return nil
}

func (c *PoolRetirementCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_PoolRetirement{
			PoolRetirement: &utxorpc.PoolRetirementCert{
				PoolKeyhash: c.PoolKeyHash[:],
				Epoch:       c.Epoch,
			},
		},
	}, nil
}

func (c *PoolRetirementCertificate) Type() uint {
	return c.CertType
}

type GenesisKeyDelegationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType            uint
	GenesisHash         []byte
	GenesisDelegateHash []byte
	VrfKeyHash          VrfKeyHash
}

func (c GenesisKeyDelegationCertificate) isCertificate() {}

func (c *GenesisKeyDelegationCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "genesis_key_delegation_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 4)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeGenesisKeyDelegation,
		CertificateTypeName,
	); err != nil {
		return err
	}
	genesisHash, err := decodeBytesField(entity, "genesis_hash", elems[1])
	if err != nil {
		return err
	}
	genesisDelegateHash, err := decodeBytesField(
		entity,
		"genesis_delegate_hash",
		elems[2],
	)
	if err != nil {
		return err
	}
	vrfKeyHash, err := decodeBytesField(entity, "vrf_key_hash", elems[3])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 4); err != nil {
		return err
	}
	c.CertType = CertificateTypeGenesisKeyDelegation
	c.GenesisHash = genesisHash
	c.GenesisDelegateHash = genesisDelegateHash
	c.VrfKeyHash = NewBlake2b256(vrfKeyHash)
	c.SetCbor(cborData)
	return nil
}

func (c *GenesisKeyDelegationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_GenesisKeyDelegation{
			GenesisKeyDelegation: &utxorpc.GenesisKeyDelegationCert{
				GenesisHash:         c.GenesisHash,
				GenesisDelegateHash: c.GenesisDelegateHash,
				VrfKeyhash:          c.VrfKeyHash[:],
			},
		},
	}, nil
}

func (c *GenesisKeyDelegationCertificate) Type() uint {
	return c.CertType
}

const (
	MirSourceReserves = 0
	MirSourceTreasury = 1
)

var mirSources = []uint64{
	MirSourceReserves,
	MirSourceTreasury,
}

func MirSourceName(source uint64) string {
	switch source {
	case MirSourceReserves:
		return "reserves"
	case MirSourceTreasury:
		return "treasury"
	}
	return "unknown"
}

// MoveInstantaneousRewardsCertificateReward carries either per-credential
// reward deltas or a lump transfer to the other accounting pot
type MoveInstantaneousRewardsCertificateReward struct {
	Source   uint
	Rewards  map[*Credential]uint64
	OtherPot uint64
}

func (r *MoveInstantaneousRewardsCertificateReward) UnmarshalCBOR(
	data []byte,
) error {
	const entity = "move_instantaneous_reward"
	elems, err := cbor.ExpectArrayOfLength(entity, data, 2)
	if err != nil {
		return err
	}
	source, err := decodeUint64Field(entity, "source", elems[0])
	if err != nil {
		return err
	}
	if source != MirSourceReserves && source != MirSourceTreasury {
		return cbor.NewUnknownEnumError(
			entity,
			"source",
			source,
			mirSources,
			MirSourceName,
		)
	}
	switch kind := cbor.PeekValueKind(elems[1]); kind {
	case cbor.KindMap:
		var rewards map[*Credential]uint64
		if _, err := cbor.Decode(elems[1], &rewards); err != nil {
			return err
		}
		r.Rewards = rewards
	case cbor.KindUnsignedInt:
		otherPot, err := decodeUint64Field(entity, "other_pot", elems[1])
		if err != nil {
			return err
		}
		r.OtherPot = otherPot
	default:
		return cbor.SchemaViolationError{
			Entity:  entity,
			Field:   "target",
			Message: "expected map or unsigned integer, found " + kind.String(),
		}
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 2); err != nil {
		return err
	}
	r.Source = uint(source)
	return nil
}

func (r MoveInstantaneousRewardsCertificateReward) MarshalCBOR() ([]byte, error) {
	if r.Rewards != nil {
		return cbor.Encode([]any{r.Source, r.Rewards})
	}
	return cbor.Encode([]any{r.Source, r.OtherPot})
}

type MoveInstantaneousRewardsCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType uint
	Reward   MoveInstantaneousRewardsCertificateReward
}

func (c MoveInstantaneousRewardsCertificate) isCertificate() {}

func (c *MoveInstantaneousRewardsCertificate) UnmarshalCBOR(
	cborData []byte,
) error {
	const entity = "move_instantaneous_rewards_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 2)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeMoveInstantaneousRewards,
		CertificateTypeName,
	); err != nil {
		return err
	}
	var reward MoveInstantaneousRewardsCertificateReward
	if err := reward.UnmarshalCBOR(elems[1]); err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 2); err != nil {
		return err
	}
	c.CertType = CertificateTypeMoveInstantaneousRewards
	c.Reward = reward
	c.SetCbor(cborData)
	return nil
}

func (c *MoveInstantaneousRewardsCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	tmpMirTargets := []*utxorpc.MirTarget{}
	for stakeCred, deltaCoin := range c.Reward.Rewards {
		stakeCr, err := stakeCred.Utxorpc()
		if err != nil {
			return nil, err
		}
		tmpMirTargets = append(
			tmpMirTargets,
			&utxorpc.MirTarget{
				StakeCredential: stakeCr,
				// potential integer overflow
				// #nosec G115
				DeltaCoin: int64(deltaCoin),
			},
		)
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_MirCert{
			MirCert: &utxorpc.MirCert{
				// the proto enum is offset by one from the wire encoding
				// #nosec G115
				From:     utxorpc.MirSource(c.Reward.Source + 1),
				To:       tmpMirTargets,
				OtherPot: c.Reward.OtherPot,
			},
		},
	}, nil
}

func (c *MoveInstantaneousRewardsCertificate) Type() uint {
	return c.CertType
}

type RegistrationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
	Amount          int64
}

func NewRegistrationCertificate(
	credential *Credential,
	amount int64,
) (*RegistrationCertificate, error) {
	if credential == nil {
		return nil, NilArgumentError{
			Function: "NewRegistrationCertificate",
			Argument: "credential",
		}
	}
	return &RegistrationCertificate{
		CertType:        CertificateTypeRegistration,
		StakeCredential: *credential,
		Amount:          amount,
	}, nil
}

func (c RegistrationCertificate) isCertificate() {}

func (c *RegistrationCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "registration_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 3)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeRegistration,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	amount, err := decodeInt64Field(entity, "amount", elems[2])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 3); err != nil {
		return err
	}
	c.CertType = CertificateTypeRegistration
	c.StakeCredential = cred
	c.Amount = amount
	c.SetCbor(cborData)
	return nil
}

func (c *RegistrationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_RegCert{
			RegCert: &utxorpc.RegCert{
				StakeCredential: stakeCred,
			},
		},
	}, nil
}

func (c *RegistrationCertificate) Type() uint {
	return c.CertType
}

type DeregistrationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
	Amount          int64
}

func NewDeregistrationCertificate(
	credential *Credential,
	amount int64,
) (*DeregistrationCertificate, error) {
	if credential == nil {
		return nil, NilArgumentError{
			Function: "NewDeregistrationCertificate",
			Argument: "credential",
		}
	}
	return &DeregistrationCertificate{
		CertType:        CertificateTypeDeregistration,
		StakeCredential: *credential,
		Amount:          amount,
	}, nil
}

func (c DeregistrationCertificate) isCertificate() {}

func (c *DeregistrationCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "deregistration_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 3)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeDeregistration,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	amount, err := decodeInt64Field(entity, "amount", elems[2])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 3); err != nil {
		return err
	}
	c.CertType = CertificateTypeDeregistration
	c.StakeCredential = cred
	c.Amount = amount
	c.SetCbor(cborData)
	return nil
}

func (c *DeregistrationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_UnregCert{
			UnregCert: &utxorpc.UnRegCert{
				StakeCredential: stakeCred,
			},
		},
	}, nil
}

func (c *DeregistrationCertificate) Type() uint {
	return c.CertType
}

type VoteDelegationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
	Drep            Drep
}

func NewVoteDelegationCertificate(
	credential *Credential,
	drep *Drep,
) (*VoteDelegationCertificate, error) {
	if credential == nil {
		return nil, NilArgumentError{
			Function: "NewVoteDelegationCertificate",
			Argument: "credential",
		}
	}
	if drep == nil {
		return nil, NilArgumentError{
			Function: "NewVoteDelegationCertificate",
			Argument: "drep",
		}
	}
	return &VoteDelegationCertificate{
		CertType:        CertificateTypeVoteDelegation,
		StakeCredential: *credential,
		Drep:            *drep,
	}, nil
}

func (c VoteDelegationCertificate) isCertificate() {}

func (c *VoteDelegationCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "vote_delegation_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 3)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeVoteDelegation,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	drep, err := decodeDrepField(elems[2])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 3); err != nil {
		return err
	}
	c.CertType = CertificateTypeVoteDelegation
	c.StakeCredential = cred
	c.Drep = drep
	c.SetCbor(cborData)
	return nil
}

func (c *VoteDelegationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	drep, err := c.Drep.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_VoteDelegCert{
			VoteDelegCert: &utxorpc.VoteDelegCert{
				StakeCredential: stakeCred,
				Drep:            drep,
			},
		},
	}, nil
}

func (c *VoteDelegationCertificate) Type() uint {
	return c.CertType
}

type StakeVoteDelegationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
	PoolKeyHash     PoolKeyHash
	Drep            Drep
}

func NewStakeVoteDelegationCertificate(
	credential *Credential,
	poolKeyHash PoolKeyHash,
	drep *Drep,
) (*StakeVoteDelegationCertificate, error) {
	if credential == nil {
		return nil, NilArgumentError{
			Function: "NewStakeVoteDelegationCertificate",
			Argument: "credential",
		}
	}
	if drep == nil {
		return nil, NilArgumentError{
			Function: "NewStakeVoteDelegationCertificate",
			Argument: "drep",
		}
	}
	return &StakeVoteDelegationCertificate{
		CertType:        CertificateTypeStakeVoteDelegation,
		StakeCredential: *credential,
		PoolKeyHash:     poolKeyHash,
		Drep:            *drep,
	}, nil
}

func (c StakeVoteDelegationCertificate) isCertificate() {}

func (c *StakeVoteDelegationCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "stake_vote_delegation_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 4)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeStakeVoteDelegation,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	poolKeyHash, err := decodeBytesField(entity, "pool_key_hash", elems[2])
	if err != nil {
		return err
	}
	drep, err := decodeDrepField(elems[3])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 4); err != nil {
		return err
	}
	c.CertType = CertificateTypeStakeVoteDelegation
	c.StakeCredential = cred
	c.PoolKeyHash = NewBlake2b224(poolKeyHash)
	c.Drep = drep
	c.SetCbor(cborData)
	return nil
}

func (c *StakeVoteDelegationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	drep, err := c.Drep.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeVoteDelegCert{
			StakeVoteDelegCert: &utxorpc.StakeVoteDelegCert{
				StakeCredential: stakeCred,
				PoolKeyhash:     c.PoolKeyHash[:],
				Drep:            drep,
			},
		},
	}, nil
}

func (c *StakeVoteDelegationCertificate) Type() uint {
	return c.CertType
}

type StakeRegistrationDelegationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
	PoolKeyHash     PoolKeyHash
	Amount          int64
}

func NewStakeRegistrationDelegationCertificate(
	credential *Credential,
	poolKeyHash PoolKeyHash,
	amount int64,
) (*StakeRegistrationDelegationCertificate, error) {
	if credential == nil {
		return nil, NilArgumentError{
			Function: "NewStakeRegistrationDelegationCertificate",
			Argument: "credential",
		}
	}
	return &StakeRegistrationDelegationCertificate{
		CertType:        CertificateTypeStakeRegistrationDelegation,
		StakeCredential: *credential,
		PoolKeyHash:     poolKeyHash,
		Amount:          amount,
	}, nil
}

func (c StakeRegistrationDelegationCertificate) isCertificate() {}

func (c *StakeRegistrationDelegationCertificate) UnmarshalCBOR(
	cborData []byte,
) error {
	const entity = "stake_registration_delegation_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 4)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeStakeRegistrationDelegation,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	poolKeyHash, err := decodeBytesField(entity, "pool_key_hash", elems[2])
	if err != nil {
		return err
	}
	amount, err := decodeInt64Field(entity, "amount", elems[3])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 4); err != nil {
		return err
	}
	c.CertType = CertificateTypeStakeRegistrationDelegation
	c.StakeCredential = cred
	c.PoolKeyHash = NewBlake2b224(poolKeyHash)
	c.Amount = amount
	c.SetCbor(cborData)
	return nil
}

func (c *StakeRegistrationDelegationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeVoteDelegCert{
			StakeVoteDelegCert: &utxorpc.StakeVoteDelegCert{
				StakeCredential: stakeCred,
				PoolKeyhash:     c.PoolKeyHash[:],
			},
		},
	}, nil
}

func (c *StakeRegistrationDelegationCertificate) Type() uint {
	return c.CertType
}

type VoteRegistrationDelegationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
	Drep            Drep
	Amount          int64
}

func NewVoteRegistrationDelegationCertificate(
	credential *Credential,
	drep *Drep,
	amount int64,
) (*VoteRegistrationDelegationCertificate, error) {
	if credential == nil {
		return nil, NilArgumentError{
			Function: "NewVoteRegistrationDelegationCertificate",
			Argument: "credential",
		}
	}
	if drep == nil {
		return nil, NilArgumentError{
			Function: "NewVoteRegistrationDelegationCertificate",
			Argument: "drep",
		}
	}
	return &VoteRegistrationDelegationCertificate{
		CertType:        CertificateTypeVoteRegistrationDelegation,
		StakeCredential: *credential,
		Drep:            *drep,
		Amount:          amount,
	}, nil
}

func (c VoteRegistrationDelegationCertificate) isCertificate() {}

func (c *VoteRegistrationDelegationCertificate) UnmarshalCBOR(
	cborData []byte,
) error {
	const entity = "vote_registration_delegation_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 4)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeVoteRegistrationDelegation,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	drep, err := decodeDrepField(elems[2])
	if err != nil {
		return err
	}
	amount, err := decodeInt64Field(entity, "amount", elems[3])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 4); err != nil {
		return err
	}
	c.CertType = CertificateTypeVoteRegistrationDelegation
	c.StakeCredential = cred
	c.Drep = drep
	c.Amount = amount
	c.SetCbor(cborData)
	return nil
}

func (c *VoteRegistrationDelegationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	drep, err := c.Drep.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_VoteRegDelegCert{
			VoteRegDelegCert: &utxorpc.VoteRegDelegCert{
				StakeCredential: stakeCred,
				Drep:            drep,
			},
		},
	}, nil
}

func (c *VoteRegistrationDelegationCertificate) Type() uint {
	return c.CertType
}

type StakeVoteRegistrationDelegationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
	PoolKeyHash     PoolKeyHash
	Drep            Drep
	Amount          int64
}

func NewStakeVoteRegistrationDelegationCertificate(
	credential *Credential,
	poolKeyHash PoolKeyHash,
	drep *Drep,
	amount int64,
) (*StakeVoteRegistrationDelegationCertificate, error) {
	if credential == nil {
		return nil, NilArgumentError{
			Function: "NewStakeVoteRegistrationDelegationCertificate",
			Argument: "credential",
		}
	}
	if drep == nil {
		return nil, NilArgumentError{
			Function: "NewStakeVoteRegistrationDelegationCertificate",
			Argument: "drep",
		}
	}
	return &StakeVoteRegistrationDelegationCertificate{
		CertType:        CertificateTypeStakeVoteRegistrationDelegation,
		StakeCredential: *credential,
		PoolKeyHash:     poolKeyHash,
		Drep:            *drep,
		Amount:          amount,
	}, nil
}

func (c StakeVoteRegistrationDelegationCertificate) isCertificate() {}

func (c *StakeVoteRegistrationDelegationCertificate) UnmarshalCBOR(
	cborData []byte,
) error {
	const entity = "stake_vote_registration_delegation_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 5)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeStakeVoteRegistrationDelegation,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	poolKeyHash, err := decodeBytesField(entity, "pool_key_hash", elems[2])
	if err != nil {
		return err
	}
	drep, err := decodeDrepField(elems[3])
	if err != nil {
		return err
	}
	amount, err := decodeInt64Field(entity, "amount", elems[4])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 5); err != nil {
		return err
	}
	c.CertType = CertificateTypeStakeVoteRegistrationDelegation
	c.StakeCredential = cred
	c.PoolKeyHash = NewBlake2b224(poolKeyHash)
	c.Drep = drep
	c.Amount = amount
	c.SetCbor(cborData)
	return nil
}

func (c *StakeVoteRegistrationDelegationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	drep, err := c.Drep.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeVoteRegDelegCert{
			StakeVoteRegDelegCert: &utxorpc.StakeVoteRegDelegCert{
				StakeCredential: stakeCred,
				PoolKeyhash:     c.PoolKeyHash[:],
				Drep:            drep,
			},
		},
	}, nil
}

func (c *StakeVoteRegistrationDelegationCertificate) Type() uint {
	return c.CertType
}

type AuthCommitteeHotCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType       uint
	ColdCredential Credential
	HotCredential  Credential
}

func NewAuthCommitteeHotCertificate(
	coldCredential *Credential,
	hotCredential *Credential,
) (*AuthCommitteeHotCertificate, error) {
	if coldCredential == nil {
		return nil, NilArgumentError{
			Function: "NewAuthCommitteeHotCertificate",
			Argument: "coldCredential",
		}
	}
	if hotCredential == nil {
		return nil, NilArgumentError{
			Function: "NewAuthCommitteeHotCertificate",
			Argument: "hotCredential",
		}
	}
	return &AuthCommitteeHotCertificate{
		CertType:       CertificateTypeAuthCommitteeHot,
		ColdCredential: *coldCredential,
		HotCredential:  *hotCredential,
	}, nil
}

func (c AuthCommitteeHotCertificate) isCertificate() {}

func (c *AuthCommitteeHotCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "auth_committee_hot_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 3)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeAuthCommitteeHot,
		CertificateTypeName,
	); err != nil {
		return err
	}
	coldCred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	hotCred, err := decodeCredentialField(elems[2])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 3); err != nil {
		return err
	}
	c.CertType = CertificateTypeAuthCommitteeHot
	c.ColdCredential = coldCred
	c.HotCredential = hotCred
	c.SetCbor(cborData)
	return nil
}

func (c *AuthCommitteeHotCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	coldCred, err := c.ColdCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	hotCred, err := c.HotCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_AuthCommitteeHotCert{
			AuthCommitteeHotCert: &utxorpc.AuthCommitteeHotCert{
				CommitteeColdCredential: coldCred,
				CommitteeHotCredential:  hotCred,
			},
		},
	}, nil
}

func (c *AuthCommitteeHotCertificate) Type() uint {
	return c.CertType
}

type ResignCommitteeColdCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType       uint
	ColdCredential Credential
	Anchor         *Anchor
}

func NewResignCommitteeColdCertificate(
	coldCredential *Credential,
	anchor *Anchor,
) (*ResignCommitteeColdCertificate, error) {
	if coldCredential == nil {
		return nil, NilArgumentError{
			Function: "NewResignCommitteeColdCertificate",
			Argument: "coldCredential",
		}
	}
	return &ResignCommitteeColdCertificate{
		CertType:       CertificateTypeResignCommitteeCold,
		ColdCredential: *coldCredential,
		Anchor:         anchor,
	}, nil
}

func (c ResignCommitteeColdCertificate) isCertificate() {}

func (c *ResignCommitteeColdCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "resign_committee_cold_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 3)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeResignCommitteeCold,
		CertificateTypeName,
	); err != nil {
		return err
	}
	coldCred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	anchor, err := decodeOptionalAnchor(elems[2])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 3); err != nil {
		return err
	}
	c.CertType = CertificateTypeResignCommitteeCold
	c.ColdCredential = coldCred
	c.Anchor = anchor
	c.SetCbor(cborData)
	return nil
}

// SetAnchor replaces the anchor. Absence can only be established at
// construction; a setter cannot reintroduce it
func (c *ResignCommitteeColdCertificate) SetAnchor(anchor *Anchor) error {
	if anchor == nil {
		return NilArgumentError{
			Function: "ResignCommitteeColdCertificate.SetAnchor",
			Argument: "anchor",
		}
	}
	c.Anchor = anchor
	return nil
}

func (c *ResignCommitteeColdCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	coldCred, err := c.ColdCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_ResignCommitteeColdCert{
			ResignCommitteeColdCert: &utxorpc.ResignCommitteeColdCert{
				CommitteeColdCredential: coldCred,
				Anchor:                  c.Anchor.Utxorpc(),
			},
		},
	}, nil
}

func (c *ResignCommitteeColdCertificate) Type() uint {
	return c.CertType
}

type RegistrationDrepCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType       uint
	DrepCredential Credential
	Amount         int64
	Anchor         *Anchor
}

func NewRegistrationDrepCertificate(
	drepCredential *Credential,
	amount int64,
	anchor *Anchor,
) (*RegistrationDrepCertificate, error) {
	if drepCredential == nil {
		return nil, NilArgumentError{
			Function: "NewRegistrationDrepCertificate",
			Argument: "drepCredential",
		}
	}
	return &RegistrationDrepCertificate{
		CertType:       CertificateTypeRegistrationDrep,
		DrepCredential: *drepCredential,
		Amount:         amount,
		Anchor:         anchor,
	}, nil
}

func (c RegistrationDrepCertificate) isCertificate() {}

func (c *RegistrationDrepCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "registration_drep_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 4)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeRegistrationDrep,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	amount, err := decodeInt64Field(entity, "amount", elems[2])
	if err != nil {
		return err
	}
	anchor, err := decodeOptionalAnchor(elems[3])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 4); err != nil {
		return err
	}
	c.CertType = CertificateTypeRegistrationDrep
	c.DrepCredential = cred
	c.Amount = amount
	c.Anchor = anchor
	c.SetCbor(cborData)
	return nil
}

func (c *RegistrationDrepCertificate) SetAnchor(anchor *Anchor) error {
	if anchor == nil {
		return NilArgumentError{
			Function: "RegistrationDrepCertificate.SetAnchor",
			Argument: "anchor",
		}
	}
	c.Anchor = anchor
	return nil
}

func (c *RegistrationDrepCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	drepCred, err := c.DrepCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_RegDrepCert{
			RegDrepCert: &utxorpc.RegDRepCert{
				DrepCredential: drepCred,
				Anchor:         c.Anchor.Utxorpc(),
			},
		},
	}, nil
}

func (c *RegistrationDrepCertificate) Type() uint {
	return c.CertType
}

type DeregistrationDrepCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType       uint
	DrepCredential Credential
	Amount         int64
}

func NewDeregistrationDrepCertificate(
	drepCredential *Credential,
	amount int64,
) (*DeregistrationDrepCertificate, error) {
	if drepCredential == nil {
		return nil, NilArgumentError{
			Function: "NewDeregistrationDrepCertificate",
			Argument: "drepCredential",
		}
	}
	return &DeregistrationDrepCertificate{
		CertType:       CertificateTypeDeregistrationDrep,
		DrepCredential: *drepCredential,
		Amount:         amount,
	}, nil
}

func (c DeregistrationDrepCertificate) isCertificate() {}

func (c *DeregistrationDrepCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "deregistration_drep_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 3)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeDeregistrationDrep,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	amount, err := decodeInt64Field(entity, "amount", elems[2])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 3); err != nil {
		return err
	}
	c.CertType = CertificateTypeDeregistrationDrep
	c.DrepCredential = cred
	c.Amount = amount
	c.SetCbor(cborData)
	return nil
}

func (c *DeregistrationDrepCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	drepCred, err := c.DrepCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_UnregDrepCert{
			UnregDrepCert: &utxorpc.UnRegDRepCert{
				DrepCredential: drepCred,
			},
		},
	}, nil
}

func (c *DeregistrationDrepCertificate) Type() uint {
	return c.CertType
}

type UpdateDrepCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType       uint
	DrepCredential Credential
	Anchor         *Anchor
}

func NewUpdateDrepCertificate(
	drepCredential *Credential,
	anchor *Anchor,
) (*UpdateDrepCertificate, error) {
	if drepCredential == nil {
		return nil, NilArgumentError{
			Function: "NewUpdateDrepCertificate",
			Argument: "drepCredential",
		}
	}
	return &UpdateDrepCertificate{
		CertType:       CertificateTypeUpdateDrep,
		DrepCredential: *drepCredential,
		Anchor:         anchor,
	}, nil
}

func (c UpdateDrepCertificate) isCertificate() {}

func (c *UpdateDrepCertificate) UnmarshalCBOR(cborData []byte) error {
	const entity = "update_drep_cert"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 3)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		entity,
		"cert_type",
		elems[0],
		CertificateTypeUpdateDrep,
		CertificateTypeName,
	); err != nil {
		return err
	}
	cred, err := decodeCredentialField(elems[1])
	if err != nil {
		return err
	}
	anchor, err := decodeOptionalAnchor(elems[2])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 3); err != nil {
		return err
	}
	c.CertType = CertificateTypeUpdateDrep
	c.DrepCredential = cred
	c.Anchor = anchor
	c.SetCbor(cborData)
	return nil
}

func (c *UpdateDrepCertificate) SetDrepCredential(
	drepCredential *Credential,
) error {
	if drepCredential == nil {
		return NilArgumentError{
			Function: "UpdateDrepCertificate.SetDrepCredential",
			Argument: "drepCredential",
		}
	}
	c.DrepCredential = *drepCredential
	return nil
}

func (c *UpdateDrepCertificate) SetAnchor(anchor *Anchor) error {
	if anchor == nil {
		return NilArgumentError{
			Function: "UpdateDrepCertificate.SetAnchor",
			Argument: "anchor",
		}
	}
	c.Anchor = anchor
	return nil
}

func (c *UpdateDrepCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	drepCred, err := c.DrepCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_UpdateDrepCert{
			UpdateDrepCert: &utxorpc.UpdateDRepCert{
				DrepCredential: drepCred,
				Anchor:         c.Anchor.Utxorpc(),
			},
		},
	}, nil
}

func (c *UpdateDrepCertificate) Type() uint {
	return c.CertType
}
