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
	"github.com/blinklabs-io/goledger/cbor"
	"github.com/blinklabs-io/plutigo/data"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

const (
	CredentialTypeAddrKeyHash = 0
	CredentialTypeScriptHash  = 1
)

var credentialTypes = []uint64{
	CredentialTypeAddrKeyHash,
	CredentialTypeScriptHash,
}

func CredentialTypeName(credType uint64) string {
	switch credType {
	case CredentialTypeAddrKeyHash:
		return "addr_key_hash"
	case CredentialTypeScriptHash:
		return "script_hash"
	}
	return "unknown"
}

// Credential identifies a key or script hash controlling a stake, drep, or
// committee role. On the wire it is an array of credential type and hash
type Credential struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CredType   uint
	Credential Blake2b224
}

// NewCredential creates a credential from a type and hash bytes
func NewCredential(credType uint, hash []byte) (*Credential, error) {
	if hash == nil {
		return nil, NilArgumentError{
			Function: "NewCredential",
			Argument: "hash",
		}
	}
	if uint64(credType) != CredentialTypeAddrKeyHash &&
		uint64(credType) != CredentialTypeScriptHash {
		return nil, cbor.NewUnknownEnumError(
			"credential",
			"type",
			uint64(credType),
			credentialTypes,
			CredentialTypeName,
		)
	}
	return &Credential{
		CredType:   credType,
		Credential: NewBlake2b224(hash),
	}, nil
}

func (c *Credential) UnmarshalCBOR(cborData []byte) error {
	elems, err := cbor.ExpectArrayOfLength("credential", cborData, 2)
	if err != nil {
		return err
	}
	var credType uint64
	if _, err := cbor.Decode(elems[0], &credType); err != nil {
		return cbor.SchemaViolationError{
			Entity:  "credential",
			Field:   "type",
			Message: err.Error(),
		}
	}
	if credType != CredentialTypeAddrKeyHash &&
		credType != CredentialTypeScriptHash {
		return cbor.NewUnknownEnumError(
			"credential",
			"type",
			credType,
			credentialTypes,
			CredentialTypeName,
		)
	}
	var hash []byte
	if _, err := cbor.Decode(elems[1], &hash); err != nil {
		return cbor.SchemaViolationError{
			Entity:  "credential",
			Field:   "hash",
			Message: err.Error(),
		}
	}
	if err := cbor.ExpectEndOfArray("credential", elems, 2); err != nil {
		return err
	}
	c.CredType = uint(credType)
	c.Credential = NewBlake2b224(hash)
	c.SetCbor(cborData)
	return nil
}

func (c *Credential) Hash() Blake2b224 {
	return Blake2b224Hash(c.Credential[:])
}

func (c *Credential) Equal(other *Credential) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.CredType == other.CredType && c.Credential == other.Credential
}

func (c *Credential) Utxorpc() (*utxorpc.StakeCredential, error) {
	ret := &utxorpc.StakeCredential{}
	switch c.CredType {
	case CredentialTypeAddrKeyHash:
		ret.StakeCredential = &utxorpc.StakeCredential_AddrKeyHash{
			AddrKeyHash: c.Credential[:],
		}
	case CredentialTypeScriptHash:
		ret.StakeCredential = &utxorpc.StakeCredential_ScriptHash{
			ScriptHash: c.Credential[:],
		}
	default:
		return nil, cbor.NewUnknownEnumError(
			"credential",
			"type",
			uint64(c.CredType),
			credentialTypes,
			CredentialTypeName,
		)
	}
	return ret, nil
}

func (c *Credential) ToPlutusData() data.PlutusData {
	return data.NewConstr(
		uint(c.CredType),
		data.NewByteString(c.Credential[:]),
	)
}
