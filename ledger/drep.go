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
	"fmt"

	"github.com/blinklabs-io/goledger/cbor"
	"github.com/blinklabs-io/plutigo/data"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

const (
	DrepTypeAddrKeyHash  = 0
	DrepTypeScriptHash   = 1
	DrepTypeAbstain      = 2
	DrepTypeNoConfidence = 3
)

var drepTypes = []uint64{
	DrepTypeAddrKeyHash,
	DrepTypeScriptHash,
	DrepTypeAbstain,
	DrepTypeNoConfidence,
}

func DrepTypeName(drepType uint64) string {
	switch drepType {
	case DrepTypeAddrKeyHash:
		return "addr_key_hash"
	case DrepTypeScriptHash:
		return "script_hash"
	case DrepTypeAbstain:
		return "abstain"
	case DrepTypeNoConfidence:
		return "no_confidence"
	}
	return "unknown"
}

// CIP-0129 header byte values for bech32 drep identifiers
const (
	drepHeaderKeyHash    = 0x22
	drepHeaderScriptHash = 0x23
)

// Drep identifies a vote delegation target: a registered drep by credential,
// or one of the predefined always-abstain / no-confidence options
type Drep struct {
	cbor.DecodeStoreCbor
	Type       int
	Credential []byte
}

func (d *Drep) UnmarshalCBOR(cborData []byte) error {
	drepType, err := cbor.DecodeIdFromList(cborData)
	if err != nil {
		return cbor.SchemaViolationError{
			Entity:  "drep",
			Field:   "type",
			Message: err.Error(),
		}
	}
	switch drepType {
	case DrepTypeAddrKeyHash, DrepTypeScriptHash:
		elems, err := cbor.ExpectArrayOfLength("drep", cborData, 2)
		if err != nil {
			return err
		}
		var credential []byte
		if _, err := cbor.Decode(elems[1], &credential); err != nil {
			return cbor.SchemaViolationError{
				Entity:  "drep",
				Field:   "credential",
				Message: err.Error(),
			}
		}
		if err := cbor.ExpectEndOfArray("drep", elems, 2); err != nil {
			return err
		}
		d.Type = drepType
		d.Credential = credential
	case DrepTypeAbstain, DrepTypeNoConfidence:
		elems, err := cbor.ExpectArrayOfLength("drep", cborData, 1)
		if err != nil {
			return err
		}
		if err := cbor.ExpectEndOfArray("drep", elems, 1); err != nil {
			return err
		}
		d.Type = drepType
		d.Credential = nil
	default:
		return cbor.NewUnknownEnumError(
			"drep",
			"type",
			// drepType is known to be non-negative here
			uint64(drepType), // #nosec G115
			drepTypes,
			DrepTypeName,
		)
	}
	d.SetCbor(cborData)
	return nil
}

func (d Drep) MarshalCBOR() ([]byte, error) {
	switch d.Type {
	case DrepTypeAddrKeyHash, DrepTypeScriptHash:
		return cbor.Encode([]any{d.Type, d.Credential})
	default:
		return cbor.Encode([]any{d.Type})
	}
}

func (d *Drep) Equal(other *Drep) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Type == other.Type && bytes.Equal(d.Credential, other.Credential)
}

// String returns the CIP-0129 bech32 representation for credential-backed
// dreps and the CIP-0129 keywords for the predefined options
func (d Drep) String() string {
	switch d.Type {
	case DrepTypeAddrKeyHash:
		return bech32Encode(
			"drep",
			append([]byte{drepHeaderKeyHash}, d.Credential...),
		)
	case DrepTypeScriptHash:
		return bech32Encode(
			"drep",
			append([]byte{drepHeaderScriptHash}, d.Credential...),
		)
	case DrepTypeAbstain:
		return "drep_abstain"
	case DrepTypeNoConfidence:
		return "drep_no_confidence"
	}
	return fmt.Sprintf("drep_unknown_%d", d.Type)
}

func (d *Drep) Utxorpc() (*utxorpc.DRep, error) {
	switch d.Type {
	case DrepTypeAddrKeyHash:
		return &utxorpc.DRep{
			Drep: &utxorpc.DRep_AddrKeyHash{AddrKeyHash: d.Credential},
		}, nil
	case DrepTypeScriptHash:
		return &utxorpc.DRep{
			Drep: &utxorpc.DRep_ScriptHash{ScriptHash: d.Credential},
		}, nil
	case DrepTypeAbstain:
		return &utxorpc.DRep{
			Drep: &utxorpc.DRep_Abstain{Abstain: true},
		}, nil
	case DrepTypeNoConfidence:
		return &utxorpc.DRep{
			Drep: &utxorpc.DRep_NoConfidence{NoConfidence: true},
		}, nil
	default:
		return nil, cbor.NewUnknownEnumError(
			"drep",
			"type",
			// Type is known to be non-negative here
			uint64(d.Type), // #nosec G115
			drepTypes,
			DrepTypeName,
		)
	}
}

func (d *Drep) ToPlutusData() data.PlutusData {
	switch d.Type {
	case DrepTypeAddrKeyHash:
		return data.NewConstr(
			0,
			data.NewConstr(
				0,
				data.NewByteString(d.Credential),
			),
		)
	case DrepTypeScriptHash:
		return data.NewConstr(
			0,
			data.NewConstr(
				1,
				data.NewByteString(d.Credential),
			),
		)
	case DrepTypeAbstain:
		return data.NewConstr(1)
	case DrepTypeNoConfidence:
		return data.NewConstr(2)
	}
	return nil
}
