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
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

// Anchor links certificate metadata to an off-chain document by URL and
// content hash
type Anchor struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Url      string
	DataHash Blake2b256
}

func NewAnchor(url string, dataHash []byte) (*Anchor, error) {
	if dataHash == nil {
		return nil, NilArgumentError{
			Function: "NewAnchor",
			Argument: "dataHash",
		}
	}
	return &Anchor{
		Url:      url,
		DataHash: NewBlake2b256(dataHash),
	}, nil
}

func (a *Anchor) UnmarshalCBOR(cborData []byte) error {
	elems, err := cbor.ExpectArrayOfLength("anchor", cborData, 2)
	if err != nil {
		return err
	}
	var url string
	if _, err := cbor.Decode(elems[0], &url); err != nil {
		return cbor.SchemaViolationError{
			Entity:  "anchor",
			Field:   "url",
			Message: err.Error(),
		}
	}
	var dataHash []byte
	if _, err := cbor.Decode(elems[1], &dataHash); err != nil {
		return cbor.SchemaViolationError{
			Entity:  "anchor",
			Field:   "data_hash",
			Message: err.Error(),
		}
	}
	if err := cbor.ExpectEndOfArray("anchor", elems, 2); err != nil {
		return err
	}
	a.Url = url
	a.DataHash = NewBlake2b256(dataHash)
	a.SetCbor(cborData)
	return nil
}

func (a *Anchor) Equal(other *Anchor) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Url == other.Url && a.DataHash == other.DataHash
}

func (a *Anchor) Utxorpc() *utxorpc.Anchor {
	if a == nil {
		return nil
	}
	return &utxorpc.Anchor{
		Url:         a.Url,
		ContentHash: a.DataHash[:],
	}
}
