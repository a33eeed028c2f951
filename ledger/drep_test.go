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
	"encoding/hex"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/blinklabs-io/goledger/cbor"
	"github.com/blinklabs-io/plutigo/data"
	"github.com/stretchr/testify/assert"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

// TestDrepString tests CIP-0129 bech32 encoding for DRep identifiers.
func TestDrepString(t *testing.T) {
	var zeroHash = make([]byte, 28)
	var sequentialHash = make([]byte, 28)
	for i := range sequentialHash {
		sequentialHash[i] = byte(i)
	}

	testCases := []struct {
		name string
		drep Drep
		want string
	}{
		{
			name: "CIP0129KeyHashZero",
			drep: Drep{
				Type:       DrepTypeAddrKeyHash,
				Credential: zeroHash,
			},
			want: "drep1ygqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq7vlc9n",
		},
		{
			name: "CIP0129ScriptHashZero",
			drep: Drep{
				Type:       DrepTypeScriptHash,
				Credential: zeroHash,
			},
			want: "drep1yvqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq770f95",
		},
		{
			name: "CIP0129KeyHashSequential",
			drep: Drep{
				Type:       DrepTypeAddrKeyHash,
				Credential: sequentialHash,
			},
			// Uses CIP-0129 header byte encoding (0x22 for key hash)
			want: "drep1ygqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xc6zv3a4",
		},
		{
			name: "CIP0129Abstain",
			drep: Drep{
				Type: DrepTypeAbstain,
			},
			want: "drep_abstain",
		},
		{
			name: "CIP0129NoConfidence",
			drep: Drep{
				Type: DrepTypeNoConfidence,
			},
			want: "drep_no_confidence",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.drep.String()
			assert.Equal(t, tc.want, result)
		})
	}

	t.Run("UnknownType", func(t *testing.T) {
		drep := Drep{Type: 99}
		assert.Equal(t, "drep_unknown_99", drep.String())
	})
}

func TestDrepRoundTrip(t *testing.T) {
	testDefs := []struct {
		name     string
		cborHex  string
		drepType int
	}{
		{
			name:     "AddrKeyHash",
			cborHex:  "8200581c" + strings.Repeat("00", 28),
			drepType: DrepTypeAddrKeyHash,
		},
		{
			name:     "ScriptHash",
			cborHex:  "8201581c" + strings.Repeat("00", 28),
			drepType: DrepTypeScriptHash,
		},
		{
			name:     "Abstain",
			cborHex:  "8102",
			drepType: DrepTypeAbstain,
		},
		{
			name:     "NoConfidence",
			cborHex:  "8103",
			drepType: DrepTypeNoConfidence,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data, err := hex.DecodeString(testDef.cborHex)
			if err != nil {
				t.Fatalf("failed to decode test hex: %s", err)
			}
			var drep Drep
			if _, err := cbor.Decode(data, &drep); err != nil {
				t.Fatalf("unexpected error decoding drep: %s", err)
			}
			assert.Equal(t, testDef.drepType, drep.Type)
			encoded, err := cbor.Encode(&drep)
			if err != nil {
				t.Fatalf("unexpected error encoding drep: %s", err)
			}
			assert.Equal(t, testDef.cborHex, hex.EncodeToString(encoded))
		})
	}
}

func TestDrepDecodeUnknownType(t *testing.T) {
	// [4]
	data, _ := hex.DecodeString("8104")
	var drep Drep
	_, err := cbor.Decode(data, &drep)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	assert.True(t, errors.Is(err, cbor.ErrSchemaViolation))
	assert.Contains(t, err.Error(), "found 4, expected one of")
	assert.Contains(t, err.Error(), "abstain")
}

func TestDrepDecodeTrailingElement(t *testing.T) {
	// [2, 0]
	data, _ := hex.DecodeString("820200")
	var drep Drep
	_, err := cbor.Decode(data, &drep)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	assert.True(t, errors.Is(err, cbor.ErrSchemaViolation))
	assert.Contains(t, err.Error(), "trailing")
}

func TestDrepEqual(t *testing.T) {
	keyHash := make([]byte, 28)
	drepA := Drep{Type: DrepTypeAddrKeyHash, Credential: keyHash}
	drepB := Drep{Type: DrepTypeAddrKeyHash, Credential: keyHash}
	drepC := Drep{Type: DrepTypeScriptHash, Credential: keyHash}
	assert.True(t, drepA.Equal(&drepB))
	assert.False(t, drepA.Equal(&drepC))
	assert.False(t, drepA.Equal(nil))
}

func TestDrepUtxorpc(t *testing.T) {
	hash := make([]byte, 28)
	hash[0] = 0x33
	t.Run("AddrKeyHash", func(t *testing.T) {
		drep := Drep{Type: DrepTypeAddrKeyHash, Credential: hash}
		rpc, err := drep.Utxorpc()
		assert.NoError(t, err)
		keyHash, ok := rpc.Drep.(*utxorpc.DRep_AddrKeyHash)
		if !ok {
			t.Fatalf("unexpected drep type %T", rpc.Drep)
		}
		assert.Equal(t, hash, keyHash.AddrKeyHash)
	})
	t.Run("ScriptHash", func(t *testing.T) {
		drep := Drep{Type: DrepTypeScriptHash, Credential: hash}
		rpc, err := drep.Utxorpc()
		assert.NoError(t, err)
		scriptHash, ok := rpc.Drep.(*utxorpc.DRep_ScriptHash)
		if !ok {
			t.Fatalf("unexpected drep type %T", rpc.Drep)
		}
		assert.Equal(t, hash, scriptHash.ScriptHash)
	})
	t.Run("Abstain", func(t *testing.T) {
		drep := Drep{Type: DrepTypeAbstain}
		rpc, err := drep.Utxorpc()
		assert.NoError(t, err)
		abstain, ok := rpc.Drep.(*utxorpc.DRep_Abstain)
		if !ok {
			t.Fatalf("unexpected drep type %T", rpc.Drep)
		}
		assert.True(t, abstain.Abstain)
	})
	t.Run("NoConfidence", func(t *testing.T) {
		drep := Drep{Type: DrepTypeNoConfidence}
		rpc, err := drep.Utxorpc()
		assert.NoError(t, err)
		noConfidence, ok := rpc.Drep.(*utxorpc.DRep_NoConfidence)
		if !ok {
			t.Fatalf("unexpected drep type %T", rpc.Drep)
		}
		assert.True(t, noConfidence.NoConfidence)
	})
	t.Run("UnknownType", func(t *testing.T) {
		drep := Drep{Type: 99}
		_, err := drep.Utxorpc()
		if err == nil {
			t.Fatalf("expected error converting drep, got none")
		}
		assert.ErrorIs(t, err, cbor.ErrSchemaViolation)
	})
}

func TestDrepToPlutusData(t *testing.T) {
	hash := make([]byte, 28)
	hash[0] = 0x33
	testDefs := []struct {
		name         string
		drep         Drep
		expectedData data.PlutusData
	}{
		{
			name: "AddrKeyHash",
			drep: Drep{Type: DrepTypeAddrKeyHash, Credential: hash},
			expectedData: data.NewConstr(
				0,
				data.NewConstr(0, data.NewByteString(hash)),
			),
		},
		{
			name: "ScriptHash",
			drep: Drep{Type: DrepTypeScriptHash, Credential: hash},
			expectedData: data.NewConstr(
				0,
				data.NewConstr(1, data.NewByteString(hash)),
			),
		},
		{
			name:         "Abstain",
			drep:         Drep{Type: DrepTypeAbstain},
			expectedData: data.NewConstr(1),
		},
		{
			name:         "NoConfidence",
			drep:         Drep{Type: DrepTypeNoConfidence},
			expectedData: data.NewConstr(2),
		},
		{
			name:         "UnknownType",
			drep:         Drep{Type: 99},
			expectedData: nil,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			result := testDef.drep.ToPlutusData()
			if !reflect.DeepEqual(result, testDef.expectedData) {
				t.Errorf(
					"ToPlutusData() = %#v, want %#v",
					result,
					testDef.expectedData,
				)
			}
		})
	}
}
