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
	"testing"

	"github.com/blinklabs-io/goledger/cbor"
	"github.com/blinklabs-io/plutigo/data"
	"github.com/stretchr/testify/assert"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

func TestCredentialRoundTrip(t *testing.T) {
	testDefs := []struct {
		name     string
		cborHex  string
		credType uint
	}{
		{
			name:     "AddrKeyHash",
			cborHex:  "8200581c" + testHash28Hex,
			credType: CredentialTypeAddrKeyHash,
		},
		{
			name:     "ScriptHash",
			cborHex:  "8201581c" + testHash28Hex,
			credType: CredentialTypeScriptHash,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data, err := hex.DecodeString(testDef.cborHex)
			if err != nil {
				t.Fatalf("failed to decode test hex: %s", err)
			}
			var cred Credential
			if _, err := cbor.Decode(data, &cred); err != nil {
				t.Fatalf("unexpected error decoding credential: %s", err)
			}
			assert.Equal(t, testDef.credType, cred.CredType)
			assert.Equal(t, testDef.cborHex, hex.EncodeToString(cred.Cbor()))
			encoded, err := cbor.Encode(&cred)
			if err != nil {
				t.Fatalf("unexpected error encoding credential: %s", err)
			}
			assert.Equal(t, testDef.cborHex, hex.EncodeToString(encoded))
		})
	}
}

func TestCredentialDecodeUnknownType(t *testing.T) {
	// [2, h'...']
	data, _ := hex.DecodeString("8202581c" + testHash28Hex)
	var cred Credential
	_, err := cbor.Decode(data, &cred)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	assert.True(t, errors.Is(err, cbor.ErrSchemaViolation))
	assert.Contains(
		t,
		err.Error(),
		"found 2, expected one of: 0 (addr_key_hash), 1 (script_hash)",
	)
}

func TestCredentialDecodeTrailingElement(t *testing.T) {
	// [0, h'...', 0]
	data, _ := hex.DecodeString("8300581c" + testHash28Hex + "00")
	var cred Credential
	_, err := cbor.Decode(data, &cred)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	assert.True(t, errors.Is(err, cbor.ErrSchemaViolation))
	assert.Contains(t, err.Error(), "trailing")
}

func TestNewCredential(t *testing.T) {
	hash := make([]byte, 28)
	cred, err := NewCredential(CredentialTypeScriptHash, hash)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	assert.Equal(t, uint(CredentialTypeScriptHash), cred.CredType)

	_, err = NewCredential(CredentialTypeAddrKeyHash, nil)
	assert.True(t, errors.Is(err, ErrNilArgument))

	_, err = NewCredential(7, hash)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	assert.True(t, errors.Is(err, cbor.ErrSchemaViolation))
}

func TestCredentialEqual(t *testing.T) {
	hashA := make([]byte, 28)
	hashB := make([]byte, 28)
	hashB[0] = 0x01
	credA, _ := NewCredential(CredentialTypeAddrKeyHash, hashA)
	credA2, _ := NewCredential(CredentialTypeAddrKeyHash, hashA)
	credB, _ := NewCredential(CredentialTypeAddrKeyHash, hashB)
	credC, _ := NewCredential(CredentialTypeScriptHash, hashA)
	assert.True(t, credA.Equal(credA2))
	assert.False(t, credA.Equal(credB))
	assert.False(t, credA.Equal(credC))
	assert.False(t, credA.Equal(nil))
}

func TestAnchorRoundTrip(t *testing.T) {
	data, err := hex.DecodeString(testAnchorHex)
	if err != nil {
		t.Fatalf("failed to decode test hex: %s", err)
	}
	var anchor Anchor
	if _, err := cbor.Decode(data, &anchor); err != nil {
		t.Fatalf("unexpected error decoding anchor: %s", err)
	}
	assert.Equal(t, "https://example.com", anchor.Url)
	encoded, err := cbor.Encode(&anchor)
	if err != nil {
		t.Fatalf("unexpected error encoding anchor: %s", err)
	}
	assert.Equal(t, testAnchorHex, hex.EncodeToString(encoded))
}

func TestAnchorDecodeWrongShape(t *testing.T) {
	// [url] without the data hash
	data, _ := hex.DecodeString(
		"8173" + hex.EncodeToString([]byte("https://example.com")),
	)
	var anchor Anchor
	_, err := cbor.Decode(data, &anchor)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	assert.True(t, errors.Is(err, cbor.ErrSchemaViolation))
	assert.Contains(t, err.Error(), "anchor")
}

func TestCredentialUtxorpc(t *testing.T) {
	hash := make([]byte, 28)
	hash[0] = 0x11
	testDefs := []struct {
		name     string
		credType uint
	}{
		{
			name:     "AddrKeyHash",
			credType: CredentialTypeAddrKeyHash,
		},
		{
			name:     "ScriptHash",
			credType: CredentialTypeScriptHash,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			cred, err := NewCredential(testDef.credType, hash)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			rpc, err := cred.Utxorpc()
			assert.NoError(t, err)
			if !assert.NotNil(t, rpc) {
				t.FailNow()
			}
			switch testDef.credType {
			case CredentialTypeAddrKeyHash:
				keyHash, ok := rpc.StakeCredential.(*utxorpc.StakeCredential_AddrKeyHash)
				if !ok {
					t.Fatalf("unexpected stake credential type %T", rpc.StakeCredential)
				}
				assert.Equal(t, hash, keyHash.AddrKeyHash)
			case CredentialTypeScriptHash:
				scriptHash, ok := rpc.StakeCredential.(*utxorpc.StakeCredential_ScriptHash)
				if !ok {
					t.Fatalf("unexpected stake credential type %T", rpc.StakeCredential)
				}
				assert.Equal(t, hash, scriptHash.ScriptHash)
			}
		})
	}
}

func TestCredentialUtxorpcUnknownType(t *testing.T) {
	cred := &Credential{
		CredType: 7,
	}
	_, err := cred.Utxorpc()
	if err == nil {
		t.Fatalf("expected error converting credential, got none")
	}
	assert.ErrorIs(t, err, cbor.ErrSchemaViolation)
}

func TestCredentialToPlutusData(t *testing.T) {
	hash := make([]byte, 28)
	hash[0] = 0x11
	testDefs := []struct {
		name         string
		credType     uint
		expectedData data.PlutusData
	}{
		{
			name:         "AddrKeyHash",
			credType:     CredentialTypeAddrKeyHash,
			expectedData: data.NewConstr(0, data.NewByteString(hash)),
		},
		{
			name:         "ScriptHash",
			credType:     CredentialTypeScriptHash,
			expectedData: data.NewConstr(1, data.NewByteString(hash)),
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			cred, err := NewCredential(testDef.credType, hash)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			result := cred.ToPlutusData()
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

func TestAnchorUtxorpc(t *testing.T) {
	hash := make([]byte, 32)
	hash[0] = 0x22
	anchor, err := NewAnchor("https://example.com", hash)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	rpc := anchor.Utxorpc()
	if !assert.NotNil(t, rpc) {
		t.FailNow()
	}
	assert.Equal(t, "https://example.com", rpc.Url)
	assert.Equal(t, hash, rpc.ContentHash)

	var nilAnchor *Anchor
	assert.Nil(t, nilAnchor.Utxorpc())
}
