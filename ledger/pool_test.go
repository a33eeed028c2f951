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
	"net"
	"strings"
	"testing"

	"github.com/blinklabs-io/goledger/cbor"
	"github.com/stretchr/testify/assert"
)

func TestPoolRelayRoundTrip(t *testing.T) {
	testDefs := []struct {
		name      string
		cborHex   string
		relayType int
		check     func(*testing.T, *PoolRelay)
	}{
		{
			name: "SingleHostAddress",
			// [0, 3001, h'7f000001', null]
			cborHex:   "8400190bb9447f000001f6",
			relayType: PoolRelayTypeSingleHostAddress,
			check: func(t *testing.T, relay *PoolRelay) {
				if relay.Port == nil || relay.Ipv4 == nil {
					t.Fatal("expected port and ipv4")
				}
				assert.Equal(t, uint32(3001), *relay.Port)
				assert.Equal(t, "127.0.0.1", relay.Ipv4.String())
				assert.Nil(t, relay.Ipv6)
			},
		},
		{
			name: "SingleHostName",
			// [1, null, "relay.example.com"]
			cborHex: "8301f671" +
				hex.EncodeToString([]byte("relay.example.com")),
			relayType: PoolRelayTypeSingleHostName,
			check: func(t *testing.T, relay *PoolRelay) {
				assert.Nil(t, relay.Port)
				if relay.Hostname == nil {
					t.Fatal("expected hostname")
				}
				assert.Equal(t, "relay.example.com", *relay.Hostname)
			},
		},
		{
			name: "MultiHostName",
			// [2, "_relay._tcp.example.com"]
			cborHex: "820277" +
				hex.EncodeToString([]byte("_relay._tcp.example.com")),
			relayType: PoolRelayTypeMultiHostName,
			check: func(t *testing.T, relay *PoolRelay) {
				if relay.Hostname == nil {
					t.Fatal("expected hostname")
				}
				assert.Equal(t, "_relay._tcp.example.com", *relay.Hostname)
			},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data, err := hex.DecodeString(testDef.cborHex)
			if err != nil {
				t.Fatalf("failed to decode test hex: %s", err)
			}
			var relay PoolRelay
			if _, err := cbor.Decode(data, &relay); err != nil {
				t.Fatalf("unexpected error decoding pool relay: %s", err)
			}
			assert.Equal(t, testDef.relayType, relay.Type)
			testDef.check(t, &relay)
			encoded, err := cbor.Encode(&relay)
			if err != nil {
				t.Fatalf("unexpected error encoding pool relay: %s", err)
			}
			assert.Equal(t, testDef.cborHex, hex.EncodeToString(encoded))
		})
	}
}

func TestPoolRelayDecodeUnknownType(t *testing.T) {
	// [3, "x"]
	data, _ := hex.DecodeString("82036178")
	var relay PoolRelay
	_, err := cbor.Decode(data, &relay)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	assert.True(t, errors.Is(err, cbor.ErrSchemaViolation))
	assert.Contains(t, err.Error(), "found 3, expected one of")
	assert.Contains(t, err.Error(), "single_host_address")
}

func TestPoolMetadataRoundTrip(t *testing.T) {
	// [url, metadata_hash]
	cborHex := "8273" +
		hex.EncodeToString([]byte("https://example.com")) +
		"5820" + testHash32Hex
	data, _ := hex.DecodeString(cborHex)
	var metadata PoolMetadata
	if _, err := cbor.Decode(data, &metadata); err != nil {
		t.Fatalf("unexpected error decoding pool metadata: %s", err)
	}
	assert.Equal(t, "https://example.com", metadata.Url)
	encoded, err := cbor.Encode(&metadata)
	if err != nil {
		t.Fatalf("unexpected error encoding pool metadata: %s", err)
	}
	assert.Equal(t, cborHex, hex.EncodeToString(encoded))
}

func TestPoolMetadataUtxorpc(t *testing.T) {
	pm := &PoolMetadata{
		Url:  "https://example.com/poolmeta.json",
		Hash: NewBlake2b256([]byte{1, 2, 3, 4}),
	}
	rpc, err := pm.Utxorpc()
	assert.NoError(t, err)
	if !assert.NotNil(t, rpc) {
		t.FailNow()
	}
	assert.Equal(t, pm.Url, rpc.Url)
	assert.Equal(t, pm.Hash[:], rpc.Hash)
}

func TestPoolMetadataUtxorpcNil(t *testing.T) {
	var pm *PoolMetadata
	rpc, err := pm.Utxorpc()
	assert.NoError(t, err)
	assert.Nil(t, rpc)
}

func TestPoolRelayUtxorpc(t *testing.T) {
	port := uint32(3001)
	ipv4 := net.ParseIP("127.0.0.1")
	relay := &PoolRelay{
		Type: PoolRelayTypeSingleHostAddress,
		Port: &port,
		Ipv4: &ipv4,
	}
	rpc, err := relay.Utxorpc()
	assert.NoError(t, err)
	if !assert.NotNil(t, rpc) {
		t.FailNow()
	}
	assert.Equal(t, uint32(3001), rpc.Port)
	assert.Equal(t, []byte(ipv4), rpc.IpV4)
	assert.Nil(t, rpc.IpV6)
}

func TestPoolMetadataDecodeWrongShape(t *testing.T) {
	urlHex := hex.EncodeToString([]byte("https://example.com"))
	hashHex := "5820" + strings.Repeat("00", 32)
	testDefs := []struct {
		name    string
		cborHex string
	}{
		{
			name:    "TrailingElement",
			cborHex: "8373" + urlHex + hashHex + "00",
		},
		{
			name:    "MissingHash",
			cborHex: "8173" + urlHex,
		},
		{
			name:    "NotArray",
			cborHex: "73" + urlHex,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data, err := hex.DecodeString(testDef.cborHex)
			if err != nil {
				t.Fatalf("failed to decode test hex: %s", err)
			}
			var pm PoolMetadata
			_, err = cbor.Decode(data, &pm)
			if err == nil {
				t.Fatalf("expected error decoding pool metadata, got none")
			}
			assert.ErrorIs(t, err, cbor.ErrSchemaViolation)
		})
	}
}
