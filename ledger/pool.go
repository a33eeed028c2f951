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
	"net"

	"github.com/blinklabs-io/goledger/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

type PoolMetadata struct {
	cbor.StructAsArray
	Url  string
	Hash PoolMetadataHash
}

func (p *PoolMetadata) UnmarshalCBOR(cborData []byte) error {
	const entity = "pool_metadata"
	elems, err := cbor.ExpectArrayOfLength(entity, cborData, 2)
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray(entity, elems, 2); err != nil {
		return err
	}
	return cbor.DecodeGeneric(cborData, p)
}

func (p *PoolMetadata) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(p)
}

func (p *PoolMetadata) Equal(other *PoolMetadata) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Url == other.Url && p.Hash == other.Hash
}

func (p *PoolMetadata) Utxorpc() (*utxorpc.PoolMetadata, error) {
	if p == nil {
		return nil, nil
	}
	return &utxorpc.PoolMetadata{
		Url:  p.Url,
		Hash: p.Hash[:],
	}, nil
}

const (
	PoolRelayTypeSingleHostAddress = 0
	PoolRelayTypeSingleHostName    = 1
	PoolRelayTypeMultiHostName     = 2
)

var poolRelayTypes = []uint64{
	PoolRelayTypeSingleHostAddress,
	PoolRelayTypeSingleHostName,
	PoolRelayTypeMultiHostName,
}

func PoolRelayTypeName(relayType uint64) string {
	switch relayType {
	case PoolRelayTypeSingleHostAddress:
		return "single_host_address"
	case PoolRelayTypeSingleHostName:
		return "single_host_name"
	case PoolRelayTypeMultiHostName:
		return "multi_host_name"
	}
	return "unknown"
}

// PoolRelay describes one relay endpoint of a stake pool: by address, by
// hostname, or by SRV DNS name
type PoolRelay struct {
	Type     int     `json:"type"`
	Port     *uint32 `json:"port,omitempty"`
	Ipv4     *net.IP `json:"ipv4,omitempty"`
	Ipv6     *net.IP `json:"ipv6,omitempty"`
	Hostname *string `json:"hostname,omitempty"`
}

func (p *PoolRelay) UnmarshalCBOR(data []byte) error {
	tmpId, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return cbor.SchemaViolationError{
			Entity:  "pool_relay",
			Field:   "type",
			Message: err.Error(),
		}
	}
	switch tmpId {
	case PoolRelayTypeSingleHostAddress:
		var tmpData struct {
			cbor.StructAsArray
			Type uint
			Port *uint32
			Ipv4 *net.IP
			Ipv6 *net.IP
		}
		if _, err := cbor.Decode(data, &tmpData); err != nil {
			return err
		}
		p.Port = tmpData.Port
		p.Ipv4 = tmpData.Ipv4
		p.Ipv6 = tmpData.Ipv6
	case PoolRelayTypeSingleHostName:
		var tmpData struct {
			cbor.StructAsArray
			Type     uint
			Port     *uint32
			Hostname *string
		}
		if _, err := cbor.Decode(data, &tmpData); err != nil {
			return err
		}
		p.Port = tmpData.Port
		p.Hostname = tmpData.Hostname
	case PoolRelayTypeMultiHostName:
		var tmpData struct {
			cbor.StructAsArray
			Type     uint
			Hostname *string
		}
		if _, err := cbor.Decode(data, &tmpData); err != nil {
			return err
		}
		p.Hostname = tmpData.Hostname
	default:
		return cbor.NewUnknownEnumError(
			"pool_relay",
			"type",
			// tmpId is known to be non-negative here
			uint64(tmpId), // #nosec G115
			poolRelayTypes,
			PoolRelayTypeName,
		)
	}
	p.Type = tmpId
	return nil
}

func (p PoolRelay) MarshalCBOR() ([]byte, error) {
	switch p.Type {
	case PoolRelayTypeSingleHostAddress:
		return cbor.Encode([]any{p.Type, p.Port, p.Ipv4, p.Ipv6})
	case PoolRelayTypeSingleHostName:
		return cbor.Encode([]any{p.Type, p.Port, p.Hostname})
	case PoolRelayTypeMultiHostName:
		return cbor.Encode([]any{p.Type, p.Hostname})
	default:
		return nil, cbor.NewUnknownEnumError(
			"pool_relay",
			"type",
			// Type is known to be non-negative here
			uint64(p.Type), // #nosec G115
			poolRelayTypes,
			PoolRelayTypeName,
		)
	}
}

func (p *PoolRelay) Equal(other *PoolRelay) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Type != other.Type {
		return false
	}
	if !uint32PtrsEqual(p.Port, other.Port) {
		return false
	}
	if !ipPtrsEqual(p.Ipv4, other.Ipv4) || !ipPtrsEqual(p.Ipv6, other.Ipv6) {
		return false
	}
	if (p.Hostname == nil) != (other.Hostname == nil) {
		return false
	}
	if p.Hostname != nil && *p.Hostname != *other.Hostname {
		return false
	}
	return true
}

func uint32PtrsEqual(a, b *uint32) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func ipPtrsEqual(a, b *net.IP) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equal(*b)
}

func (p *PoolRelay) Utxorpc() (*utxorpc.Relay, error) {
	ret := &utxorpc.Relay{}
	if p.Port != nil {
		ret.Port = *p.Port
	}
	if p.Ipv4 != nil {
		ret.IpV4 = []byte(*p.Ipv4)
	}
	if p.Ipv6 != nil {
		ret.IpV6 = []byte(*p.Ipv6)
	}
	return ret, nil
}
