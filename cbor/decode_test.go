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

package cbor_test

import (
	"encoding/hex"
	"errors"
	"reflect"
	"testing"

	"github.com/blinklabs-io/goledger/cbor"
)

type decodeTestDefinition struct {
	CborHex   string
	Object    interface{}
	BytesRead int
}

var decodeTests = []decodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []interface{}{uint64(1), uint64(2), uint64(3)},
	},
	// Multiple CBOR objects
	{
		CborHex:   "81018102",
		Object:    []interface{}{uint64(1)},
		BytesRead: 2,
	},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		var dest interface{}
		bytesRead, err := cbor.Decode(cborData, &dest)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if test.BytesRead > 0 {
			if bytesRead != test.BytesRead {
				t.Fatalf(
					"expected to read %d bytes, read %d instead",
					test.BytesRead,
					bytesRead,
				)
			}
		}
		if !reflect.DeepEqual(dest, test.Object) {
			t.Fatalf(
				"CBOR did not decode to expected object\n  got: %#v\n  wanted: %#v",
				dest,
				test.Object,
			)
		}
	}
}

func TestDecodeMaxDepth(t *testing.T) {
	// Build nesting deeper than the given ceiling: [[[[[0]]]]]
	depth := 16
	data := make([]byte, 0, depth+1)
	for range depth {
		data = append(data, 0x81)
	}
	data = append(data, 0x00)
	var dest interface{}
	if _, err := cbor.DecodeWithMaxDepth(data, &dest, depth+1); err != nil {
		t.Fatalf("failed to decode CBOR: %s", err)
	}
	if _, err := cbor.DecodeWithMaxDepth(data, &dest, depth-1); err == nil {
		t.Fatal("expected error decoding past max depth, got none")
	}
}

type listLenTestDefinition struct {
	CborHex string
	Length  int
}

var listLenTests = []listLenTestDefinition{
	// [1]
	{
		CborHex: "8101",
		Length:  1,
	},
	// [1, 3]
	{
		CborHex: "820103",
		Length:  2,
	},
	// [4, 5, 6]
	{
		CborHex: "83040506",
		Length:  3,
	},
	// [0, 1, ... 24, 25]
	{
		CborHex: "981A000102030405060708090A0B0C0D0E0F101112131415161718181819",
		Length:  26,
	},
}

func TestListLen(t *testing.T) {
	for _, test := range listLenTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		listLen, err := cbor.ListLength(cborData)
		if err != nil {
			t.Fatalf("failed to determine list length: %s", err)
		}
		if listLen != test.Length {
			t.Fatalf(
				"did not get expected length, got: %d, wanted: %d",
				listLen,
				test.Length,
			)
		}
	}
}

type decodeIdFromListTestDefinition struct {
	CborHex string
	Id      int
	IsError bool
}

var decodeIdFromListTests = []decodeIdFromListTestDefinition{
	// [1]
	{
		CborHex: "8101",
		Id:      1,
	},
	// [1, 3]
	{
		CborHex: "820103",
		Id:      1,
	},
	// [4, 1]
	{
		CborHex: "820401",
		Id:      4,
	},
	// [25]
	{
		CborHex: "811819",
		Id:      25,
	},
	// [5, 0] with a long-form array header
	{
		CborHex: "98020500",
		Id:      5,
	},
	// [12] with a two-byte-length array header
	{
		CborHex: "9900010c",
		Id:      12,
	},
	// [true]
	{
		CborHex: "81f5",
		IsError: true,
	},
	// []
	{
		CborHex: "80",
		IsError: true,
	},
}

func TestDecodeIdFromList(t *testing.T) {
	for _, test := range decodeIdFromListTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		id, err := cbor.DecodeIdFromList(cborData)
		if test.IsError {
			if err == nil {
				t.Fatalf("expected error decoding %q, got none", test.CborHex)
			}
			continue
		}
		if err != nil {
			t.Fatalf("failed to decode ID from list: %s", err)
		}
		if id != test.Id {
			t.Fatalf("did not get expected ID, got: %d, wanted: %d", id, test.Id)
		}
	}
}

func TestDecodeById(t *testing.T) {
	type typeA struct {
		cbor.StructAsArray
		Id    int
		Value string
	}
	type typeB struct {
		cbor.StructAsArray
		Id    int
		Value uint64
	}
	idMap := map[int]any{
		1: &typeA{},
		2: &typeB{},
	}
	// [2, 42]
	cborData, _ := hex.DecodeString("8202182a")
	ret, err := cbor.DecodeById(cborData, idMap)
	if err != nil {
		t.Fatalf("failed to decode by ID: %s", err)
	}
	retB, ok := ret.(*typeB)
	if !ok {
		t.Fatalf("unexpected return type %T", ret)
	}
	if retB.Value != 42 {
		t.Fatalf("did not get expected value, got: %d, wanted: 42", retB.Value)
	}
	// [3, 42] with no mapping for 3
	cborData, _ = hex.DecodeString("8203182a")
	if _, err := cbor.DecodeById(cborData, idMap); err == nil {
		t.Fatal("expected error for unknown ID, got none")
	}
}

type decodeGenericTestObject struct {
	cbor.StructAsArray
	Id   uint64
	Name string
}

func (o *decodeGenericTestObject) UnmarshalCBOR(cborData []byte) error {
	return errors.New("custom UnmarshalCBOR should not be called")
}

func TestDecodeGeneric(t *testing.T) {
	// [5, "test"]
	cborData, err := hex.DecodeString("82056474657374")
	if err != nil {
		t.Fatalf("failed to decode CBOR hex: %s", err)
	}
	// Decoding via the custom UnmarshalCBOR fails
	var tmp decodeGenericTestObject
	if _, err := cbor.Decode(cborData, &tmp); err == nil {
		t.Fatalf("expected error decoding via custom UnmarshalCBOR, got none")
	}
	// Decoding via DecodeGeneric bypasses the custom UnmarshalCBOR
	var obj decodeGenericTestObject
	if err := cbor.DecodeGeneric(cborData, &obj); err != nil {
		t.Fatalf("failed to decode CBOR: %s", err)
	}
	if obj.Id != 5 {
		t.Fatalf("did not get expected ID, got: %d, wanted: %d", obj.Id, 5)
	}
	if obj.Name != "test" {
		t.Fatalf(
			"did not get expected name, got: %q, wanted: %q",
			obj.Name,
			"test",
		)
	}
}

func TestDecodeGenericNonStruct(t *testing.T) {
	cborData, err := hex.DecodeString("8105")
	if err != nil {
		t.Fatalf("failed to decode CBOR hex: %s", err)
	}
	var dest uint64
	if err := cbor.DecodeGeneric(cborData, &dest); err == nil {
		t.Fatalf("expected error decoding into non-struct, got none")
	}
}
