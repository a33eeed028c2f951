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
)

const (
	NativeScriptTypePubkey        = 0
	NativeScriptTypeAll           = 1
	NativeScriptTypeAny           = 2
	NativeScriptTypeNofK          = 3
	NativeScriptTypeInvalidAfter  = 4
	NativeScriptTypeInvalidBefore = 5
)

var nativeScriptTypes = []uint64{
	NativeScriptTypePubkey,
	NativeScriptTypeAll,
	NativeScriptTypeAny,
	NativeScriptTypeNofK,
	NativeScriptTypeInvalidAfter,
	NativeScriptTypeInvalidBefore,
}

func NativeScriptTypeName(scriptType uint64) string {
	switch scriptType {
	case NativeScriptTypePubkey:
		return "pubkey"
	case NativeScriptTypeAll:
		return "all"
	case NativeScriptTypeAny:
		return "any"
	case NativeScriptTypeNofK:
		return "n_of_k"
	case NativeScriptTypeInvalidAfter:
		return "invalid_after"
	case NativeScriptTypeInvalidBefore:
		return "invalid_before"
	}
	return "unknown"
}

// NativeScriptItem is the closed set of native script variants. Callers
// discriminate via a type switch on NativeScript.Item() or by checking
// NativeScript.Type() against the NativeScriptType* values
type NativeScriptItem interface {
	isNativeScriptItem()
	ScriptType() uint
}

// NativeScript is one node of a native script expression tree. The tree
// evaluates to true or false against a transaction; evaluation itself is a
// higher-layer concern and only the data representation lives here. Nesting
// is unconstrained by the format, so callers decoding untrusted bytes should
// bound depth via cbor.DecodeWithMaxDepth
type NativeScript struct {
	cbor.DecodeStoreCbor
	item NativeScriptItem
}

// NewNativeScript wraps a script variant as a tree node
func NewNativeScript(item NativeScriptItem) (*NativeScript, error) {
	if item == nil {
		return nil, NilArgumentError{
			Function: "NewNativeScript",
			Argument: "item",
		}
	}
	return &NativeScript{item: item}, nil
}

func (n *NativeScript) Item() NativeScriptItem {
	return n.item
}

func (n *NativeScript) Type() uint {
	if n.item == nil {
		return 0
	}
	return n.item.ScriptType()
}

func (n *NativeScript) UnmarshalCBOR(data []byte) error {
	id, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return cbor.SchemaViolationError{
			Entity:  "native_script",
			Field:   "type",
			Message: err.Error(),
		}
	}
	var tmpItem NativeScriptItem
	switch id {
	case NativeScriptTypePubkey:
		tmpItem = &ScriptPubkey{}
	case NativeScriptTypeAll:
		tmpItem = &ScriptAll{}
	case NativeScriptTypeAny:
		tmpItem = &ScriptAny{}
	case NativeScriptTypeNofK:
		tmpItem = &ScriptNofK{}
	case NativeScriptTypeInvalidAfter:
		tmpItem = &ScriptInvalidAfter{}
	case NativeScriptTypeInvalidBefore:
		tmpItem = &ScriptInvalidBefore{}
	default:
		return cbor.NewUnknownEnumError(
			"native_script",
			"type",
			// id is known to be non-negative here
			uint64(id), // #nosec G115
			nativeScriptTypes,
			NativeScriptTypeName,
		)
	}
	if _, err := cbor.Decode(data, tmpItem); err != nil {
		return err
	}
	n.item = tmpItem
	n.SetCbor(data)
	return nil
}

func (n NativeScript) MarshalCBOR() ([]byte, error) {
	if n.item == nil {
		return nil, NilArgumentError{
			Function: "NativeScript.MarshalCBOR",
			Argument: "item",
		}
	}
	return cbor.Encode(n.item)
}

// Equal reports structural equality. Child lists compare element-wise in
// order: two n_of_k nodes with the same children in a different order are
// not equal
func (n *NativeScript) Equal(other *NativeScript) bool {
	if n == nil || other == nil {
		return n == other
	}
	switch a := n.item.(type) {
	case *ScriptPubkey:
		b, ok := other.item.(*ScriptPubkey)
		return ok && bytes.Equal(a.Hash, b.Hash)
	case *ScriptAll:
		b, ok := other.item.(*ScriptAll)
		return ok && nativeScriptListsEqual(a.Scripts, b.Scripts)
	case *ScriptAny:
		b, ok := other.item.(*ScriptAny)
		return ok && nativeScriptListsEqual(a.Scripts, b.Scripts)
	case *ScriptNofK:
		b, ok := other.item.(*ScriptNofK)
		return ok && a.Required == b.Required &&
			nativeScriptListsEqual(a.Scripts, b.Scripts)
	case *ScriptInvalidAfter:
		b, ok := other.item.(*ScriptInvalidAfter)
		return ok && a.Slot == b.Slot
	case *ScriptInvalidBefore:
		b, ok := other.item.(*ScriptInvalidBefore)
		return ok && a.Slot == b.Slot
	}
	return n.item == nil && other.item == nil
}

func nativeScriptListsEqual(a, b []NativeScript) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(&b[i]) {
			return false
		}
	}
	return true
}

// Hash returns the script hash used to reference this script from addresses
// and witness sets: blake2b-224 over the canonical CBOR with the native
// script language prefix byte
func (n *NativeScript) Hash() (Blake2b224, error) {
	cborData, err := cbor.Encode(n)
	if err != nil {
		return Blake2b224{}, err
	}
	hashData := make([]byte, 0, len(cborData)+1)
	hashData = append(hashData, 0x00)
	hashData = append(hashData, cborData...)
	return Blake2b224Hash(hashData), nil
}

// decodeNativeScriptList decodes a variable-length array of child scripts,
// propagating the first child failure unchanged so diagnostics point at the
// true failure site
func decodeNativeScriptList(
	entity string,
	data []byte,
) ([]NativeScript, error) {
	if kind := cbor.PeekValueKind(data); kind != cbor.KindArray {
		return nil, cbor.SchemaViolationError{
			Entity:  entity,
			Field:   "scripts",
			Message: "expected array, found " + kind.String(),
		}
	}
	var items []cbor.RawMessage
	if _, err := cbor.Decode(data, &items); err != nil {
		return nil, cbor.SchemaViolationError{
			Entity:  entity,
			Field:   "scripts",
			Message: err.Error(),
		}
	}
	scripts := make([]NativeScript, 0, len(items))
	for _, item := range items {
		var script NativeScript
		if err := script.UnmarshalCBOR(item); err != nil {
			return nil, err
		}
		scripts = append(scripts, script)
	}
	return scripts, nil
}

// ScriptPubkey requires the transaction to be witnessed by the key matching
// the given hash
type ScriptPubkey struct {
	cbor.StructAsArray
	Type uint
	Hash []byte
}

func NewScriptPubkey(hash []byte) (*ScriptPubkey, error) {
	if hash == nil {
		return nil, NilArgumentError{
			Function: "NewScriptPubkey",
			Argument: "hash",
		}
	}
	return &ScriptPubkey{
		Type: NativeScriptTypePubkey,
		Hash: hash,
	}, nil
}

func (s ScriptPubkey) isNativeScriptItem() {}

func (s *ScriptPubkey) ScriptType() uint {
	return NativeScriptTypePubkey
}

func (s *ScriptPubkey) UnmarshalCBOR(data []byte) error {
	elems, err := cbor.ExpectArrayOfLength("script_pubkey", data, 2)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		"script_pubkey",
		"type",
		elems[0],
		NativeScriptTypePubkey,
		NativeScriptTypeName,
	); err != nil {
		return err
	}
	var hash []byte
	if _, err := cbor.Decode(elems[1], &hash); err != nil {
		return cbor.SchemaViolationError{
			Entity:  "script_pubkey",
			Field:   "hash",
			Message: err.Error(),
		}
	}
	if err := cbor.ExpectEndOfArray("script_pubkey", elems, 2); err != nil {
		return err
	}
	s.Type = NativeScriptTypePubkey
	s.Hash = hash
	return nil
}

// ScriptAll evaluates to true if all sub-scripts evaluate to true. An empty
// list is legal at the codec layer
type ScriptAll struct {
	cbor.StructAsArray
	Type    uint
	Scripts []NativeScript
}

func NewScriptAll(scripts []NativeScript) (*ScriptAll, error) {
	if scripts == nil {
		return nil, NilArgumentError{
			Function: "NewScriptAll",
			Argument: "scripts",
		}
	}
	return &ScriptAll{
		Type:    NativeScriptTypeAll,
		Scripts: scripts,
	}, nil
}

func (s ScriptAll) isNativeScriptItem() {}

func (s *ScriptAll) ScriptType() uint {
	return NativeScriptTypeAll
}

func (s *ScriptAll) SetScripts(scripts []NativeScript) error {
	if scripts == nil {
		return NilArgumentError{
			Function: "ScriptAll.SetScripts",
			Argument: "scripts",
		}
	}
	s.Scripts = scripts
	return nil
}

func (s *ScriptAll) UnmarshalCBOR(data []byte) error {
	elems, err := cbor.ExpectArrayOfLength("script_all", data, 2)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		"script_all",
		"type",
		elems[0],
		NativeScriptTypeAll,
		NativeScriptTypeName,
	); err != nil {
		return err
	}
	scripts, err := decodeNativeScriptList("script_all", elems[1])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray("script_all", elems, 2); err != nil {
		return err
	}
	s.Type = NativeScriptTypeAll
	s.Scripts = scripts
	return nil
}

// ScriptAny evaluates to true if any sub-script evaluates to true
type ScriptAny struct {
	cbor.StructAsArray
	Type    uint
	Scripts []NativeScript
}

func NewScriptAny(scripts []NativeScript) (*ScriptAny, error) {
	if scripts == nil {
		return nil, NilArgumentError{
			Function: "NewScriptAny",
			Argument: "scripts",
		}
	}
	return &ScriptAny{
		Type:    NativeScriptTypeAny,
		Scripts: scripts,
	}, nil
}

func (s ScriptAny) isNativeScriptItem() {}

func (s *ScriptAny) ScriptType() uint {
	return NativeScriptTypeAny
}

func (s *ScriptAny) SetScripts(scripts []NativeScript) error {
	if scripts == nil {
		return NilArgumentError{
			Function: "ScriptAny.SetScripts",
			Argument: "scripts",
		}
	}
	s.Scripts = scripts
	return nil
}

func (s *ScriptAny) UnmarshalCBOR(data []byte) error {
	elems, err := cbor.ExpectArrayOfLength("script_any", data, 2)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		"script_any",
		"type",
		elems[0],
		NativeScriptTypeAny,
		NativeScriptTypeName,
	); err != nil {
		return err
	}
	scripts, err := decodeNativeScriptList("script_any", elems[1])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray("script_any", elems, 2); err != nil {
		return err
	}
	s.Type = NativeScriptTypeAny
	s.Scripts = scripts
	return nil
}

// ScriptNofK evaluates to true if at least Required sub-scripts evaluate to
// true. The codec does not bound Required against the child count; that
// check belongs to script evaluation, and clamping here would break
// round-trip fidelity
type ScriptNofK struct {
	cbor.StructAsArray
	Type     uint
	Required uint64
	Scripts  []NativeScript
}

func NewScriptNofK(
	required uint64,
	scripts []NativeScript,
) (*ScriptNofK, error) {
	if scripts == nil {
		return nil, NilArgumentError{
			Function: "NewScriptNofK",
			Argument: "scripts",
		}
	}
	return &ScriptNofK{
		Type:     NativeScriptTypeNofK,
		Required: required,
		Scripts:  scripts,
	}, nil
}

func (s ScriptNofK) isNativeScriptItem() {}

func (s *ScriptNofK) ScriptType() uint {
	return NativeScriptTypeNofK
}

func (s *ScriptNofK) SetScripts(scripts []NativeScript) error {
	if scripts == nil {
		return NilArgumentError{
			Function: "ScriptNofK.SetScripts",
			Argument: "scripts",
		}
	}
	s.Scripts = scripts
	return nil
}

func (s *ScriptNofK) UnmarshalCBOR(data []byte) error {
	elems, err := cbor.ExpectArrayOfLength("script_n_of_k", data, 3)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		"script_n_of_k",
		"type",
		elems[0],
		NativeScriptTypeNofK,
		NativeScriptTypeName,
	); err != nil {
		return err
	}
	var required uint64
	if _, err := cbor.Decode(elems[1], &required); err != nil {
		return cbor.SchemaViolationError{
			Entity:  "script_n_of_k",
			Field:   "required",
			Message: err.Error(),
		}
	}
	scripts, err := decodeNativeScriptList("script_n_of_k", elems[2])
	if err != nil {
		return err
	}
	if err := cbor.ExpectEndOfArray("script_n_of_k", elems, 3); err != nil {
		return err
	}
	s.Type = NativeScriptTypeNofK
	s.Required = required
	s.Scripts = scripts
	return nil
}

// ScriptInvalidAfter evaluates to true if the upper bound of the transaction
// validity interval is a slot number Y such that Y <= Slot
type ScriptInvalidAfter struct {
	cbor.StructAsArray
	Type uint
	Slot uint64
}

func NewScriptInvalidAfter(slot uint64) *ScriptInvalidAfter {
	return &ScriptInvalidAfter{
		Type: NativeScriptTypeInvalidAfter,
		Slot: slot,
	}
}

func (s ScriptInvalidAfter) isNativeScriptItem() {}

func (s *ScriptInvalidAfter) ScriptType() uint {
	return NativeScriptTypeInvalidAfter
}

func (s *ScriptInvalidAfter) UnmarshalCBOR(data []byte) error {
	elems, err := cbor.ExpectArrayOfLength("script_invalid_after", data, 2)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		"script_invalid_after",
		"type",
		elems[0],
		NativeScriptTypeInvalidAfter,
		NativeScriptTypeName,
	); err != nil {
		return err
	}
	var slot uint64
	if _, err := cbor.Decode(elems[1], &slot); err != nil {
		return cbor.SchemaViolationError{
			Entity:  "script_invalid_after",
			Field:   "slot",
			Message: err.Error(),
		}
	}
	if err := cbor.ExpectEndOfArray(
		"script_invalid_after",
		elems,
		2,
	); err != nil {
		return err
	}
	s.Type = NativeScriptTypeInvalidAfter
	s.Slot = slot
	return nil
}

// ScriptInvalidBefore evaluates to true if the lower bound of the transaction
// validity interval is a slot number Y such that Y >= Slot
type ScriptInvalidBefore struct {
	cbor.StructAsArray
	Type uint
	Slot uint64
}

func NewScriptInvalidBefore(slot uint64) *ScriptInvalidBefore {
	return &ScriptInvalidBefore{
		Type: NativeScriptTypeInvalidBefore,
		Slot: slot,
	}
}

func (s ScriptInvalidBefore) isNativeScriptItem() {}

func (s *ScriptInvalidBefore) ScriptType() uint {
	return NativeScriptTypeInvalidBefore
}

func (s *ScriptInvalidBefore) UnmarshalCBOR(data []byte) error {
	elems, err := cbor.ExpectArrayOfLength("script_invalid_before", data, 2)
	if err != nil {
		return err
	}
	if _, err := cbor.ExpectEnumValue(
		"script_invalid_before",
		"type",
		elems[0],
		NativeScriptTypeInvalidBefore,
		NativeScriptTypeName,
	); err != nil {
		return err
	}
	var slot uint64
	if _, err := cbor.Decode(elems[1], &slot); err != nil {
		return cbor.SchemaViolationError{
			Entity:  "script_invalid_before",
			Field:   "slot",
			Message: err.Error(),
		}
	}
	if err := cbor.ExpectEndOfArray(
		"script_invalid_before",
		elems,
		2,
	); err != nil {
		return err
	}
	s.Type = NativeScriptTypeInvalidBefore
	s.Slot = slot
	return nil
}
