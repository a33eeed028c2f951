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

package cbor

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the CBOR type of an encoded value without consuming it
type Kind int

const (
	KindInvalid Kind = iota
	KindUnsignedInt
	KindNegativeInt
	KindByteString
	KindTextString
	KindArray
	KindMap
	KindTag
	KindNull
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindUnsignedInt:
		return "unsigned integer"
	case KindNegativeInt:
		return "negative integer"
	case KindByteString:
		return "byte string"
	case KindTextString:
		return "text string"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindTag:
		return "tag"
	case KindNull:
		return "null"
	case KindOther:
		return "other"
	}
	return "invalid"
}

// PeekValueKind reports the type of the next encoded value from its initial
// byte. Optional fields are encoded as either the field's own encoding or an
// explicit null, which are not distinguishable without reading ahead, so
// decoders must peek before consuming.
func PeekValueKind(data []byte) Kind {
	if len(data) == 0 {
		return KindInvalid
	}
	switch data[0] & CborTypeMask {
	case CborTypeUint:
		return KindUnsignedInt
	case CborTypeNegInt:
		return KindNegativeInt
	case CborTypeByteString:
		return KindByteString
	case CborTypeTextString:
		return KindTextString
	case CborTypeArray:
		return KindArray
	case CborTypeMap:
		return KindMap
	case CborTypeTag:
		return KindTag
	case CborTypeSimple:
		if data[0] == CborNull {
			return KindNull
		}
		return KindOther
	}
	return KindOther
}

// SchemaViolationError indicates encoded data that is well-formed CBOR but
// does not match the expected shape for an entity: wrong array arity, wrong
// discriminant, or trailing data
type SchemaViolationError struct {
	Entity  string
	Field   string
	Message string
}

func (e SchemaViolationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf(
			"%s: invalid %s: %s",
			e.Entity,
			e.Field,
			e.Message,
		)
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Message)
}

// Sentinel error for schema violations so callers can use errors.Is
var ErrSchemaViolation = errors.New("schema violation")

func (SchemaViolationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// ExpectArrayOfLength decodes data as a CBOR array and verifies it carries at
// least the expected number of elements, returning them as raw messages.
// Surplus elements are not rejected here: field decoding needs the guarantee
// that enough elements exist, while trailing data is reported separately by
// ExpectEndOfArray once all expected fields have been consumed
func ExpectArrayOfLength(
	entity string,
	data []byte,
	length int,
) ([]RawMessage, error) {
	if kind := PeekValueKind(data); kind != KindArray {
		return nil, SchemaViolationError{
			Entity: entity,
			Message: fmt.Sprintf(
				"expected array of %d element(s), found %s",
				length,
				kind,
			),
		}
	}
	var elems []RawMessage
	if _, err := Decode(data, &elems); err != nil {
		return nil, SchemaViolationError{
			Entity:  entity,
			Message: fmt.Sprintf("malformed array: %s", err),
		}
	}
	if len(elems) < length {
		return nil, SchemaViolationError{
			Entity: entity,
			Message: fmt.Sprintf(
				"expected array of %d element(s), found %d",
				length,
				len(elems),
			),
		}
	}
	return elems, nil
}

// ExpectEnumValue decodes data as an unsigned integer and verifies it matches
// the expected enum value. The optional nameFn maps enum values to their
// canonical names for error messages
func ExpectEnumValue(
	entity string,
	field string,
	data RawMessage,
	expected uint64,
	nameFn func(uint64) string,
) (uint64, error) {
	var value uint64
	if _, err := Decode(data, &value); err != nil {
		return 0, SchemaViolationError{
			Entity:  entity,
			Field:   field,
			Message: fmt.Sprintf("expected unsigned integer: %s", err),
		}
	}
	if value != expected {
		want := fmt.Sprintf("%d", expected)
		if nameFn != nil {
			want = fmt.Sprintf("%d (%s)", expected, nameFn(expected))
		}
		return 0, SchemaViolationError{
			Entity:  entity,
			Field:   field,
			Message: fmt.Sprintf("expected %s, found %d", want, value),
		}
	}
	return value, nil
}

// NewUnknownEnumError builds the schema error for a discriminant outside the
// allowed set, enumerating the legal values by name for diagnosability
func NewUnknownEnumError(
	entity string,
	field string,
	value uint64,
	allowed []uint64,
	nameFn func(uint64) string,
) SchemaViolationError {
	names := make([]string, 0, len(allowed))
	for _, v := range allowed {
		if nameFn != nil {
			names = append(names, fmt.Sprintf("%d (%s)", v, nameFn(v)))
		} else {
			names = append(names, fmt.Sprintf("%d", v))
		}
	}
	return SchemaViolationError{
		Entity: entity,
		Field:  field,
		Message: fmt.Sprintf(
			"found %d, expected one of: %s",
			value,
			strings.Join(names, ", "),
		),
	}
}

// ExpectEndOfArray verifies that all elements of an array were consumed,
// failing if trailing data remains
func ExpectEndOfArray(
	entity string,
	elems []RawMessage,
	consumed int,
) error {
	if len(elems) > consumed {
		return SchemaViolationError{
			Entity: entity,
			Message: fmt.Sprintf(
				"expected end of array after %d element(s), found %d trailing",
				consumed,
				len(elems)-consumed,
			),
		}
	}
	return nil
}
