package ledger

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the variants of a self-describing ledger value.
type Kind int

const (
	KindVoid Kind = iota
	KindBool
	KindU64
	KindBytes
	KindString
	KindSymbol
	KindAddress
	KindVec
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindU64:
		return "u64"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindAddress:
		return "address"
	case KindVec:
		return "vec"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is one node of the self-describing structure the ledger returns
// from simulated calls and accepts as invocation arguments. On the wire it
// is the RPC service's JSON value mode: a single-key object per variant
// ({"vec": [...]}, {"bytes": "<base64>"}, ...) with void encoded as the
// bare string "void".
type Value struct {
	kind    Kind
	boolVal bool
	u64Val  uint64
	bytes   []byte
	str     string
	vec     []Value
	entries []MapEntry
}

// MapEntry is one key/value pair of a map-shaped Value.
type MapEntry struct {
	Key Value `json:"key"`
	Val Value `json:"val"`
}

// Constructors.

func Void() Value                   { return Value{kind: KindVoid} }
func Bool(b bool) Value             { return Value{kind: KindBool, boolVal: b} }
func U64(n uint64) Value            { return Value{kind: KindU64, u64Val: n} }
func Bytes(b []byte) Value          { return Value{kind: KindBytes, bytes: b} }
func String(s string) Value         { return Value{kind: KindString, str: s} }
func Symbol(s string) Value         { return Value{kind: KindSymbol, str: s} }
func Address(a string) Value        { return Value{kind: KindAddress, str: a} }
func Vec(items ...Value) Value      { return Value{kind: KindVec, vec: items} }
func Map(entries ...MapEntry) Value { return Value{kind: KindMap, entries: entries} }

// Entry builds a map entry with a symbol key, the shape contract structs
// decode to.
func Entry(key string, val Value) MapEntry {
	return MapEntry{Key: Symbol(key), Val: val}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind { return v.kind }

// IsVoid reports whether the value is the null/void representation.
func (v Value) IsVoid() bool { return v.kind == KindVoid }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	return v.boolVal, v.kind == KindBool
}

// AsU64 returns the unsigned integer payload.
func (v Value) AsU64() (uint64, bool) {
	return v.u64Val, v.kind == KindU64
}

// AsBytes returns the raw byte payload.
func (v Value) AsBytes() ([]byte, bool) {
	return v.bytes, v.kind == KindBytes
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsSymbol returns the symbol payload.
func (v Value) AsSymbol() (string, bool) {
	return v.str, v.kind == KindSymbol
}

// AsAddress returns the address payload in strkey form.
func (v Value) AsAddress() (string, bool) {
	return v.str, v.kind == KindAddress
}

// AsVec returns the sequence payload.
func (v Value) AsVec() ([]Value, bool) {
	return v.vec, v.kind == KindVec
}

// AsMap returns the map payload.
func (v Value) AsMap() ([]MapEntry, bool) {
	return v.entries, v.kind == KindMap
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindVoid:
		return json.Marshal("void")
	case KindBool:
		return json.Marshal(map[string]bool{"bool": v.boolVal})
	case KindU64:
		// u64 travels as a string so large values survive JSON number parsing.
		return json.Marshal(map[string]string{"u64": strconv.FormatUint(v.u64Val, 10)})
	case KindBytes:
		return json.Marshal(map[string]string{"bytes": base64.StdEncoding.EncodeToString(v.bytes)})
	case KindString:
		return json.Marshal(map[string]string{"string": v.str})
	case KindSymbol:
		return json.Marshal(map[string]string{"symbol": v.str})
	case KindAddress:
		return json.Marshal(map[string]string{"address": v.str})
	case KindVec:
		return json.Marshal(map[string][]Value{"vec": v.vec})
	case KindMap:
		return json.Marshal(map[string][]MapEntry{"map": v.entries})
	default:
		return nil, fmt.Errorf("cannot marshal value of kind %d", v.kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`"void"`)) {
		*v = Void()
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("not a ledger value: %w", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("ledger value must have exactly one variant key, got %d", len(raw))
	}

	for variant, payload := range raw {
		switch variant {
		case "bool":
			var b bool
			if err := json.Unmarshal(payload, &b); err != nil {
				return err
			}
			*v = Bool(b)
		case "u64":
			var num json.Number
			if err := json.Unmarshal(payload, &num); err != nil {
				return err
			}
			n, err := strconv.ParseUint(num.String(), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid u64 value %q: %w", num, err)
			}
			*v = U64(n)
		case "bytes":
			var enc string
			if err := json.Unmarshal(payload, &enc); err != nil {
				return err
			}
			b, err := base64.StdEncoding.DecodeString(enc)
			if err != nil {
				return fmt.Errorf("invalid base64 bytes value: %w", err)
			}
			*v = Bytes(b)
		case "string":
			var s string
			if err := json.Unmarshal(payload, &s); err != nil {
				return err
			}
			*v = String(s)
		case "symbol":
			var s string
			if err := json.Unmarshal(payload, &s); err != nil {
				return err
			}
			*v = Symbol(s)
		case "address":
			var s string
			if err := json.Unmarshal(payload, &s); err != nil {
				return err
			}
			*v = Address(s)
		case "vec":
			var items []Value
			if err := json.Unmarshal(payload, &items); err != nil {
				return err
			}
			*v = Vec(items...)
		case "map":
			var entries []MapEntry
			if err := json.Unmarshal(payload, &entries); err != nil {
				return err
			}
			*v = Map(entries...)
		case "void":
			*v = Void()
		default:
			return fmt.Errorf("unknown ledger value variant %q", variant)
		}
	}
	return nil
}
