package jsonrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type idKind int

const (
	idNull idKind = iota
	idString
	idInt
)

// RequestID is the JSON-RPC correlation token: a string, an integer, or
// null. The zero value is the null ID. Equality is structural; the value
// is never interpreted numerically.
type RequestID struct {
	kind idKind
	str  string
	num  int64
}

// NullID returns the null request ID.
func NullID() RequestID { return RequestID{} }

// StringID returns a string request ID.
func StringID(s string) RequestID { return RequestID{kind: idString, str: s} }

// IntID returns an integer request ID.
func IntID(n int64) RequestID { return RequestID{kind: idInt, num: n} }

// IsNull reports whether the ID is the null variant.
func (id RequestID) IsNull() bool { return id.kind == idNull }

// String renders the ID for logs.
func (id RequestID) String() string {
	switch id.kind {
	case idString:
		return strconv.Quote(id.str)
	case idInt:
		return strconv.FormatInt(id.num, 10)
	default:
		return "null"
	}
}

// MarshalJSON implements json.Marshaler.
func (id RequestID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case idString:
		return json.Marshal(id.str)
	case idInt:
		return json.Marshal(id.num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. Only strings, integers and
// null decode; anything else (arrays, objects, fractional numbers) is an
// error.
func (id *RequestID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = RequestID{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = StringID(s)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*id = IntID(n)
		return nil
	}
	return fmt.Errorf("invalid request id: %s", data)
}

// IDFromValue converts a decoded Value into a RequestID. Only string,
// integer and null Values convert.
func IDFromValue(v Value) (RequestID, error) {
	switch v.Kind() {
	case KindNull:
		return NullID(), nil
	case KindString:
		return StringID(v.s), nil
	case KindInt:
		return IntID(v.i), nil
	default:
		return RequestID{}, fmt.Errorf("invalid request id kind %d", v.Kind())
	}
}

// ToValue converts the ID back into a dynamic Value.
func (id RequestID) ToValue() Value {
	switch id.kind {
	case idString:
		return String(id.str)
	case idInt:
		return Int(id.num)
	default:
		return Null()
	}
}
