package fraction

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ encoding.TextMarshaler   = Fraction{}
	_ encoding.TextUnmarshaler = (*Fraction)(nil)
	_ json.Marshaler           = Fraction{}
	_ json.Unmarshaler         = (*Fraction)(nil)
	_ msgpack.CustomEncoder    = Fraction{}
	_ msgpack.CustomDecoder    = (*Fraction)(nil)
)

// MarshalText encodes f as RatString.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.RatString()), nil
}

// UnmarshalText accepts anything Parse does.
func (f *Fraction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalJSON encodes f as a JSON string such as "3/4".
func (f Fraction) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.RatString())
}

// UnmarshalJSON accepts a JSON string in any Parse form or a JSON integer.
// null leaves f unchanged.
func (f *Fraction) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return f.UnmarshalText([]byte(s))
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: json value %s", ErrSyntax, data)
	}
	v, err := New(n, 1)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// EncodeMsgpack writes f as the array [num, den].
func (f Fraction) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeInt(f.num); err != nil {
		return err
	}
	return enc.EncodeInt(f.Denominator())
}

// DecodeMsgpack reads [num, den] and normalizes it through New.
func (f *Fraction) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("%w: msgpack array of length %d", ErrSyntax, n)
	}
	num, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	den, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	v, err := New(num, den)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
