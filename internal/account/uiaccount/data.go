package uiaccount

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/mr-tron/base58"
)

// Encoding names a payload encoding.
type Encoding string

const (
	EncodingBase58     Encoding = "base58"
	EncodingBase64     Encoding = "base64"
	EncodingBase64Zstd Encoding = "base64+zstd"
	EncodingJSONParsed Encoding = "jsonParsed"
)

// ParseEncoding validates s as an encoding that can be written.
func ParseEncoding(s string) (Encoding, error) {
	switch enc := Encoding(s); enc {
	case EncodingBase58, EncodingBase64, EncodingBase64Zstd:
		return enc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
	}
}

// Both are safe for concurrent EncodeAll/DecodeAll calls.
var (
	zstdDecoder, _ = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxAccountDataLen))
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithZeroFrames(true))
)

// UIData is an encoded account payload. It unmarshals from either the
// ["payload", "encoding"] pair, a legacy base58 string, or a jsonParsed
// object.
type UIData struct {
	Payload  string
	Encoding Encoding

	legacy bool
	parsed json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *UIData) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return fmt.Errorf("empty account data")
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*d = UIData{Payload: s, Encoding: EncodingBase58, legacy: true}
	case '[':
		var pair []string
		if err := json.Unmarshal(raw, &pair); err != nil {
			return fmt.Errorf("invalid account data pair: %w", err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("account data pair has %d elements, want 2", len(pair))
		}
		*d = UIData{Payload: pair[0], Encoding: Encoding(pair[1])}
	case '{':
		*d = UIData{Encoding: EncodingJSONParsed, parsed: append(json.RawMessage(nil), raw...)}
	default:
		return fmt.Errorf("unexpected account data %s", raw)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d UIData) MarshalJSON() ([]byte, error) {
	switch {
	case d.Encoding == EncodingJSONParsed:
		if d.parsed == nil {
			return []byte("null"), nil
		}
		return d.parsed, nil
	case d.legacy:
		return json.Marshal(d.Payload)
	default:
		return json.Marshal([2]string{d.Payload, string(d.Encoding)})
	}
}

// Decode returns the raw payload bytes.
func (d UIData) Decode() ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch d.Encoding {
	case EncodingBase58:
		if d.Payload == "" {
			return []byte{}, nil
		}
		out, err = base58.Decode(d.Payload)
	case EncodingBase64:
		out, err = base64.StdEncoding.DecodeString(d.Payload)
	case EncodingBase64Zstd:
		var compressed []byte
		compressed, err = base64.StdEncoding.DecodeString(d.Payload)
		if err == nil {
			out, err = zstdDecoder.DecodeAll(compressed, nil)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, d.Encoding)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s account data: %w", d.Encoding, err)
	}
	if len(out) > MaxAccountDataLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrDataTooLarge, len(out))
	}
	return out, nil
}

// EncodeData encodes data with enc.
func EncodeData(data []byte, enc Encoding) (UIData, error) {
	switch enc {
	case EncodingBase58:
		return UIData{Payload: base58.Encode(data), Encoding: enc}, nil
	case EncodingBase64:
		return UIData{Payload: base64.StdEncoding.EncodeToString(data), Encoding: enc}, nil
	case EncodingBase64Zstd:
		compressed := zstdEncoder.EncodeAll(data, nil)
		return UIData{Payload: base64.StdEncoding.EncodeToString(compressed), Encoding: enc}, nil
	default:
		return UIData{}, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}
