// Package password implements the reversible password obfuscation used when
// station passwords are stored or handed between tools.
//
// Every byte is XORed with 0xFF and the result is base64 encoded. This hides
// a password from casual view; it is not encryption.
package password

import (
	"encoding/base64"
	"fmt"
)

const mask = 0xFF

// Encode obfuscates an ASCII password. A nil password encodes to nil.
func Encode(password *string) *string {
	if password == nil {
		return nil
	}
	encoded := base64.StdEncoding.EncodeToString(flip([]byte(*password)))
	return &encoded
}

// Decode reverses Encode. A nil input decodes to nil.
func Decode(encoded *string) (*string, error) {
	if encoded == nil {
		return nil, nil
	}
	raw, err := base64.StdEncoding.DecodeString(*encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid encoded password: %w", err)
	}
	decoded := string(flip(raw))
	return &decoded, nil
}

func flip(in []byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		out[i] = b ^ mask
	}
	return out
}
