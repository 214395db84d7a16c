// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package volt

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Address address of account.
type Address [20]byte

// String implements the stringer interface
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// AbbrevString returns the abbrev string representation of address
func (a Address) AbbrevString() string {
	return fmt.Sprintf("0x%x..%x", a[:4], a[18:])
}

// Bytes returns byte slice form of address.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero returns true if address is all zero.
func (a Address) IsZero() bool {
	return a == Address{}
}

// MarshalJSON implements json.Marshaler.
func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%v\"", a.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Address) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := unmarshalJSONHexString(&hexStr, data); err != nil {
		return err
	}
	parsed, err := ParseAddress(hexStr)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAddress convert string presented address into Address type.
func ParseAddress(s string) (Address, error) {
	if len(s) == 2*20+2 {
		if strings.ToLower(s[:2]) != "0x" {
			return Address{}, errors.New("address: strings must start with 0x")
		}
		s = s[2:]
	} else if len(s) != 2*20 {
		return Address{}, errors.New("address: invalid length")
	}

	var addr Address
	_, err := hex.Decode(addr[:], []byte(s))
	if err != nil {
		return Address{}, err
	}
	return addr, nil
}

// MustParseAddress convert string presented address into Address type, panic on error.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// BytesToAddress converts bytes slice into address.
// If b is larger than address legal length, b will be cropped (from the left).
// If b is smaller, the padding will be applied to the left of b.
func BytesToAddress(b []byte) Address {
	var addr Address
	if len(b) > len(addr) {
		b = b[len(b)-len(addr):]
	}
	copy(addr[len(addr)-len(b):], b)
	return addr
}

func unmarshalJSONHexString(dst *string, data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("not a json string")
	}
	*dst = string(data[1 : len(data)-1])
	return nil
}
