// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package guid implements the mixed-endian GUID encoding used by ACPI and
// UEFI structures. The first three fields are stored little-endian on the
// wire; the remaining eight bytes are stored as-is.
package guid

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

const (
	// Size is the number of bytes in a GUID.
	Size = 16
	// UExample is an example of a canonical GUID string.
	UExample  = "01234567-89AB-CDEF-0123-456789ABCDEF"
	strFormat = "%02X%02X%02X%02X-%02X%02X-%02X%02X-%02X%02X-%02X%02X%02X%02X%02X%02X"
	hexFormat = "%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x%02x"
)

// fields holds the byte length of each endianness-swapped field.
var fields = [...]int{4, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1}

// GUID represents a unique identifier, stored in on-wire (mixed-endian)
// byte order. Two GUIDs are equal iff their canonical strings are equal,
// which for this representation is plain array equality.
type GUID [Size]byte

func reverse(b []byte) {
	for i := 0; i < len(b)/2; i++ {
		other := len(b) - i - 1
		b[other], b[i] = b[i], b[other]
	}
}

// swapFields converts between wire order and canonical display order.
// The transform is its own inverse.
func (u *GUID) swapFields() {
	i := 0
	for _, fieldlen := range fields {
		reverse(u[i : i+fieldlen])
		i += fieldlen
	}
}

// Parse parses a canonical GUID string, with or without hyphens.
func Parse(s string) (*GUID, error) {
	stripped := strings.Replace(s, "-", "", -1)
	decoded, err := hex.DecodeString(stripped)
	if err != nil {
		return nil, fmt.Errorf("guid string not correct, need string of the format \n%v\n, got \n%v",
			UExample, s)
	}

	if len(decoded) != Size {
		return nil, fmt.Errorf("guid string has incorrect length, need string of the format \n%v\n, got \n%v",
			UExample, s)
	}

	u := GUID{}
	copy(u[:], decoded[:])
	u.swapFields()
	return &u, nil
}

// MustParse parses a guid string or panics.
func MustParse(s string) *GUID {
	guid, err := Parse(s)
	if err != nil {
		log.Fatal(err)
	}
	return guid
}

// String returns the canonical upper-case representation with hyphens.
func (u GUID) String() string {
	// Not a pointer receiver so we don't have to manually copy.
	u.swapFields()
	b := make([]interface{}, Size)
	for i := range u[:] {
		b[i] = u[i]
	}
	return fmt.Sprintf(strFormat, b...)
}

// Hex returns the canonical lower-case hex representation without
// separators, the form used to key section-type registries.
func (u GUID) Hex() string {
	u.swapFields()
	b := make([]interface{}, Size)
	for i := range u[:] {
		b[i] = u[i]
	}
	return fmt.Sprintf(hexFormat, b...)
}

// MarshalJSON implements the marshaller interface.
func (u *GUID) MarshalJSON() ([]byte, error) {
	return []byte(`{"GUID" : "` + u.String() + `"}`), nil
}

// UnmarshalJSON implements the unmarshaller interface.
func (u *GUID) UnmarshalJSON(b []byte) error {
	j := make(map[string]string)

	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	g, err := Parse(j["GUID"])
	if err != nil {
		return err
	}
	copy(u[:], g[:])
	return nil
}
