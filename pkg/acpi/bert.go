// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acpi

// ACPI 6.3, Table 18-381 Boot Error Record Table.
const (
	bertSignature          = "BERT"
	bertRegionLengthOffset = 36
	bertRegionOffset       = 40
	bertRegionLength       = 8
	bertTableSize          = 48
)

// BERT is a decoded Boot Error Record Table. The boot error region field is
// a physical address pointing at a Generic Error Status Block; it is kept as
// raw hex and never dereferenced here.
type BERT struct {
	TableHeader
	BootErrorRegionLength int32
	BootErrorRegion       string
	// Raw is a hex dump of the whole 48-byte table.
	Raw string
}

// ParseBERT decodes a Boot Error Record Table from buf.
func ParseBERT(buf []byte) (*BERT, error) {
	b := Buffer(buf)

	hdr, err := parseTableHeader(b, bertSignature)
	if err != nil {
		return nil, err
	}

	t := BERT{TableHeader: hdr}
	if t.BootErrorRegionLength, err = b.Int32(bertRegionLengthOffset); err != nil {
		return nil, err
	}
	if t.BootErrorRegion, err = b.Hex(bertRegionOffset, bertRegionLength); err != nil {
		return nil, err
	}
	if t.Raw, err = b.Hex(0, bertTableSize); err != nil {
		return nil, err
	}
	return &t, nil
}
