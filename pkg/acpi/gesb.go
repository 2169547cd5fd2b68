// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acpi

import (
	"fmt"
)

// ErrorSeverity is the severity value carried by status blocks and error
// data entries. Values outside the defined range are kept and rendered as
// unknown(N); a bad severity is data, not a decode failure.
type ErrorSeverity int32

// UEFI 2.8, Appendix N: error severities.
const (
	// SeverityRecoverable is also called non-fatal uncorrected.
	SeverityRecoverable   ErrorSeverity = 0
	SeverityFatal         ErrorSeverity = 1
	SeverityCorrected     ErrorSeverity = 2
	SeverityInformational ErrorSeverity = 3
)

// String implements fmt.Stringer.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityRecoverable:
		return "Recoverable"
	case SeverityFatal:
		return "Fatal"
	case SeverityCorrected:
		return "Corrected"
	case SeverityInformational:
		return "Informational"
	}
	return fmt.Sprintf("unknown(%d)", int32(s))
}

// UEFI 2.8, Table 18-381 Generic Error Status Block.
const (
	gesbBlockStatusOffset   = 0
	gesbBlockStatusLength   = 4
	gesbRawDataOffsetOffset = 4
	gesbRawDataLengthOffset = 8
	gesbDataLengthOffset    = 12
	gesbSeverityOffset      = 16
	gesbHeaderSize          = 20
)

// GenericErrorStatusBlock frames zero or more Generic Error Data Entries.
// BlockStatus is a bitfield kept as raw hex; it is not decomposed further.
type GenericErrorStatusBlock struct {
	BlockStatus   string
	RawDataOffset int32
	RawDataLength int32
	DataLength    int32
	ErrorSeverity ErrorSeverity
	Entries       []GenericErrorDataEntry
}

// ParseGenericErrorStatusBlock decodes a Generic Error Status Block and the
// entry region that follows it. When the entry region turns out to be
// truncated, the block with all entries decoded so far is returned alongside
// the TruncatedEntryError.
func ParseGenericErrorStatusBlock(buf []byte) (*GenericErrorStatusBlock, error) {
	b := Buffer(buf)
	var g GenericErrorStatusBlock
	var err error

	if g.BlockStatus, err = b.Hex(gesbBlockStatusOffset, gesbBlockStatusLength); err != nil {
		return nil, err
	}
	if g.RawDataOffset, err = b.Int32(gesbRawDataOffsetOffset); err != nil {
		return nil, err
	}
	if g.RawDataLength, err = b.Int32(gesbRawDataLengthOffset); err != nil {
		return nil, err
	}
	if g.DataLength, err = b.Int32(gesbDataLengthOffset); err != nil {
		return nil, err
	}
	sev, err := b.Int32(gesbSeverityOffset)
	if err != nil {
		return nil, err
	}
	g.ErrorSeverity = ErrorSeverity(sev)

	// The entry region is bounded by the declared data length or by the
	// buffer, whichever is smaller.
	region := b[gesbHeaderSize:]
	if g.DataLength >= 0 && int(g.DataLength) < len(region) {
		region = region[:g.DataLength]
	}
	g.Entries, err = parseEntries(region)
	return &g, err
}
