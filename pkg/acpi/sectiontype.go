// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acpi

import (
	"github.com/linuxboot/bert/pkg/guid"
)

// FieldKind selects the accessor used to decode a payload field. It is a
// closed enumeration; adding a kind means extending the switch in
// decodeFields.
type FieldKind int

// The supported payload field kinds.
const (
	KindByte FieldKind = iota
	KindHex
	KindString
	KindInt
	KindGUID
)

// FieldDesc describes one field of a section payload: where it lives and how
// to decode it.
type FieldDesc struct {
	Name   string
	Offset int
	Length int
	Kind   FieldKind
}

// SectionType names a Generic Error Data Entry section and optionally
// carries the field descriptors for its payload. A section without
// descriptors is known by name only; its payload stays an opaque hex dump.
type SectionType struct {
	Name   string
	Fields []FieldDesc
}

// UEFI 2.8, Appendix N.2.2 Section Descriptor. The registry is deliberately
// incomplete: a new section type is one more row here, the framing loop
// never changes. Only the Firmware Error Record Reference payload is decoded
// field by field so far.
var sectionTypes = map[guid.GUID]SectionType{
	*guid.MustParse("9876CCAD-47B4-4BDB-B65E-16F193C4F3DB"): {
		Name: "Processor Generic",
	},
	*guid.MustParse("DC3EA0B0-A144-4797-B95B-53FA242B6E1D"): {
		Name: "Processor Specific - IA32/X64",
	},
	*guid.MustParse("E429FAF1-3CB7-11D4-BCA7-0080C73C8881"): {
		Name: "Processor Specific - IPF",
	},
	*guid.MustParse("E19E3D16-BC11-11E4-9CAA-C2051D5D46B0"): {
		Name: "Processor Specific - ARM",
	},
	*guid.MustParse("A5BC1114-6F64-4EDE-B863-3E83ED7C83B1"): {
		Name: "Platform Memory",
	},
	*guid.MustParse("D995E954-BBC1-430F-AD91-B44DCB3C6F35"): {
		Name: "PCIe",
	},
	*guid.MustParse("81212A96-09ED-4996-9471-8D729C8E69ED"): {
		Name: "Firmware Error Record Reference",
		Fields: []FieldDesc{
			{Name: "FirmwareErrorRecordType", Offset: 0, Length: 1, Kind: KindByte},
			{Name: "Reserved", Offset: 1, Length: 7, Kind: KindHex},
			{Name: "RecordIdentifier", Offset: 8, Length: 8, Kind: KindHex},
		},
	},
	*guid.MustParse("C5753963-3B84-4095-BF78-EDDAD3F9C9DD"): {
		Name: "PCI/PCI-X Bus",
	},
	*guid.MustParse("EB5E4685-CA66-4769-B6A2-26068B001326"): {
		Name: "DMAr Generic",
	},
	*guid.MustParse("71761D37-32B2-45CD-A7D0-B0FEDD93E8CF"): {
		Name: "Intel VT for Directed I/O Specific DMAr",
	},
	*guid.MustParse("036F84E1-7F37-428C-A79E-575FDFAA84EC"): {
		Name: "IOMMU Specific DMAr",
	},
}

// LookupSectionType returns the registered section type for g.
func LookupSectionType(g guid.GUID) (SectionType, bool) {
	s, ok := sectionTypes[g]
	return s, ok
}

// SectionTypeName returns the registered name for g, or "Unknown".
func SectionTypeName(g guid.GUID) string {
	if s, ok := sectionTypes[g]; ok {
		return s.Name
	}
	return "Unknown"
}
