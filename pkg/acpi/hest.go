// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acpi

// ACPI 6.3, Table 18-382 Hardware Error Source Table.
const (
	hestSignature         = "HEST"
	hestSourceCountOffset = 36
	hestSourceDataOffset  = 40
)

// HEST is a decoded Hardware Error Source Table header. The individual
// Hardware Error Source Structures following the header are a further nested
// format that is not decoded yet; they are carried verbatim in SourceData.
type HEST struct {
	TableHeader
	ErrorSourceCount int32
	SourceData       []byte
}

// ParseHEST decodes a Hardware Error Source Table from buf.
func ParseHEST(buf []byte) (*HEST, error) {
	b := Buffer(buf)

	hdr, err := parseTableHeader(b, hestSignature)
	if err != nil {
		return nil, err
	}

	t := HEST{TableHeader: hdr}
	if t.ErrorSourceCount, err = b.Int32(hestSourceCountOffset); err != nil {
		return nil, err
	}
	if len(buf) > hestSourceDataOffset {
		t.SourceData = make([]byte, len(buf)-hestSourceDataOffset)
		copy(t.SourceData, buf[hestSourceDataOffset:])
	}
	return &t, nil
}
