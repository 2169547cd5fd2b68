// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acpi

// ACPI 6.3, Table 5-29 System Description Table Header.
const (
	signatureOffset       = 0
	signatureLength       = 4
	lengthOffset          = 4
	revisionOffset        = 8
	checksumOffset        = 9
	oemIDOffset           = 10
	oemIDLength           = 6
	oemRevisionOffset     = 24
	creatorIDOffset       = 28
	creatorIDLength       = 4
	creatorRevisionOffset = 32
)

// TableHeader is the common header shared by all ACPI System Description
// Tables. Checksums are decoded but not verified.
type TableHeader struct {
	Signature       string
	Length          int32
	Revision        uint8
	Checksum        uint8
	OEMID           string
	OEMRevision     int32
	CreatorID       string
	CreatorRevision int32
}

// parseTableHeader decodes the common header fields and validates the
// signature against the expected tag.
func parseTableHeader(b Buffer, want string) (TableHeader, error) {
	var h TableHeader
	var err error

	if h.Signature, err = b.ASCII(signatureOffset, signatureLength); err != nil {
		return h, err
	}
	if h.Signature != want {
		return h, &HeaderMismatchError{Got: h.Signature, Want: want}
	}
	if h.Length, err = b.Int32(lengthOffset); err != nil {
		return h, err
	}
	if h.Revision, err = b.Byte(revisionOffset); err != nil {
		return h, err
	}
	if h.Checksum, err = b.Byte(checksumOffset); err != nil {
		return h, err
	}
	if h.OEMID, err = b.ASCII(oemIDOffset, oemIDLength); err != nil {
		return h, err
	}
	if h.OEMRevision, err = b.Int32(oemRevisionOffset); err != nil {
		return h, err
	}
	if h.CreatorID, err = b.ASCII(creatorIDOffset, creatorIDLength); err != nil {
		return h, err
	}
	if h.CreatorRevision, err = b.Int32(creatorRevisionOffset); err != nil {
		return h, err
	}
	return h, nil
}
