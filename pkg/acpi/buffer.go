// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package acpi decodes the firmware-produced ACPI error reporting
// structures: the Boot Error Record Table (BERT) and Hardware Error Source
// Table (HEST) headers, and the Generic Error Status Block with its
// embedded Generic Error Data Entries.
//
// All decoders are pure transforms over an in-memory byte buffer. They
// borrow the caller's buffer for the duration of the call and the returned
// records own everything they keep, so a record may outlive its buffer.
// Failures are reported as the typed errors in errors.go; the package never
// logs and never retries.
package acpi

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/linuxboot/bert/pkg/acpi/check"
	"github.com/linuxboot/bert/pkg/guid"
)

// Buffer provides the primitive accessors the table decoders are built on.
// Every accessor is bounds checked; reads beyond the buffer return an
// OutOfBoundsError, never panic.
type Buffer []byte

func (b Buffer) bounds(offset, length int) error {
	if err := check.BytesRange(uint(len(b)), offset, offset+length); err != nil {
		return &OutOfBoundsError{Offset: offset, Length: length, BufLen: len(b), err: err}
	}
	return nil
}

// ASCII reads `length` bytes at `offset` as text.
func (b Buffer) ASCII(offset, length int) (string, error) {
	if err := b.bounds(offset, length); err != nil {
		return "", err
	}
	raw := b[offset : offset+length]
	if !utf8.Valid(raw) {
		return "", &InvalidEncodingError{Offset: offset, Length: length}
	}
	return string(raw), nil
}

// Int32 reads a signed little-endian 32-bit integer at `offset`.
func (b Buffer) Int32(offset int) (int32, error) {
	if err := b.bounds(offset, 4); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b[offset:])), nil
}

// Byte reads a single byte at `offset`.
func (b Buffer) Byte(offset int) (uint8, error) {
	if err := b.bounds(offset, 1); err != nil {
		return 0, err
	}
	return b[offset], nil
}

// Hex reads `length` bytes at `offset` as a lowercase hex string grouped in
// byte pairs, preserving the on-wire byte order.
func (b Buffer) Hex(offset, length int) (string, error) {
	if err := b.bounds(offset, length); err != nil {
		return "", err
	}
	h := hex.EncodeToString(b[offset : offset+length])
	pairs := make([]string, 0, length)
	for i := 0; i < len(h); i += 2 {
		pairs = append(pairs, h[i:i+2])
	}
	return strings.Join(pairs, " "), nil
}

// GUID reads a 16-byte mixed-endian GUID at `offset`.
func (b Buffer) GUID(offset int) (guid.GUID, error) {
	if err := b.bounds(offset, guid.Size); err != nil {
		return guid.GUID{}, err
	}
	var g guid.GUID
	copy(g[:], b[offset:offset+guid.Size])
	return g, nil
}
