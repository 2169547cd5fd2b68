// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acpi

import (
	"fmt"
)

// OutOfBoundsError is returned when an accessor requests bytes beyond the
// buffer. It is fatal to the decode call that raised it; the decoders never
// silently truncate.
type OutOfBoundsError struct {
	Offset int
	Length int
	BufLen int
	err    error
}

// Error implements error.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("read of %d bytes at offset %d is outside the %d byte buffer: %v",
		e.Length, e.Offset, e.BufLen, e.err)
}

// Unwrap returns the underlying bounds violations.
func (e *OutOfBoundsError) Unwrap() error {
	return e.err
}

// InvalidEncodingError is returned when a text field does not hold valid
// UTF-8.
type InvalidEncodingError struct {
	Offset int
	Length int
}

// Error implements error.
func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("%d bytes at offset %d are not valid UTF-8 text", e.Length, e.Offset)
}

// HeaderMismatchError is returned when a table's signature differs from the
// expected tag. It is fatal to that table's decode; callers are expected to
// skip the file and continue with others.
type HeaderMismatchError struct {
	Got  string
	Want string
}

// Error implements error.
func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("wrong header signature %q, want %q", e.Got, e.Want)
}

// TruncatedEntryError is returned when a Generic Error Data Entry declares a
// payload length that would overrun the remaining buffer. Entries decoded
// before the truncated one are still returned to the caller.
type TruncatedEntryError struct {
	Declared  int32
	Remaining int
}

// Error implements error.
func (e *TruncatedEntryError) Error() string {
	return fmt.Sprintf("error data entry declares a %d byte payload but only %d bytes remain",
		e.Declared, e.Remaining)
}
