// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package check performs bounds sanity checks for the table decoders.
package check

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrStartLessThanZero means `startIdx` has a negative value.
type ErrStartLessThanZero struct {
	StartIdx int
}

func (err *ErrStartLessThanZero) Error() string {
	return fmt.Sprintf("start index is less than zero: %d", err.StartIdx)
}

// ErrEndLessThanStart means `endIdx` value is less than `startIdx` value.
type ErrEndLessThanStart struct {
	StartIdx int
	EndIdx   int
}

func (err *ErrEndLessThanStart) Error() string {
	return fmt.Sprintf("end index is less than start index: %d < %d",
		err.EndIdx, err.StartIdx)
}

// ErrEndGreaterThanLength means `endIdx` is greater than the length.
type ErrEndGreaterThanLength struct {
	Length uint
	EndIdx int
}

func (err *ErrEndGreaterThanLength) Error() string {
	return fmt.Sprintf("end index is outside of the bounds: %d > %d",
		err.EndIdx, err.Length)
}

// BytesRange checks if starting index `startIdx`, ending index `endIdx` and
// the buffer length pass sanity checks:
//   - 0 <= startIdx
//   - startIdx <= endIdx
//   - endIdx <= length
//
// All violated conditions are reported, not only the first one.
func BytesRange(length uint, startIdx, endIdx int) error {
	var result *multierror.Error
	if startIdx < 0 {
		result = multierror.Append(result, &ErrStartLessThanZero{StartIdx: startIdx})
	}
	if endIdx < startIdx {
		result = multierror.Append(result, &ErrEndLessThanStart{StartIdx: startIdx, EndIdx: endIdx})
	}
	if endIdx >= 0 && uint(endIdx) > length {
		result = multierror.Append(result, &ErrEndGreaterThanLength{Length: length, EndIdx: endIdx})
	}

	return result.ErrorOrNil()
}
