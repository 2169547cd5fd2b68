// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"errors"
	"testing"
)

func TestBytesRange(t *testing.T) {
	var tests = []struct {
		name     string
		length   uint
		startIdx int
		endIdx   int
		ok       bool
	}{
		{"empty range", 0, 0, 0, true},
		{"full buffer", 16, 0, 16, true},
		{"inner range", 16, 4, 8, true},
		{"negative start", 16, -1, 8, false},
		{"end before start", 16, 8, 4, false},
		{"end past buffer", 16, 8, 17, false},
		{"everything wrong", 4, -2, -4, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := BytesRange(test.length, test.startIdx, test.endIdx)
			if test.ok && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if !test.ok && err == nil {
				t.Errorf("expected an error, got nil")
			}
		})
	}
}

func TestBytesRangeErrorTypes(t *testing.T) {
	err := BytesRange(4, -1, 17)
	var startErr *ErrStartLessThanZero
	if !errors.As(err, &startErr) {
		t.Errorf("expected ErrStartLessThanZero in %v", err)
	}
	var endErr *ErrEndGreaterThanLength
	if !errors.As(err, &endErr) {
		t.Errorf("expected ErrEndGreaterThanLength in %v", err)
	}
}
