// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guid

import (
	"fmt"
	"testing"
)

var (
	exampleGUID GUID = [16]byte{0x67, 0x45, 0x23, 0x01, 0xAB, 0x89, 0xEF, 0xCD,
		0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}
	exampleGUIDString   = "01234567-89AB-CDEF-0123-456789ABCDEF"
	exampleGUIDHex      = "0123456789abcdef0123456789abcdef"
	shortGUIDString     = "0123456789ABCDEF0123456789ABCDEF"
	badGUIDStringLength = "01234567"
	badHex              = "GHGHGHGHGHGHGH"

	exampleJSON = `{"GUID" : "` + exampleGUIDString + `"}`
)

func TestParse(t *testing.T) {
	var tests = []struct {
		s   string
		u   *GUID
		msg string
	}{
		{exampleGUIDString, &exampleGUID, ""},
		{shortGUIDString, &exampleGUID, ""},
		{badGUIDStringLength, nil, fmt.Sprintf("guid string has incorrect length, need string of the format \n%v\n, got \n%v",
			UExample, badGUIDStringLength)},
		{badHex, nil, fmt.Sprintf("guid string not correct, need string of the format \n%v\n, got \n%v",
			UExample, badHex)},
	}
	for _, test := range tests {
		u, err := Parse(test.s)
		if u == nil {
			if test.u != nil {
				t.Errorf("GUID was expected: %v, got nil", test.u)
			}
			if err == nil {
				t.Errorf("Error was not returned, expected %v", test.msg)
			} else if err.Error() != test.msg {
				t.Errorf("Mismatched Error returned, expected \n%v\n got \n%v\n", test.msg, err.Error())
			}
		} else if *u != *test.u {
			t.Errorf("GUID was parsed incorrectly, expected %v\n, got %v\n, string was %v", test.u, u, test.s)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	u, err := Parse(exampleGUIDString)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := u.String(); got != exampleGUIDString {
		t.Errorf("String() round trip failed, expected %v, got %v", exampleGUIDString, got)
	}
}

func TestHex(t *testing.T) {
	if got := exampleGUID.Hex(); got != exampleGUIDHex {
		t.Errorf("Hex() expected %v, got %v", exampleGUIDHex, got)
	}
	// Hex must not mutate the receiver.
	if got := exampleGUID.Hex(); got != exampleGUIDHex {
		t.Errorf("Hex() second call expected %v, got %v", exampleGUIDHex, got)
	}
}

func TestMarshal(t *testing.T) {
	j, err := exampleGUID.MarshalJSON()
	if err != nil {
		t.Errorf("No error was expected, got %v", err)
	}
	if exampleJSON != string(j) {
		t.Errorf("JSON strings are not equal. Expected:\n%v\ngot:\n%v", exampleJSON, string(j))
	}
}

func TestUnmarshal(t *testing.T) {
	var g GUID
	if err := g.UnmarshalJSON([]byte(exampleJSON)); err != nil {
		t.Fatalf("No error was expected, got %v", err)
	}
	if g != exampleGUID {
		t.Errorf("GUIDs are not equal. Expected:\n%v\ngot:\n%v", exampleGUID, g)
	}
}
