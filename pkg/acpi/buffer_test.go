// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acpi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/bert/pkg/guid"
)

func TestBufferInt32(t *testing.T) {
	b := Buffer{0x30, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff}

	v, err := b.Int32(0)
	require.NoError(t, err)
	require.Equal(t, int32(48), v)

	v, err = b.Int32(4)
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)
}

func TestBufferByte(t *testing.T) {
	b := Buffer{0xab, 0xcd}

	v, err := b.Byte(1)
	require.NoError(t, err)
	require.Equal(t, uint8(0xcd), v)
}

func TestBufferHex(t *testing.T) {
	b := Buffer{0xde, 0xad, 0xbe, 0xef}

	s, err := b.Hex(0, 4)
	require.NoError(t, err)
	require.Equal(t, "de ad be ef", s)

	s, err = b.Hex(1, 2)
	require.NoError(t, err)
	require.Equal(t, "ad be", s)

	s, err = b.Hex(0, 0)
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestBufferASCII(t *testing.T) {
	b := Buffer("BERT\xff\xfe")

	s, err := b.ASCII(0, 4)
	require.NoError(t, err)
	require.Equal(t, "BERT", s)

	_, err = b.ASCII(2, 4)
	var encErr *InvalidEncodingError
	require.ErrorAs(t, err, &encErr)
	require.Equal(t, 2, encErr.Offset)
	require.Equal(t, 4, encErr.Length)
}

func TestBufferOutOfBounds(t *testing.T) {
	b := Buffer{0x01, 0x02, 0x03, 0x04}

	var tests = []struct {
		name string
		read func() error
	}{
		{"int32 past end", func() error { _, err := b.Int32(2); return err }},
		{"byte past end", func() error { _, err := b.Byte(4); return err }},
		{"hex past end", func() error { _, err := b.Hex(0, 5); return err }},
		{"ascii negative offset", func() error { _, err := b.ASCII(-1, 2); return err }},
		{"guid in short buffer", func() error { _, err := b.GUID(0); return err }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.read()
			var oobErr *OutOfBoundsError
			require.ErrorAs(t, err, &oobErr)
			require.Equal(t, 4, oobErr.BufLen)
		})
	}
}

func TestBufferGUID(t *testing.T) {
	want := guid.MustParse("9876CCAD-47B4-4BDB-B65E-16F193C4F3DB")
	// The same GUID in wire order: first three fields little-endian.
	wire := Buffer{
		0xad, 0xcc, 0x76, 0x98,
		0xb4, 0x47,
		0xdb, 0x4b,
		0xb6, 0x5e, 0x16, 0xf1, 0x93, 0xc4, 0xf3, 0xdb,
	}

	g, err := wire.GUID(0)
	require.NoError(t, err)
	require.Equal(t, *want, g)
	require.Equal(t, "9876CCAD-47B4-4BDB-B65E-16F193C4F3DB", g.String())
	require.Equal(t, "9876ccad47b44bdbb65e16f193c4f3db", g.Hex())
}
