// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acpi

import (
	"fmt"

	"github.com/linuxboot/bert/pkg/guid"
)

// UEFI 2.8, Table 18-382 Generic Error Data Entry.
const (
	entrySectionTypeOffset    = 0
	entrySeverityOffset       = 16
	entryRevisionOffset       = 20
	entryRevisionLength       = 2
	entryValidationBitsOffset = 22
	entryFlagsOffset          = 23
	entryDataLengthOffset     = 24
	entryFRUIDOffset          = 28
	entryFRUIDLength          = 16
	entryFRUTextOffset        = 44
	entryFRUTextLength        = 20
	entryTimestampOffset      = 64
	entryTimestampLength      = 8
	entryHeaderSize           = 72
)

// GenericErrorDataEntry is one self-describing error record within a status
// block, tagged by its section type GUID. When the section type is known and
// carries a payload schema, Fields holds the decoded payload in descriptor
// order; otherwise Fields is nil. Data always holds the raw payload hex.
type GenericErrorDataEntry struct {
	SectionType     guid.GUID
	SectionName     string
	ErrorSeverity   ErrorSeverity
	Revision        string
	ValidationBits  string
	Flags           string
	ErrorDataLength int32
	FRUID           string
	FRUText         string
	Timestamp       string
	Data            string
	Fields          []Field
}

// Field is one decoded payload field.
type Field struct {
	Name  string
	Value string
}

// parseEntries walks the entry region, decoding one entry at a time until
// the remaining bytes cannot hold another entry header. Entries are returned
// in byte order of appearance, which is the order firmware wrote them. On
// error the entries decoded so far are returned along with it.
func parseEntries(region Buffer) ([]GenericErrorDataEntry, error) {
	var entries []GenericErrorDataEntry
	for len(region) >= entryHeaderSize {
		entry, size, err := parseEntry(region)
		if err != nil {
			return entries, err
		}
		entries = append(entries, *entry)
		region = region[size:]
	}
	return entries, nil
}

// parseEntry decodes a single entry at the start of b and reports how many
// bytes it consumed.
func parseEntry(b Buffer) (*GenericErrorDataEntry, int, error) {
	var e GenericErrorDataEntry
	var err error

	if e.SectionType, err = b.GUID(entrySectionTypeOffset); err != nil {
		return nil, 0, err
	}
	sev, err := b.Int32(entrySeverityOffset)
	if err != nil {
		return nil, 0, err
	}
	e.ErrorSeverity = ErrorSeverity(sev)
	if e.Revision, err = b.Hex(entryRevisionOffset, entryRevisionLength); err != nil {
		return nil, 0, err
	}
	if e.ValidationBits, err = b.Hex(entryValidationBitsOffset, 1); err != nil {
		return nil, 0, err
	}
	if e.Flags, err = b.Hex(entryFlagsOffset, 1); err != nil {
		return nil, 0, err
	}
	if e.ErrorDataLength, err = b.Int32(entryDataLengthOffset); err != nil {
		return nil, 0, err
	}
	if e.FRUID, err = b.Hex(entryFRUIDOffset, entryFRUIDLength); err != nil {
		return nil, 0, err
	}
	if e.FRUText, err = b.ASCII(entryFRUTextOffset, entryFRUTextLength); err != nil {
		return nil, 0, err
	}
	if e.Timestamp, err = b.Hex(entryTimestampOffset, entryTimestampLength); err != nil {
		return nil, 0, err
	}

	if e.ErrorDataLength < 0 || entryHeaderSize+int(e.ErrorDataLength) > len(b) {
		return nil, 0, &TruncatedEntryError{
			Declared:  e.ErrorDataLength,
			Remaining: len(b) - entryHeaderSize,
		}
	}
	payload := b[entryHeaderSize : entryHeaderSize+int(e.ErrorDataLength)]
	if e.Data, err = payload.Hex(0, len(payload)); err != nil {
		return nil, 0, err
	}

	section, known := LookupSectionType(e.SectionType)
	e.SectionName = section.Name
	if !known {
		e.SectionName = "Unknown"
	}
	if known && len(section.Fields) > 0 {
		if e.Fields, err = decodeFields(payload, section.Fields); err != nil {
			return nil, 0, err
		}
	}

	return &e, entryHeaderSize + int(e.ErrorDataLength), nil
}

// decodeFields applies a section schema's field descriptors, in order,
// against an entry payload.
func decodeFields(payload Buffer, descs []FieldDesc) ([]Field, error) {
	fields := make([]Field, 0, len(descs))
	for _, d := range descs {
		var value string
		var err error
		switch d.Kind {
		case KindByte:
			var v uint8
			if v, err = payload.Byte(d.Offset); err == nil {
				value = fmt.Sprintf("%d", v)
			}
		case KindHex:
			value, err = payload.Hex(d.Offset, d.Length)
		case KindString:
			value, err = payload.ASCII(d.Offset, d.Length)
		case KindInt:
			var v int32
			if v, err = payload.Int32(d.Offset); err == nil {
				value = fmt.Sprintf("%d", v)
			}
		case KindGUID:
			var g guid.GUID
			if g, err = payload.GUID(d.Offset); err == nil {
				value = g.String()
			}
		default:
			err = fmt.Errorf("unhandled field kind %d for field %q", d.Kind, d.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("decoding payload field %q: %w", d.Name, err)
		}
		fields = append(fields, Field{Name: d.Name, Value: value})
	}
	return fields, nil
}
