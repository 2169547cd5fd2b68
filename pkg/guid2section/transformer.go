// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package guid2section provides a transform.Transformer which annotates
// GUIDs in the input with the UEFI error section type they identify. It is
// handy for reading kernel logs that quote section type GUIDs verbatim.
package guid2section

import (
	"bytes"
	"regexp"
	"text/template"

	"golang.org/x/text/transform"

	"github.com/linuxboot/bert/pkg/acpi"
	"github.com/linuxboot/bert/pkg/guid"
	"github.com/linuxboot/bert/pkg/log"
)

var guidRegex = regexp.MustCompile(
	"[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}",
)

var partialGUIDRegex = regexp.MustCompile(
	"[-a-fA-F0-9]{1,36}$",
)

// Mapper converts a GUID to a string.
type Mapper interface {
	Map(guid.GUID) []byte
}

// TemplateMapper implements Mapper using Go's text/template package. The
// template can refer to the following variables:
//   - {{.GUID}}: The GUID being mapped
//   - {{.Name}}: The section type name of the GUID or "Unknown"
//   - {{.IsKnown}}: Set to true when the section type is registered
type TemplateMapper struct {
	tmpl *template.Template
}

// NewTemplateMapper creates a new TemplateMapper given a Template.
func NewTemplateMapper(tmpl *template.Template) *TemplateMapper {
	return &TemplateMapper{
		tmpl: tmpl,
	}
}

// Map implements the Mapper.Map() function.
func (f *TemplateMapper) Map(g guid.GUID) []byte {
	section, isKnown := acpi.LookupSectionType(g)
	name := section.Name
	if !isKnown {
		name = "Unknown"
	}

	b := &bytes.Buffer{}
	err := f.tmpl.Execute(b, struct {
		GUID    guid.GUID
		Name    string
		IsKnown bool
	}{
		GUID:    g,
		Name:    name,
		IsKnown: isKnown,
	})
	if err != nil {
		// There is likely a bug in the template. We do not want to
		// interrupt the byte stream, so just log the error.
		log.Errorf("Error in template: %v", err)
	}
	return b.Bytes()
}

// Transformer replaces all the GUIDs in a stream using the Mapper interface.
type Transformer struct {
	mapper Mapper
}

// New creates a new Transformer with the given Mapper.
func New(m Mapper) *Transformer {
	return &Transformer{
		mapper: m,
	}
}

func (t *Transformer) bufferMap(match []byte) []byte {
	// The regex only matches valid GUIDs, so this must parse.
	g, err := guid.Parse(string(match))
	if err != nil {
		return match
	}
	return t.mapper.Map(*g)
}

// Transform implements transform.Transformer.Transform().
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if atEOF {
		// we have the end of file, try to process all at once
		transformed := guidRegex.ReplaceAllFunc(src, t.bufferMap)
		if len(transformed) > len(dst) {
			// we were too optimistic, dst is too short
			d, s, e := t.Transform(dst, src, false)
			if e != transform.ErrShortSrc {
				return d, s, e
			}
			return d, s, transform.ErrShortDst
		}
		copy(dst, transformed)
		return len(transformed), len(src), nil
	}
	loc := guidRegex.FindIndex(src)
	if loc == nil {
		// check if the end potentially contains the beginning of a GUID
		loc := partialGUIDRegex.FindIndex(src)
		if loc == nil {
			copy(dst, src)
			return len(src), len(src), nil
		}
		copy(dst, src[0:loc[0]])
		return loc[0], loc[0], transform.ErrShortSrc
	}
	copy(dst, src[0:loc[0]])
	mappedGUID := t.bufferMap(src[loc[0]:loc[1]])
	if loc[0]+len(mappedGUID) > len(dst) {
		// mapped buffer does not fit, only send the plain part
		return loc[0], loc[0], transform.ErrShortDst
	}

	copy(dst[loc[0]:], mappedGUID)
	return loc[0] + len(mappedGUID), loc[1], transform.ErrShortSrc
}

// Reset implements transform.Transformer.Reset().
func (t *Transformer) Reset() {
}
