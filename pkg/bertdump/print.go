// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bertdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/camelcase"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/linuxboot/bert/pkg/acpi"
)

func printReport(w io.Writer, r Report) {
	for _, f := range r.Tables {
		printBERT(w, f)
	}
	if r.HEST != nil {
		printHEST(w, *r.HEST)
	}
	if r.StatusBlock != nil {
		printStatusBlock(w, *r.StatusBlock)
	}
}

func printBERT(w io.Writer, f BERTFile) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("BERT Table (%s)", f.Filename)
	t.AppendHeader(table.Row{"Field", "Value"})
	appendHeaderRows(t, f.Table.TableHeader)
	t.AppendRow(table.Row{"Boot Error Region Length", sizeValue(f.Table.BootErrorRegionLength)})
	t.AppendRow(table.Row{"Boot Error Region", f.Table.BootErrorRegion})
	t.Render()
	writeHexDump(w, f.Table.Raw)
	fmt.Fprintln(w)
}

func printHEST(w io.Writer, f HESTFile) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("HEST Table (%s)", f.Filename)
	t.AppendHeader(table.Row{"Field", "Value"})
	appendHeaderRows(t, f.Table.TableHeader)
	t.AppendRow(table.Row{"Error Source Count", f.Table.ErrorSourceCount})
	t.Render()
	if len(f.Table.SourceData) > 0 {
		// Hardware Error Source Structures are not decoded yet; dump
		// them raw rather than hiding them.
		raw, _ := acpi.Buffer(f.Table.SourceData).Hex(0, len(f.Table.SourceData))
		writeHexDump(w, raw)
	}
	fmt.Fprintln(w)
}

func printStatusBlock(w io.Writer, f StatusBlockFile) {
	b := f.Block
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Generic Error Status Block (%s)", f.Filename)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Block Status", b.BlockStatus})
	t.AppendRow(table.Row{"Raw Data Offset", b.RawDataOffset})
	t.AppendRow(table.Row{"Raw Data Length", b.RawDataLength})
	t.AppendRow(table.Row{"Data Length", sizeValue(b.DataLength)})
	t.AppendRow(table.Row{"Error Severity", severityValue(b.ErrorSeverity)})
	t.Render()
	fmt.Fprintln(w)

	for i, entry := range b.Entries {
		printEntry(w, i+1, entry)
	}
}

func printEntry(w io.Writer, number int, e acpi.GenericErrorDataEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Error Data Entry %d", number)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Section Type", fmt.Sprintf("%s (%s)", e.SectionType, e.SectionName)})
	t.AppendRow(table.Row{"Error Severity", severityValue(e.ErrorSeverity)})
	t.AppendRow(table.Row{"Revision", e.Revision})
	t.AppendRow(table.Row{"Validation Bits", e.ValidationBits})
	t.AppendRow(table.Row{"Flags", e.Flags})
	t.AppendRow(table.Row{"Error Data Length", sizeValue(e.ErrorDataLength)})
	t.AppendRow(table.Row{"FRU Id", e.FRUID})
	t.AppendRow(table.Row{"FRU Text", strings.TrimRight(e.FRUText, "\x00 ")})
	t.AppendRow(table.Row{"Timestamp", e.Timestamp})
	if len(e.Fields) > 0 {
		t.AppendSeparator()
		for _, field := range e.Fields {
			t.AppendRow(table.Row{fieldLabel(field.Name), field.Value})
		}
	}
	t.Render()
	if len(e.Fields) == 0 && e.Data != "" {
		writeHexDump(w, e.Data)
	}
	fmt.Fprintln(w)
}

func appendHeaderRows(t table.Writer, h acpi.TableHeader) {
	t.AppendRow(table.Row{"Header Signature", h.Signature})
	t.AppendRow(table.Row{"Length", sizeValue(h.Length)})
	t.AppendRow(table.Row{"Revision", h.Revision})
	t.AppendRow(table.Row{"Checksum", h.Checksum})
	t.AppendRow(table.Row{"OEM Id", h.OEMID})
	t.AppendRow(table.Row{"OEM Revision", h.OEMRevision})
	t.AppendRow(table.Row{"Creator Id", h.CreatorID})
	t.AppendRow(table.Row{"Creator Revision", h.CreatorRevision})
}

// fieldLabel turns a CamelCase payload field name into a display label.
func fieldLabel(name string) string {
	return strings.Join(camelcase.Split(name), " ")
}

func severityValue(s acpi.ErrorSeverity) string {
	return fmt.Sprintf("%d (%s)", int32(s), s)
}

func sizeValue(n int32) string {
	if n < 0 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d (%s)", n, humanize.IBytes(uint64(n)))
}

// writeHexDump prints a byte-pair hex string in rows of 16 bytes, each row
// prefixed with its starting offset.
func writeHexDump(w io.Writer, spaced string) {
	fmt.Fprintln(w, "HEX data:")
	pairs := strings.Fields(spaced)
	for row := 0; row*16 < len(pairs); row++ {
		end := (row + 1) * 16
		if end > len(pairs) {
			end = len(pairs)
		}
		fmt.Fprintf(w, "%d.:\t%s\n", row*16, strings.Join(pairs[row*16:end], " "))
	}
}
