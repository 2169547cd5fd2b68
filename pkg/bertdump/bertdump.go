// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bertdump is where the implementation of the bertdump command
// lives. It scans a directory laid out like /sys/firmware/acpi/tables
// (BERT, BERT1, ... headers, a HEST header, and the boot error region dump
// under data/BERT), decodes each file with pkg/acpi and renders the result.
//
// A failure on one file never stops the others: errors are logged,
// collected, and returned in aggregate once every file had its chance.
package bertdump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/ulikunitz/xz"

	"github.com/linuxboot/bert/pkg/acpi"
	"github.com/linuxboot/bert/pkg/log"
)

// Options configures a Run.
type Options struct {
	// JSON dumps the decoded records as JSON instead of rendered tables.
	JSON bool
	// W receives the output. Defaults to os.Stdout.
	W io.Writer
}

// Report holds everything decoded from one ACPI tables directory.
type Report struct {
	Tables      []BERTFile       `json:",omitempty"`
	HEST        *HESTFile        `json:",omitempty"`
	StatusBlock *StatusBlockFile `json:",omitempty"`
}

// BERTFile pairs a decoded BERT header with the file it came from.
type BERTFile struct {
	Filename string
	Table    *acpi.BERT
}

// HESTFile pairs a decoded HEST header with the file it came from.
type HESTFile struct {
	Filename string
	Table    *acpi.HEST
}

// StatusBlockFile pairs a decoded Generic Error Status Block with the file
// it came from.
type StatusBlockFile struct {
	Filename string
	Block    *acpi.GenericErrorStatusBlock
}

// Run decodes the ACPI error tables under dir and renders them to opts.W.
func Run(dir string, opts Options) error {
	w := opts.W
	if w == nil {
		w = os.Stdout
	}

	var report Report
	var result *multierror.Error

	paths, err := filepath.Glob(filepath.Join(dir, "BERT*"))
	if err != nil {
		return err
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		result = multierror.Append(result, fmt.Errorf("no BERT file in %s", dir))
	}
	for _, path := range paths {
		table, err := loadBERT(path)
		if err != nil {
			log.Errorf("%s: %v", path, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
			continue
		}
		report.Tables = append(report.Tables, BERTFile{Filename: path, Table: table})
	}

	hestPath := filepath.Join(dir, "HEST")
	switch table, err := loadHEST(hestPath); {
	case err == nil:
		report.HEST = &HESTFile{Filename: hestPath, Table: table}
	case os.IsNotExist(err):
		log.Warnf("no HEST file in %s", dir)
	default:
		log.Errorf("%s: %v", hestPath, err)
		result = multierror.Append(result, fmt.Errorf("%s: %w", hestPath, err))
	}

	dataPath := filepath.Join(dir, "data", "BERT")
	switch block, err := loadStatusBlock(dataPath); {
	case block != nil:
		// A truncated entry region still yields the entries decoded
		// before it; show them and report the failure.
		report.StatusBlock = &StatusBlockFile{Filename: dataPath, Block: block}
		if err != nil {
			log.Errorf("%s: %v", dataPath, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", dataPath, err))
		}
	case os.IsNotExist(err):
		log.Warnf("no boot error region dump in %s", filepath.Join(dir, "data"))
	default:
		log.Errorf("%s: %v", dataPath, err)
		result = multierror.Append(result, fmt.Errorf("%s: %w", dataPath, err))
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			result = multierror.Append(result, err)
		}
	} else {
		printReport(w, report)
	}
	return result.ErrorOrNil()
}

func loadBERT(path string) (*acpi.BERT, error) {
	buf, err := readTable(path)
	if err != nil {
		return nil, err
	}
	return acpi.ParseBERT(buf)
}

func loadHEST(path string) (*acpi.HEST, error) {
	buf, err := readTable(path)
	if err != nil {
		return nil, err
	}
	return acpi.ParseHEST(buf)
}

func loadStatusBlock(path string) (*acpi.GenericErrorStatusBlock, error) {
	buf, err := readTable(path)
	if err != nil {
		return nil, err
	}
	return acpi.ParseGenericErrorStatusBlock(buf)
}

var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// readTable loads a table dump, transparently unpacking xz-packed dumps the
// way acpidump archives usually ship.
func readTable(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(buf, xzMagic) {
		return buf, nil
	}
	r, err := xz.NewReader(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("unpacking xz: %w", err)
	}
	return io.ReadAll(r)
}
