// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The bertdump command decodes the ACPI error reporting tables a firmware
// leaves behind after a hardware error: the BERT and HEST headers and the
// Generic Error Status Block the BERT points at.
//
// Synopsis:
//
//	bertdump [-json] [DIRECTORY]
//
// DIRECTORY is expected to be laid out like /sys/firmware/acpi/tables (the
// default): BERT, BERT1, ... table headers, an optional HEST header, and
// the boot error region dump under data/BERT. Dumps packed with xz are
// unpacked transparently.
//
// A file that fails to decode is reported and skipped; the remaining files
// are still decoded and rendered.
package main

import (
	"os"

	flag "github.com/spf13/pflag"

	"github.com/linuxboot/bert/pkg/bertdump"
	"github.com/linuxboot/bert/pkg/log"
)

const defaultTablesDir = "/sys/firmware/acpi/tables"

var jsonOutput = flag.Bool("json", false, "dump the decoded records as JSON")

func main() {
	flag.Parse()

	dir := defaultTablesDir
	switch flag.NArg() {
	case 0:
	case 1:
		dir = flag.Arg(0)
	default:
		log.Fatalf("at most 1 positional argument expected")
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Fatalf("not a valid directory: %s", dir)
	}

	if err := bertdump.Run(dir, bertdump.Options{JSON: *jsonOutput, W: os.Stdout}); err != nil {
		log.Fatalf("%v", err)
	}
}
