// Copyright 2025 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// guid2section annotates GUIDs with the UEFI error section type they name.
//
// Synopsis:
//
//	guid2section [-t TEMPLATE] [FILE]
//
// Options:
//
//	-t TEMPLATE:
//	    A template used to replace GUIDs. The template can refer to the
//	    following variables:
//	        * {{.GUID}}: The GUID being mapped
//	        * {{.Name}}: The section type name of the GUID or "Unknown"
//	        * {{.IsKnown}}: Set to true when the section type is registered
//	    The default template is "{{.GUID}} ({{.Name}})".
//
// Description:
//
//	If FILE is not specified, stdin is used.
package main

import (
	"io"
	"os"
	"text/template"

	flag "github.com/spf13/pflag"
	"golang.org/x/text/transform"

	"github.com/linuxboot/bert/pkg/guid2section"
	"github.com/linuxboot/bert/pkg/log"
)

var tmpl = flag.StringP("template", "t", "{{.GUID}} ({{.Name}})", "template string")

func main() {
	flag.Parse()
	r := os.Stdin
	switch flag.NArg() {
	case 0:
	case 1:
		var err error
		r, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("Error opening file: %v", err)
		}
		defer r.Close()
	default:
		log.Fatalf("At most 1 positional argument expected")
	}

	t, err := template.New("guid2section").Parse(*tmpl)
	if err != nil {
		log.Fatalf("Template not valid: %v", err)
	}

	trans := guid2section.New(guid2section.NewTemplateMapper(t))

	_, err = io.Copy(os.Stdout, transform.NewReader(r, trans))
	if err != nil {
		log.Fatalf("Error copying buffer: %v", err)
	}
}
