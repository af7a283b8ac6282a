// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/ralgen/config"
	"github.com/ezrec/ralgen/ral"
)

func main() {
	var input string
	var output string
	var conf string
	var strict bool
	var verbose bool

	flag.StringVar(&input, "i", "register_definitions.xlsx", "Register table (.xlsx, .csv, .tsv)")
	flag.StringVar(&output, "o", "uvm_ral_model.sv", "Generated model, - for stdout")
	flag.StringVar(&conf, "c", "", "YAML options file")
	flag.BoolVar(&strict, "strict", false, "Report dropped fields and unreadable values")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	overrides := config.BindFlags(flag.CommandLine)

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	opts := config.Default()
	if len(conf) != 0 {
		var err error
		opts, err = config.Load(conf)
		if err != nil {
			log.Fatalf("%v: %v", conf, err)
		}
	}

	// Flags given on the command line win over the options file.
	overrides.Apply(&opts)

	gen := ral.NewGenerator(opts)
	gen.Verbose = verbose
	if strict || verbose {
		gen.Diagnose = func(diag ral.Diagnostic) {
			log.Printf("%v: %v", input, diag)
		}
	}

	err := gen.Convert(input, output)
	if err != nil {
		log.Fatal(err)
	}

	if output != "-" {
		fmt.Printf("UVM RAL file generated: %v\n", output)
	}
}
