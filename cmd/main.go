// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Command bejdump decodes a BEJ-encoded Redfish resource to JSON using
// its schema dictionary.
//
// Usage:
//
//	bejdump -s <schema.bin> -a <annotation.bin> -b <data.bej> -o <out.json>
//
// The annotation dictionary is read and ignored; annotation members are
// skipped during decoding.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	bejparser "github.com/saferwall/bej"
	"github.com/saferwall/bej/log"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// Exit codes.
const (
	exitOK = iota
	exitUsage
	exitSchemaOpen
	exitAnnotationOpen
	exitBejOpen
	exitDictParse
	exitOutputOpen
	exitDecode
)

var (
	schemaPath     string
	annotationPath string
	bejPath        string
	outputPath     string
	dumpDict       bool
	verbose        bool
)

func main() {

	rootCmd := &cobra.Command{
		Use:   "bejdump -s <schema.bin> -a <annotation.bin> -b <data.bej> -o <out.json>",
		Short: "Decode Binary Encoded JSON (DMTF DSP0218) to JSON",
		Run: func(cmd *cobra.Command, args []string) {
			if schemaPath == "" || annotationPath == "" || bejPath == "" ||
				outputPath == "" {
				cmd.Usage()
				os.Exit(exitUsage)
			}
			os.Exit(run())
		},
	}

	rootCmd.Flags().StringVarP(&schemaPath, "schema", "s", "",
		"Schema dictionary file")
	rootCmd.Flags().StringVarP(&annotationPath, "annotation", "a", "",
		"Annotation dictionary file (read and ignored)")
	rootCmd.Flags().StringVarP(&bejPath, "bej", "b", "",
		"BEJ-encoded input file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output JSON file")
	rootCmd.Flags().BoolVar(&dumpDict, "dict", false,
		"Dump the parsed dictionary entry table to stdout")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false,
		"Log decode diagnostics")

	verCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bejdump version %s\n", version)
		},
	}
	rootCmd.AddCommand(verCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUsage)
	}
}

func run() int {

	schema, err := ioutil.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: open schema dictionary %s: %v\n",
			schemaPath, err)
		return exitSchemaOpen
	}

	// The annotation dictionary is a required input but annotation members
	// are skipped, so its content is never consulted.
	if _, err := ioutil.ReadFile(annotationPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: open annotation dictionary %s: %v\n",
			annotationPath, err)
		return exitAnnotationOpen
	}

	dict, err := bejparser.LoadDictionary(schema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: parse schema dictionary %s: %v\n",
			schemaPath, err)
		return exitDictParse
	}

	if dumpDict {
		printDictionary(os.Stdout, dict)
	}

	level := log.LevelError
	if verbose {
		level = log.LevelDebug
	}
	logger := log.NewFilter(log.NewStdLogger(os.Stderr),
		log.FilterLevel(level))

	file, err := bejparser.New(bejPath, dict, &bejparser.Options{
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: open bej stream %s: %v\n",
			bejPath, err)
		return exitBejOpen
	}
	defer file.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: open output %s: %v\n",
			outputPath, err)
		return exitOutputOpen
	}

	if err := file.Decode(out); err != nil {
		out.Close()
		// Never leave a truncated document behind.
		os.Remove(outputPath)
		fmt.Fprintf(os.Stderr, "ERROR: decode %s: %v\n", bejPath, err)
		return exitDecode
	}

	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		fmt.Fprintf(os.Stderr, "ERROR: close output %s: %v\n",
			outputPath, err)
		return exitDecode
	}
	return exitOK
}
