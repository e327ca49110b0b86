// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saferwall/dxf"
)

var (
	all           bool
	wantHeader    bool
	wantTables    bool
	wantBlocks    bool
	wantEntities  bool
	wantObjects   bool
	wantNotifs    bool
	failsafe      bool
	binaryOut     bool
	outVersion    string
)

func prettyPrint(v interface{}) string {
	buff, err := json.Marshal(v)
	if err != nil {
		log.Printf("json marshal error: %v", err)
		return fmt.Sprintf("%+v", v)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buff, "", "\t"); err != nil {
		log.Printf("json indent error: %v", err)
		return string(buff)
	}
	return pretty.String()
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func dumpFile(filename string, cmd *cobra.Command) {
	log.Printf("processing %s", filename)

	d, err := dxf.NewReaderFile(filename, &dxf.ReaderOptions{Failsafe: failsafe})
	if err != nil {
		log.Printf("error reading %s: %v", filename, err)
		return
	}

	info := d.Info()
	fmt.Println(prettyPrint(info))

	if wantHeader || all {
		names := d.Header.Names()
		out := make(map[string][]dxf.Record, len(names))
		for _, n := range names {
			recs, _ := d.Header.Get(n)
			out[n] = recs
		}
		fmt.Println(prettyPrint(out))
	}

	if wantTables || all {
		fmt.Println(prettyPrint(d.Tables))
	}

	if wantBlocks || all {
		fmt.Println(prettyPrint(d.Blocks))
	}

	if wantEntities || all {
		fmt.Println(prettyPrint(d.Entities))
	}

	if wantObjects || all {
		fmt.Println(prettyPrint(d.Objects))
	}

	if wantNotifs || all {
		fmt.Println(prettyPrint(d.Notifications()))
	}
}

func dump(cmd *cobra.Command, args []string) {
	filePath := args[0]

	if !isDirectory(filePath) {
		dumpFile(filePath, cmd)
		return
	}

	var files []string
	filepath.Walk(filePath, func(path string, f os.FileInfo, err error) error {
		if err == nil && !f.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	for _, file := range files {
		dumpFile(file, cmd)
	}
}

func validate(cmd *cobra.Command, args []string) {
	d, err := dxf.NewReaderFile(args[0], &dxf.ReaderOptions{Failsafe: failsafe})
	if err != nil {
		log.Fatalf("error reading %s: %v", args[0], err)
	}
	errs := d.Validate()
	for _, e := range errs {
		fmt.Println(e)
	}
	for _, n := range d.Notifications() {
		fmt.Println(n)
	}
	if len(errs) > 0 {
		os.Exit(1)
	}
}

func convert(cmd *cobra.Command, args []string) {
	in, out := args[0], args[1]
	d, err := dxf.NewReaderFile(in, &dxf.ReaderOptions{Failsafe: failsafe})
	if err != nil {
		log.Fatalf("error reading %s: %v", in, err)
	}
	w := dxf.NewWriter(&dxf.WriterOptions{Version: outVersion, Binary: binaryOut})
	if err := w.WriteFile(out, d); err != nil {
		log.Fatalf("error writing %s: %v", out, err)
	}
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "dxfdump",
		Short: "A DXF drawing-interchange file inspector",
		Long:  "A DXF reader/writer built for format inspection, brought to you by Saferwall",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 0.1.0")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dumps the contents of a DXF file",
		Long:  "Parses a DXF file (ASCII or Binary) and prints the requested sections as JSON",
		Args:  cobra.MinimumNArgs(1),
		Run:   dump,
	}

	var validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validates structural invariants of a DXF file",
		Long:  "Reports dangling owner handles and duplicate table-entry names, plus any parse Notifications",
		Args:  cobra.ExactArgs(1),
		Run:   validate,
	}

	var convertCmd = &cobra.Command{
		Use:   "convert",
		Short: "Re-writes a DXF file, optionally changing physical encoding or version",
		Args:  cobra.ExactArgs(2),
		Run:   convert,
	}

	rootCmd.AddCommand(versionCmd, dumpCmd, validateCmd, convertCmd)

	rootCmd.PersistentFlags().BoolVarP(&failsafe, "failsafe", "f", true, "tolerate malformed records/sections instead of aborting")

	dumpCmd.Flags().BoolVarP(&wantHeader, "header", "", false, "dump the HEADER section variables")
	dumpCmd.Flags().BoolVarP(&wantTables, "tables", "", false, "dump the TABLES section")
	dumpCmd.Flags().BoolVarP(&wantBlocks, "blocks", "", false, "dump the BLOCKS section")
	dumpCmd.Flags().BoolVarP(&wantEntities, "entities", "", false, "dump the ENTITIES section")
	dumpCmd.Flags().BoolVarP(&wantObjects, "objects", "", false, "dump the OBJECTS section")
	dumpCmd.Flags().BoolVarP(&wantNotifs, "notifications", "", false, "dump recorded parse Notifications")
	dumpCmd.Flags().BoolVarP(&all, "all", "", false, "dump everything")

	convertCmd.Flags().BoolVarP(&binaryOut, "binary", "b", false, "write the Binary physical encoding instead of ASCII")
	convertCmd.Flags().StringVarP(&outVersion, "version", "", "", "override $ACADVER on write (defaults to the source document's version)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
