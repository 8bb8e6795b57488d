// Command tagmend-check corrects a metadata record against a rule
// document and prints the result.
//
// The record is a flat YAML/JSON mapping of field to value, the kind of
// document a tag dump produces. Useful for trying out rule files before
// pointing them at real MP3 collections.
//
// Usage:
//
//	tagmend-check -rules rules.yaml record.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tagmend/tagmend"
)

func main() {
	rulesPath := flag.String("rules", "rules.yaml", "path to the rule document")
	quiet := flag.Bool("quiet", false, "print only the report")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tagmend-check -rules rules.yaml <record.yaml>")
		os.Exit(1)
	}

	cfg, err := tagmend.LoadConfig(*rulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	record, err := tagmend.ParseRecord(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	corrected, report := tagmend.Correct(record, cfg)

	if !*quiet {
		fmt.Println("=== BEFORE ===")
		printRecord(record)
		fmt.Println("\n=== AFTER ===")
		printRecord(corrected)
		fmt.Println()
	}

	if report.Empty() {
		fmt.Println("No changes.")
		return
	}

	fmt.Println("=== REPORT ===")
	fmt.Println(report)

	if len(report.Rejections()) > 0 {
		os.Exit(2)
	}
}

func printRecord(record *tagmend.Record) {
	for field, value := range record.All() {
		fmt.Printf("%s: %s\n", field, value)
	}
}
