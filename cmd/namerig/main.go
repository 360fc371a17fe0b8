package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	namerig "github.com/namerig/namerig"
	"github.com/namerig/namerig/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "parse":
		parseCmd(os.Args[2:])
	case "build":
		buildCmd(os.Args[2:])
	case "mirror":
		mirrorCmd(os.Args[2:])
	case "renumber":
		renumberCmd(os.Args[2:])
	case "sort":
		sortCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `namerig CLI

Usage:
  namerig parse    -config schema.yaml NAME...
  namerig build    -config schema.yaml -set Part=Value [-set ...] [-sep _]
  namerig mirror   -config schema.yaml NAME...
  namerig renumber -config schema.yaml -by N NAME...
  namerig sort     -config schema.yaml NAME...`)
}

func loadSchema(path string) *namerig.Schema {
	if path == "" {
		return namerig.DefaultSchema()
	}
	s, err := config.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "namerig: load %s: %v\n", path, err)
		os.Exit(1)
	}
	return s
}

// setFlags collects repeated -set Part=Value pairs.
type setFlags map[string]string

func (f setFlags) String() string { return "" }

func (f setFlags) Set(v string) error {
	k, val, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("want Part=Value, got %q", v)
	}
	f[k] = val
	return nil
}

func parseCmd(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	cfg := fs.String("config", "", "schema descriptor file (json/yaml)")
	_ = fs.Parse(args)
	names := fs.Args()
	if len(names) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	s := loadSchema(*cfg)

	type result struct {
		Name  string            `json:"name"`
		Parts map[string]string `json:"parts"`
	}
	out := make([]result, 0, len(names))
	for _, n := range names {
		out = append(out, result{Name: n, Parts: s.Decompose(n)})
	}
	emitJSON(out)
}

func buildCmd(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	cfg := fs.String("config", "", "schema descriptor file (json/yaml)")
	sep := fs.String("sep", "_", "delimiter between parts")
	set := setFlags{}
	fs.Var(set, "set", "Part=Value pair (repeatable)")
	_ = fs.Parse(args)
	if len(set) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	s := loadSchema(*cfg)
	fmt.Println(s.Combine(set, *sep))
}

func mirrorCmd(args []string) {
	fs := flag.NewFlagSet("mirror", flag.ExitOnError)
	cfg := fs.String("config", "", "schema descriptor file (json/yaml)")
	_ = fs.Parse(args)
	names := fs.Args()
	if len(names) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	s := loadSchema(*cfg)
	for _, n := range names {
		fmt.Println(s.MirrorNameIn(n, names))
	}
}

func renumberCmd(args []string) {
	fs := flag.NewFlagSet("renumber", flag.ExitOnError)
	cfg := fs.String("config", "", "schema descriptor file (json/yaml)")
	by := fs.Int("by", 1, "amount to add to each index")
	_ = fs.Parse(args)
	names := fs.Args()
	if len(names) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	s := loadSchema(*cfg)
	for _, n := range names {
		fmt.Println(s.IncreaseIndex(n, *by))
	}
}

func sortCmd(args []string) {
	fs := flag.NewFlagSet("sort", flag.ExitOnError)
	cfg := fs.String("config", "", "schema descriptor file (json/yaml)")
	_ = fs.Parse(args)
	names := fs.Args()
	if len(names) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	s := loadSchema(*cfg)
	for _, n := range s.SortByIndex(names) {
		fmt.Println(n)
	}
}

func emitJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "namerig: encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
