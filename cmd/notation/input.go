package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/notation"
)

// input is one expression to evaluate.
type input struct {
	src string
	f   notation.Format
}

// entry is an expression in a batch file.
type entry struct {
	Expr   string `yaml:"expr"`
	Format string `yaml:"format"`
}

// readInputs reads expressions from the named file, or from stdin if inname
// is "-" or if it is empty and std is true.
func readInputs(stdin io.Reader, inname string, std bool, f notation.Format) ([]input, error) {
	switch {
	case inname != "" && inname != "-":
		return readFile(inname, f)
	case inname == "-", std:
		return readLines(stdin, f)
	}
	return nil, nil
}

// readFile loads expressions from a file, auto-detecting format by extension.
// .yaml and .yml files are batches; anything else has one expression per
// line.
func readFile(path string, f notation.Format) ([]input, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read batch file: %w", err)
		}
		return readBatch(data, f)
	default:
		in, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input file: %w", err)
		}
		defer in.Close()
		return readLines(in, f)
	}
}

// readBatch parses a YAML list of entries. Entries without a format use f.
func readBatch(data []byte, f notation.Format) ([]input, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	ins := make([]input, 0, len(entries))
	for i, e := range entries {
		in := input{src: e.Expr, f: f}
		if e.Format != "" {
			g, err := notation.ParseFormat(e.Format)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i+1, err)
			}
			in.f = g
		}
		ins = append(ins, in)
	}
	return ins, nil
}

// readLines reads one expression per line, skipping blank lines.
func readLines(r io.Reader, f notation.Format) ([]input, error) {
	var ins []input
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		ins = append(ins, input{src: line, f: f})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return ins, nil
}
