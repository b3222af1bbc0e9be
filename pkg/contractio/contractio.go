// Package contractio discovers evmm contract source files, reads their
// contents, and writes assembled bytecode back out — the filesystem
// collaborator the assembler core never touches directly.
package contractio

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evmasm-go/evmasm/pkg/asmcore/asmerr"
)

const sourceExt = ".evmm"
const outputExt = ".evmasm"

// Contract is one discovered source file paired with its contents.
type Contract struct {
	// Stem is the filename without directory or extension, e.g. "Token".
	Stem string
	// Source is the full path the contents were read from.
	Source string
	// Body is the raw evmm source text.
	Body string
}

// DiscoverDir returns every .evmm file directly under dir, sorted by stem
// for deterministic compile order.
func DiscoverDir(dir string) ([]Contract, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &asmerr.ContractNotFound{Path: dir}
		}
		return nil, err
	}

	var contracts []Contract
	for _, e := range entries {
		if e.IsDir() || strings.ToLower(filepath.Ext(e.Name())) != sourceExt {
			continue
		}
		path := filepath.Join(dir, e.Name())
		c, err := readContract(path)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	sort.Slice(contracts, func(i, j int) bool { return contracts[i].Stem < contracts[j].Stem })
	return contracts, nil
}

// DiscoverFile reads a single .evmm file.
func DiscoverFile(path string) (Contract, error) {
	return readContract(path)
}

func readContract(path string) (Contract, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Contract{}, &asmerr.ContractNotFound{Path: path}
		}
		return Contract{}, err
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Contract{Stem: stem, Source: path, Body: string(body)}, nil
}

// OutputName derives the assembled output filename for a contract, with an
// "_deploy" suffix inserted before the extension when deployment is true.
func OutputName(stem string, deployment bool) string {
	if deployment {
		return stem + "_deploy" + outputExt
	}
	return stem + outputExt
}

// Write writes bytecode hex to <outDir>/<name>, creating outDir if needed.
func Write(outDir, name, bytecodeHex string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, name), []byte(bytecodeHex), 0o644)
}
