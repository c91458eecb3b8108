package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/otec/pkg/backoffice"
	"github.com/dmitrymomot/otec/pkg/mockdata"
)

// dataFlags selects the catalog a command works on: a file written by
// "otec seed", or generated demo data.
type dataFlags struct {
	file         string
	participants int
	courses      int
	seed         uint64
}

func (f *dataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "catalog file (.json, .yaml) written by otec seed")
	cmd.Flags().IntVar(&f.participants, "count", 150, "generated participants when no file is given")
	cmd.Flags().IntVar(&f.courses, "courses", 12, "generated courses when no file is given")
	cmd.Flags().Uint64Var(&f.seed, "seed", mockdata.DefaultSeed, "random seed for generated data")
}

func (f *dataFlags) load() (backoffice.Catalog, error) {
	if f.file == "" {
		return mockdata.New(mockdata.WithSeed(f.seed)).Catalog(f.participants, f.courses), nil
	}
	return readCatalog(f.file)
}

func readCatalog(path string) (backoffice.Catalog, error) {
	var cat backoffice.Catalog
	content, err := os.ReadFile(path)
	if err != nil {
		return cat, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(content, &cat)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cat)
	default:
		return cat, fmt.Errorf("%s: %w", path, errUnknownFile)
	}
	if err != nil {
		return cat, errors.Join(fmt.Errorf("decode %s", path), err)
	}
	return cat, nil
}
