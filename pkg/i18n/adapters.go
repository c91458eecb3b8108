package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads catalogs from some source.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves in-memory catalogs.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FSAdapter loads every file in a directory of fsys that the parser supports.
// Catalogs for the same language are merged, later files (in lexical order)
// overriding top-level keys of earlier ones.
type FSAdapter struct {
	FS     fs.FS
	Dir    string
	Parser Parser
}

// NewFSAdapter creates an FSAdapter with the YAML parser.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{FS: fsys, Dir: dir, Parser: NewYAMLParser()}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	// fs.ReadDir returns entries sorted by name.
	entries, err := fs.ReadDir(a.FS, a.Dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	all := make(map[string]map[string]any)
	for _, e := range entries {
		if e.IsDir() || !a.Parser.SupportsFileExtension(path.Ext(e.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := path.Join(a.Dir, e.Name())
		content, err := fs.ReadFile(a.FS, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		catalogs, err := a.Parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, m := range catalogs {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(m))
			}
			maps.Copy(all[lang], m)
		}
	}
	if len(all) == 0 {
		return nil, ErrNoTranslationsFound
	}
	return all, nil
}
