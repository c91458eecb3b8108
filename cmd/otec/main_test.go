package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/otec/pkg/backoffice"
	"github.com/dmitrymomot/otec/pkg/config"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func TestRUTCommands(t *testing.T) {
	t.Run("validate valid", func(t *testing.T) {
		out, _, err := run(t, "rut", "validate", "123456785")
		require.NoError(t, err)
		assert.Contains(t, out, "12.345.678-5")
		assert.Contains(t, out, "RUT válido")
	})

	t.Run("validate reports invalid inputs", func(t *testing.T) {
		out, _, err := run(t, "rut", "validate", "12.345.678-5", "12.345.678-9")
		require.ErrorIs(t, err, errInvalidRUT)
		assert.Contains(t, out, "Dígito verificador incorrecto")
	})

	t.Run("validate json in english", func(t *testing.T) {
		out, _, err := run(t, "--lang", "en", "-o", "json", "rut", "validate", "7.654.321-6")
		require.NoError(t, err)

		var checks []rutCheck
		require.NoError(t, json.Unmarshal([]byte(out), &checks))
		require.Len(t, checks, 1)
		assert.True(t, checks[0].Valid)
		assert.Equal(t, "rut.valid", checks[0].Code)
		assert.Equal(t, "7.654.321-6", checks[0].RUT)
		assert.NotEqual(t, "RUT válido", checks[0].Message)
	})

	t.Run("format", func(t *testing.T) {
		out, _, err := run(t, "rut", "format", "123456785", "11111111-1")
		require.NoError(t, err)
		assert.Equal(t, "12.345.678-5\n11.111.111-1\n", out)
	})

	t.Run("format invalid", func(t *testing.T) {
		_, _, err := run(t, "rut", "format", "1234")
		assert.ErrorIs(t, err, errInvalidRUT)
	})

	t.Run("check digit", func(t *testing.T) {
		out, _, err := run(t, "rut", "dv", "12.345.678")
		require.NoError(t, err)
		assert.Equal(t, "5\n", out)
	})
}

func TestRootFlags(t *testing.T) {
	t.Run("unknown output", func(t *testing.T) {
		_, _, err := run(t, "-o", "xml", "rut", "format", "123456785")
		assert.ErrorIs(t, err, errUnknownOutput)
	})

	t.Run("unknown language", func(t *testing.T) {
		_, _, err := run(t, "--lang", "fr", "rut", "format", "123456785")
		assert.ErrorIs(t, err, errUnknownLanguage)
	})
}

func TestSearchCommand(t *testing.T) {
	t.Run("filters and paginates generated data", func(t *testing.T) {
		out, _, err := run(t, "-o", "json", "search",
			"--count", "60", "--seed", "7",
			"--filter", "estado=activo",
			"--sort", "-fechaRegistro",
			"--per-page", "10",
		)
		require.NoError(t, err)

		var res searchResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, 60, res.Stats.Total)
		assert.Positive(t, res.Stats.Filtered)
		assert.Equal(t, 1, res.Stats.ActiveFilters)
		assert.Equal(t, 10, res.Page.PerPage)
		assert.LessOrEqual(t, len(res.Items), 10)
		for i, p := range res.Items {
			assert.Equal(t, backoffice.EstadoActivo, p.Estado)
			if i > 0 {
				assert.False(t, p.FechaRegistro.After(res.Items[i-1].FechaRegistro))
			}
		}
	})

	t.Run("table footer", func(t *testing.T) {
		out, _, err := run(t, "search", "--count", "20", "--per-page", "5", "--page", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "RUT")
		assert.Contains(t, out, "20 resultados")
		assert.Contains(t, out, "Página 2 de 4")
	})

	t.Run("malformed filter flag", func(t *testing.T) {
		_, _, err := run(t, "search", "--filter", "estado")
		assert.ErrorIs(t, err, errBadFilter)
	})

	t.Run("malformed filter value", func(t *testing.T) {
		_, _, err := run(t, "search", "--filter", "edad=vieja")
		assert.Error(t, err)
	})

	t.Run("unsupported file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		_, _, err := run(t, "search", "--file", path)
		assert.ErrorIs(t, err, errUnknownFile)
	})
}

func TestSeedThenSearch(t *testing.T) {
	for _, ext := range []string{"json", "yaml"} {
		t.Run(ext, func(t *testing.T) {
			out, _, err := run(t, "seed", "--count", "25", "--courses", "4", "--format", ext)
			require.NoError(t, err)

			var cat backoffice.Catalog
			if ext == "json" {
				require.NoError(t, json.Unmarshal([]byte(out), &cat))
			} else {
				require.NoError(t, yaml.Unmarshal([]byte(out), &cat))
			}
			require.Len(t, cat.Participants, 25)
			require.Len(t, cat.Courses, 4)

			path := filepath.Join(t.TempDir(), "catalog."+ext)
			require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

			target := cat.Participants[3]
			res, _, err := run(t, "-o", "json", "search", "--file", path, "--term", target.RUT)
			require.NoError(t, err)

			var found searchResult
			require.NoError(t, json.Unmarshal([]byte(res), &found))
			require.NotEmpty(t, found.Items)
			assert.Equal(t, target.ID, found.Items[0].ID)
		})
	}
}

func TestGlobalCommand(t *testing.T) {
	out, _, err := run(t, "-o", "json", "global", "--count", "150", "C-100")
	require.NoError(t, err)

	var hits []globalHit
	require.NoError(t, json.Unmarshal([]byte(out), &hits))
	require.NotEmpty(t, hits)
	assert.Equal(t, backoffice.DatasetCourses, hits[0].Dataset)
	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i-1].Relevance, hits[i].Relevance)
	}

	table, _, err := run(t, "global", "--count", "150", "--limit", "3", "C-100")
	require.NoError(t, err)
	assert.Contains(t, table, backoffice.DatasetCourses)
	assert.Contains(t, table, "3 resultados")
}

func TestImportCommand(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "participantes.csv")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("all rows valid", func(t *testing.T) {
		path := write(t, strings.Join([]string{
			"RUT;Nombre;Correo;Nota",
			"12.345.678-5;Ana García;ana@otec.cl;6,5",
			"11.111.111-1;Luis Soto;luis@otec.cl;4.0",
		}, "\n"))

		out, _, err := run(t, "import", path)
		require.NoError(t, err)
		assert.Contains(t, out, "2 de 2 filas válidas")
	})

	t.Run("invalid rows", func(t *testing.T) {
		path := write(t, strings.Join([]string{
			"rut,nombre,email",
			"12.345.678-5,Ana García,ana@otec.cl",
			"12.345.678-9,Luis Soto,luis@otec.cl",
			"123456785,Ana Duplicada,otra@otec.cl",
		}, "\n"))

		out, _, err := run(t, "import", path)
		require.ErrorIs(t, err, errInvalidRows)
		assert.Contains(t, out, "Dígito verificador incorrecto")
		assert.Contains(t, out, "1 de 3 filas válidas")
	})

	t.Run("missing rut column", func(t *testing.T) {
		path := write(t, "nombre,email\nAna,ana@otec.cl\n")
		_, _, err := run(t, "import", path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "import", filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
