package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otec/pkg/importer"
	"github.com/dmitrymomot/otec/pkg/logger"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE.csv",
		Short: "Validate a participant upload before loading it",
		Long: `Reads a CSV file with a header row (comma or semicolon separated),
validates every row (RUT, nombre, email, teléfono, nota, fecha de registro)
and reports the invalid ones. With -o json|yaml the full report, including
the decoded participants, is written instead of the table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := importer.ReadCSV(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			im := importer.New(importer.WithLogger(a.log.With(logger.Component("importer"))))
			report := im.Validate(ctx, rows).Translate(a.tr.Translate(a.lang))

			w := a.stdout(cmd)
			if a.output != outputTable {
				if err := render(w, a.output, report); err != nil {
					return err
				}
			} else {
				var out [][]string
				for _, r := range report.Invalid {
					for _, e := range r.Errors {
						out = append(out, []string{strconv.Itoa(r.Line), r.Row.Get("rut"), e.Field, status(w, false, e.Message)})
					}
				}
				if len(out) > 0 {
					if err := renderTable(w, []string{"Fila", "RUT", "Campo", "Error"}, out); err != nil {
						return err
					}
				}
				line(w, a.t("import.summary",
					"valid", strconv.Itoa(len(report.Valid)),
					"total", strconv.Itoa(report.Total),
				))
			}

			if len(report.Invalid) > 0 {
				return fmt.Errorf("%w: %d", errInvalidRows, len(report.Invalid))
			}
			return nil
		},
	}
}
