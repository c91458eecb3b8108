package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otec/pkg/logger"
	"github.com/dmitrymomot/otec/pkg/search"
)

type globalHit struct {
	Dataset   string   `json:"dataset" yaml:"dataset"`
	Label     string   `json:"label" yaml:"label"`
	Fields    []string `json:"fields" yaml:"fields"`
	Relevance int      `json:"relevance" yaml:"relevance"`
}

func newGlobalCmd(a *app) *cobra.Command {
	var (
		data  dataFlags
		limit int
	)

	cmd := &cobra.Command{
		Use:   "global TERM",
		Short: "Search participants, courses and enrollments at once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := data.load()
			if err != nil {
				return err
			}

			term := strings.Join(args, " ")
			hits := cat.Search(term)
			if limit > 0 && len(hits) > limit {
				hits = hits[:limit]
			}
			a.log.DebugContext(cmd.Context(), "global search", logger.Count(len(hits)))

			w := a.stdout(cmd)
			if a.output != outputTable {
				out := make([]globalHit, len(hits))
				for i, h := range hits {
					out[i] = globalHit{Dataset: h.Dataset, Label: h.Label, Fields: h.Fields, Relevance: h.Relevance}
				}
				return render(w, a.output, out)
			}

			var rows [][]string
			for _, g := range search.GroupByDataset(hits) {
				for _, h := range g.Hits {
					rows = append(rows, []string{g.Dataset, h.Label, strings.Join(h.Fields, ", "), strconv.Itoa(h.Relevance)})
				}
			}
			if err := renderTable(w, []string{"Colección", "Registro", "Campos", "Relevancia"}, rows); err != nil {
				return err
			}
			line(w, a.tr.N(a.lang, "search.results", len(hits)))
			return nil
		},
	}

	data.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum hits, 0 for all")
	return cmd
}
