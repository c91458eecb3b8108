package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otec/pkg/backoffice"
	"github.com/dmitrymomot/otec/pkg/logger"
	"github.com/dmitrymomot/otec/pkg/search"
)

type searchResult struct {
	Items []backoffice.Participant `json:"items" yaml:"items"`
	Stats search.Stats             `json:"stats" yaml:"stats"`
	Page  search.PageInfo          `json:"page" yaml:"page"`
	Query search.Query             `json:"query" yaml:"query"`
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		data          dataFlags
		term          string
		filters       []string
		sortBy        string
		page          int
		perPage       int
		exact         bool
		caseSensitive bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search, filter, sort and paginate participants",
		Example: `  otec search --term garcía --filter estado=activo --sort -fechaRegistro
  otec search --filter nota=4..7 --filter curso=C-101,C-102 --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			started := time.Now()

			cat, err := data.load()
			if err != nil {
				return err
			}

			engine := backoffice.NewParticipantEngine()
			values, err := parseFilters(engine.Specs(), filters)
			if err != nil {
				return err
			}
			if perPage <= 0 {
				perPage = a.cfg.PerPage
			}

			s, err := search.NewSession(engine, cat.Participants,
				search.WithDebounce[backoffice.Participant](a.cfg.Debounce),
				search.WithMemoSize[backoffice.Participant](a.cfg.MemoSize),
				search.WithPerPage[backoffice.Participant](perPage),
				search.WithTextOptions[backoffice.Participant](search.TextOptions{ExactMatch: exact, CaseSensitive: caseSensitive}),
				search.WithSort[backoffice.Participant](search.ParseSort(sortBy)),
				search.WithSessionLogger[backoffice.Participant](a.log.With(logger.Component("search"))),
			)
			if err != nil {
				return err
			}
			defer s.Close()

			s.SetTerm(term)
			s.FlushTerm()
			for key, v := range values {
				s.SetFilter(key, v)
			}
			snap := s.SetPage(page)

			a.log.InfoContext(ctx, "search finished",
				logger.Dataset(backoffice.DatasetParticipants),
				slog.Int("filtered", snap.Stats.Filtered),
				logger.Duration(time.Since(started)),
			)

			w := a.stdout(cmd)
			if a.output != outputTable {
				return render(w, a.output, searchResult{Items: snap.Items, Stats: snap.Stats, Page: snap.Page, Query: s.Query()})
			}
			if err := renderTable(w, []string{"RUT", "Nombre", "Estado", "Curso", "Nota", "Registro"}, participantRows(snap.Items)); err != nil {
				return err
			}
			line(w, fmt.Sprintf("%s · %s",
				a.tr.N(a.lang, "search.results", snap.Stats.Filtered),
				a.t("search.page", "page", strconv.Itoa(snap.Page.Page), "pages", strconv.Itoa(snap.Page.TotalPages)),
			))
			return nil
		},
	}

	data.register(cmd)
	cmd.Flags().StringVarP(&term, "term", "t", "", "free-text search term")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as key=value, repeatable")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "sort key, prefix with - for descending")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "page size, defaults to OTEC_PER_PAGE")
	cmd.Flags().BoolVar(&exact, "exact", false, "match whole field values only")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match case")
	return cmd
}

func parseFilters(specs search.Specs, raw []string) (search.Values, error) {
	m := make(map[string]string, len(raw))
	for _, f := range raw {
		key, value, ok := strings.Cut(f, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", errBadFilter, f)
		}
		m[strings.TrimSpace(key)] = value
	}
	return search.ParseValues(specs, m)
}

func participantRows(items []backoffice.Participant) [][]string {
	rows := make([][]string, len(items))
	for i, p := range items {
		nota := "-"
		if p.Nota != nil {
			nota = strconv.FormatFloat(*p.Nota, 'f', 1, 64)
		}
		registro := "-"
		if !p.FechaRegistro.IsZero() {
			registro = p.FechaRegistro.Format(time.DateOnly)
		}
		rows[i] = []string{p.RUT, p.Nombre, string(p.Estado), p.Curso, nota, registro}
	}
	return rows
}
