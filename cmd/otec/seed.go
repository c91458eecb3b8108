package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otec/pkg/logger"
	"github.com/dmitrymomot/otec/pkg/mockdata"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		participants int
		courses      int
		seed         uint64
		format       string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a deterministic demo catalog",
		Example: `  otec seed --count 500 --format yaml > catalog.yaml
  otec search -f catalog.yaml --term soto`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := mockdata.New(mockdata.WithSeed(seed)).Catalog(participants, courses)
			a.log.DebugContext(cmd.Context(), "catalog generated",
				logger.Count(len(cat.Participants)),
				logger.Component("mockdata"),
			)
			return render(a.stdout(cmd), format, cat)
		},
	}

	cmd.Flags().IntVar(&participants, "count", 150, "number of participants")
	cmd.Flags().IntVar(&courses, "courses", 12, "number of courses")
	cmd.Flags().Uint64Var(&seed, "seed", mockdata.DefaultSeed, "random seed")
	cmd.Flags().StringVar(&format, "format", outputJSON, "file format (json|yaml)")
	return cmd
}
