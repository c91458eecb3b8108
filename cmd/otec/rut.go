package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otec/pkg/rut"
)

func newRUTCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rut",
		Short: "Validate, format and compute Chilean RUTs",
	}
	cmd.AddCommand(newRUTValidateCmd(a), newRUTFormatCmd(a), newRUTCheckDigitCmd(a))
	return cmd
}

type rutCheck struct {
	Input   string `json:"input" yaml:"input"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	RUT     string `json:"rut,omitempty" yaml:"rut,omitempty"`
}

func newRUTValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate RUT...",
		Short: "Validate RUTs with the Module-11 check digit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := a.stdout(cmd)
			checks := make([]rutCheck, len(args))
			invalid := 0
			for i, in := range args {
				res := rut.Validate(in)
				checks[i] = rutCheck{Input: in, Valid: res.Valid, Code: string(res.Code), Message: a.t(string(res.Code))}
				if res.Valid {
					checks[i].RUT = rut.Format(in)
				} else {
					invalid++
				}
			}

			if a.output != outputTable {
				if err := render(w, a.output, checks); err != nil {
					return err
				}
			} else {
				rows := make([][]string, len(checks))
				for i, c := range checks {
					rows[i] = []string{c.Input, c.RUT, status(w, c.Valid, c.Message)}
				}
				if err := renderTable(w, []string{"Entrada", "RUT", "Resultado"}, rows); err != nil {
					return err
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidRUT, invalid, len(args))
			}
			return nil
		},
	}
}

func newRUTFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format RUT...",
		Short: "Print RUTs in canonical XX.XXX.XXX-D form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := a.stdout(cmd)
			for _, in := range args {
				r, err := rut.Parse(in)
				if err != nil {
					return fmt.Errorf("%s: %s: %w", in, a.t(string(rut.Validate(in).Code)), errInvalidRUT)
				}
				fmt.Fprintln(w, r.String())
			}
			return nil
		},
	}
}

func newRUTCheckDigitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dv BODY",
		Short: "Compute the check digit of a RUT body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dv, err := rut.CheckDigit(rut.Normalize(args[0]))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintln(a.stdout(cmd), string(dv))
			return nil
		},
	}
}
