package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pawstars-api/internal/domain/zodiac"
)

func newZodiacCmd() *cobra.Command {
	var date, tm string

	cmd := &cobra.Command{
		Use:   "zodiac",
		Short: "Imprime el 12지지 de una fecha (y hora) de nacimiento",
		Example: `  pawstars-api zodiac --date 1988-03-01
  pawstars-api zodiac --date 1988-03-01 --time 12:10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := zodiac.Read(date, tm)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Label)
			return err
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "fecha de nacimiento YYYY-MM-DD")
	cmd.Flags().StringVar(&tm, "time", "", "hora de nacimiento HH:MM (opcional)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
