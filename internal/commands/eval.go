package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gonzalo891751/contalivre-sub007/internal/formula"
)

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an amount expression",
		Long: `Evaluate an amount the way entry fields do: a leading "=" starts a
formula (=50*1000, =(1.234,56+10)/2), anything else is a plain
comma-decimal amount.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := formula.Evaluate(args[0])
			if err != nil {
				return err
			}
			fmt.Println(value.StringFixed(2))
			return nil
		},
	}
}
