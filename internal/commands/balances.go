package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gonzalo891751/contalivre-sub007/internal/code"
	"github.com/gonzalo891751/contalivre-sub007/internal/ledger"
	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

func newBalancesCommand() *cobra.Command {
	var dir string
	var movements bool

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Show per-account balances (full replay of the journal)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.close()

			entries, err := p.store.Entries()
			if err != nil {
				return err
			}

			accts := append([]model.Account(nil), p.registry.All()...)
			sort.Slice(accts, func(i, j int) bool {
				return code.Compare(accts[i].Code, accts[j].Code) < 0
			})

			views := ledger.Compute(accts, entries)

			for _, a := range accts {
				v := views[a.ID]
				if a.IsHeader {
					fmt.Printf("%-12s %s\n", a.Code, a.Name)
					continue
				}
				fmt.Printf("%-12s %-40s %12s %12s %12s %s\n",
					a.Code, a.Name,
					v.TotalDebit.StringFixed(2), v.TotalCredit.StringFixed(2),
					v.Balance.StringFixed(2), ledger.Classify(v))

				if movements {
					for _, m := range v.Movements {
						fmt.Printf("    %s  %12s %12s  %s\n",
							m.Date.Format(dateFormat), m.Debit.StringFixed(2), m.Credit.StringFixed(2), m.Memo)
					}
				}
			}

			totalDebit, totalCredit := ledger.TrialBalance(views)
			fmt.Printf("%-53s %12s %12s\n", "TOTAL", totalDebit.StringFixed(2), totalCredit.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultDir(), "project directory")
	cmd.Flags().BoolVar(&movements, "movements", false, "show each account's movements")
	return cmd
}
