package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gonzalo891751/contalivre-sub007/internal/code"
	"github.com/gonzalo891751/contalivre-sub007/internal/importer"
	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

func newImportCommand() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Reconcile external data against the books",
	}
	importCmd.AddCommand(newImportMatchCommand())
	return importCmd
}

func newImportMatchCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "match <file.csv>",
		Short: "Match imported rows against the chart of accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			rows, err := importer.ReadRows(f)
			if err != nil {
				return err
			}

			// Match against a code-ordered chart so ties between
			// candidates resolve the same way on every run.
			accts := append([]model.Account(nil), p.registry.All()...)
			sort.Slice(accts, func(i, j int) bool {
				return code.Compare(accts[i].Code, accts[j].Code) < 0
			})

			results := importer.MatchRows(rows, accts)
			for _, r := range results {
				label := r.Row.Name
				if label == "" {
					label = r.Row.Code
				}
				if r.Match == nil {
					fmt.Printf("%-40s -> (sin candidato)\n", label)
					continue
				}
				acct, _ := p.registry.Get(r.Match.AccountID)
				fmt.Printf("%-40s -> %-12s %-40s %s/%s (%.2f)\n",
					label, acct.Code, acct.Name, r.Match.Method, r.Match.Confidence, r.Match.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultDir(), "project directory")
	return cmd
}
