package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/gonzalo891751/contalivre-sub007/internal/accounts"
	"github.com/gonzalo891751/contalivre-sub007/internal/auditlog"
	"github.com/gonzalo891751/contalivre-sub007/internal/code"
	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

func newAccountCommand() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Chart of accounts operations",
	}
	accountCmd.AddCommand(newAccountListCommand())
	accountCmd.AddCommand(newAccountAddCommand())
	accountCmd.AddCommand(newAccountRemoveCommand())
	accountCmd.AddCommand(newAccountNextCodeCommand())
	return accountCmd
}

func newAccountListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.close()

			accts := append([]model.Account(nil), p.registry.All()...)
			sort.Slice(accts, func(i, j int) bool {
				return code.Compare(accts[i].Code, accts[j].Code) < 0
			})

			for _, a := range accts {
				marker := ""
				if a.IsHeader {
					marker = " [rubro]"
				} else if a.IsContra {
					marker = " [regularizadora]"
				}
				fmt.Printf("%-12s %-40s %s%s\n", a.Code, a.Name, a.Kind, marker)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultDir(), "project directory")
	return cmd
}

func newAccountAddCommand() *cobra.Command {
	var dir, name, kind, parentCode, acctCode, side, description string
	var header bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account to the chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.close()

			parentID := ""
			if parentCode != "" {
				parent, ok := p.registry.GetByCode(parentCode)
				if !ok {
					return fmt.Errorf("parent code %q: %w", parentCode, accounts.ErrAccountNotFound)
				}
				parentID = parent.ID
			}

			acct, err := p.registry.Create(accounts.CreateParams{
				Code:        acctCode,
				Name:        name,
				Kind:        model.Kind(kind),
				ParentID:    parentID,
				NormalSide:  model.Side(side),
				IsHeader:    header,
				Description: description,
			})
			if err != nil {
				return err
			}
			if err := p.store.PutAccount(acct); err != nil {
				return err
			}

			logErr := auditlog.Append(p.dir, []auditlog.Entry{{
				Timestamp: time.Now().UTC(),
				Action:    "account.create",
				Details:   acct.Code + " " + acct.Name,
				RefID:     acct.ID,
			}})
			if logErr != nil {
				return fmt.Errorf("writing audit log: %w", logErr)
			}

			fmt.Printf("Created %s %s (%s)\n", acct.Code, acct.Name, acct.Kind)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultDir(), "project directory")
	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&kind, "kind", "", "asset|liability|equity|income|expense (required)")
	_ = cmd.MarkFlagRequired("kind")
	cmd.Flags().StringVar(&parentCode, "parent", "", "parent account code")
	cmd.Flags().StringVar(&acctCode, "code", "", "account code (allocated when omitted)")
	cmd.Flags().StringVar(&side, "normal-side", "", "debit|credit (defaulted from kind)")
	cmd.Flags().BoolVar(&header, "header", false, "grouping account, not postable")
	cmd.Flags().StringVar(&description, "description", "", "account description")
	return cmd
}

func newAccountRemoveCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "rm <code>",
		Short: "Remove an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.close()

			acct, ok := p.registry.GetByCode(args[0])
			if !ok {
				return fmt.Errorf("code %q: %w", args[0], accounts.ErrAccountNotFound)
			}

			entries, err := p.store.Entries()
			if err != nil {
				return err
			}
			if err := p.registry.Delete(acct.ID, entries); err != nil {
				return err
			}
			if err := p.store.DeleteAccount(acct.ID); err != nil {
				return err
			}

			logErr := auditlog.Append(p.dir, []auditlog.Entry{{
				Timestamp: time.Now().UTC(),
				Action:    "account.delete",
				Details:   acct.Code + " " + acct.Name,
				RefID:     acct.ID,
			}})
			if logErr != nil {
				return fmt.Errorf("writing audit log: %w", logErr)
			}

			fmt.Printf("Removed %s %s\n", acct.Code, acct.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultDir(), "project directory")
	return cmd
}

func newAccountNextCodeCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "next-code [parent-code]",
		Short: "Show the next free code under a parent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.close()

			parentID := ""
			if len(args) > 0 {
				parent, ok := p.registry.GetByCode(args[0])
				if !ok {
					return fmt.Errorf("parent code %q: %w", args[0], accounts.ErrAccountNotFound)
				}
				parentID = parent.ID
			}

			next, err := p.registry.NextCode(parentID)
			if err != nil {
				return err
			}
			fmt.Println(next)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultDir(), "project directory")
	return cmd
}
