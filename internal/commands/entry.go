package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gonzalo891751/contalivre-sub007/internal/accounts"
	"github.com/gonzalo891751/contalivre-sub007/internal/auditlog"
	"github.com/gonzalo891751/contalivre-sub007/internal/formula"
	"github.com/gonzalo891751/contalivre-sub007/internal/journal"
	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

const dateFormat = "2006-01-02"

func newEntryCommand() *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Journal entry operations",
	}
	entryCmd.AddCommand(newEntryAddCommand())
	entryCmd.AddCommand(newEntryListCommand())
	return entryCmd
}

func newEntryAddCommand() *cobra.Command {
	var dir, dateStr, memo string
	var debits, credits []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Post a journal entry",
		Long: `Post a balanced journal entry. Lines are given as CODE=AMOUNT;
amounts accept both regional formats and "=" formulas, e.g.
--debit 1.01=1.234,56 --credit 4.01==610*2.
The entry is validated and rejected before anything is persisted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			defer p.close()

			date, err := time.Parse(dateFormat, dateStr)
			if err != nil {
				return fmt.Errorf("parsing date %q: %w", dateStr, err)
			}

			var lines []model.EntryLine
			for _, raw := range debits {
				line, err := parseLine(p.registry, raw, model.SideDebit)
				if err != nil {
					return err
				}
				lines = append(lines, line)
			}
			for _, raw := range credits {
				line, err := parseLine(p.registry, raw, model.SideCredit)
				if err != nil {
					return err
				}
				lines = append(lines, line)
			}

			entry := model.JournalEntry{
				ID:    uuid.NewString(),
				Date:  date,
				Memo:  memo,
				Lines: lines,
			}

			res := journal.Validate(entry, p.registry)
			if !res.OK {
				return fmt.Errorf("validation failed: %s", strings.Join(res.Errors, "; "))
			}

			if err := p.store.PutEntry(entry); err != nil {
				return err
			}

			logErr := auditlog.Append(p.dir, []auditlog.Entry{{
				Timestamp: time.Now().UTC(),
				Action:    "entry.post",
				Details:   memo,
				RefID:     entry.ID,
			}})
			if logErr != nil {
				return fmt.Errorf("writing audit log: %w", logErr)
			}

			fmt.Printf("Posted entry %s (%s, %d lines)\n", entry.ID, entry.TotalDebit().StringFixed(2), len(lines))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultDir(), "project directory")
	cmd.Flags().StringVar(&dateStr, "date", "", "entry date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&memo, "memo", "", "entry memo")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debit line as CODE=AMOUNT (repeatable)")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credit line as CODE=AMOUNT (repeatable)")
	return cmd
}

// parseLine turns "1.01=1.234,56" into an entry line on the given side.
func parseLine(registry *accounts.Registry, raw string, side model.Side) (model.EntryLine, error) {
	acctCode, amountStr, found := strings.Cut(raw, "=")
	if !found {
		return model.EntryLine{}, fmt.Errorf("line %q: expected CODE=AMOUNT", raw)
	}

	acct, ok := registry.GetByCode(acctCode)
	if !ok {
		return model.EntryLine{}, fmt.Errorf("line %q: code %q: %w", raw, acctCode, accounts.ErrAccountNotFound)
	}

	amount, err := formula.Evaluate(amountStr)
	if err != nil {
		return model.EntryLine{}, fmt.Errorf("line %q: %w", raw, err)
	}

	line := model.EntryLine{AccountID: acct.ID}
	if side == model.SideDebit {
		line.Debit = amount
	} else {
		line.Credit = amount
	}
	return line, nil
}

func newEntryListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posted journal entries",
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
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Date.Before(entries[j].Date)
			})

			for _, e := range entries {
				fmt.Printf("%s  %s  %s  %s\n", e.Date.Format(dateFormat), e.ID, e.TotalDebit().StringFixed(2), e.Memo)
				for _, l := range e.Lines {
					name := l.AccountID
					if a, ok := p.registry.Get(l.AccountID); ok {
						name = a.Code + " " + a.Name
					}
					if !l.Debit.IsZero() {
						fmt.Printf("    %-44s %12s\n", name, l.Debit.StringFixed(2))
					} else {
						fmt.Printf("        %-44s %16s\n", name, l.Credit.StringFixed(2))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultDir(), "project directory")
	return cmd
}
