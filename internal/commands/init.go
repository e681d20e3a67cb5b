package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gonzalo891751/contalivre-sub007/internal/accounts"
	"github.com/gonzalo891751/contalivre-sub007/internal/auditlog"
	"github.com/gonzalo891751/contalivre-sub007/internal/config"
	"github.com/gonzalo891751/contalivre-sub007/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new set of books",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default(name)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	st, err := store.Open(filepath.Join(dir, cfg.Books.File))
	if err != nil {
		return err
	}
	defer st.Close()

	// Seed the starter chart of accounts.
	chart := accounts.DefaultChart()
	var logEntries []auditlog.Entry
	now := time.Now().UTC()
	for _, a := range chart {
		if err := st.PutAccount(a); err != nil {
			return fmt.Errorf("seeding account %s: %w", a.Code, err)
		}
		logEntries = append(logEntries, auditlog.Entry{
			Timestamp: now,
			Action:    "account.create",
			Details:   a.Code + " " + a.Name,
			RefID:     a.ID,
		})
	}
	if err := auditlog.Append(dir, logEntries); err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}

	fmt.Printf("Initialized books for %s at %s (%d accounts)\n", name, dir, len(chart))
	return nil
}
