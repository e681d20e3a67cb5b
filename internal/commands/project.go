package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gonzalo891751/contalivre-sub007/internal/accounts"
	"github.com/gonzalo891751/contalivre-sub007/internal/config"
	"github.com/gonzalo891751/contalivre-sub007/internal/store"
)

// defaultDir resolves the project directory: CONTALIVRE_DIR if set
// (typically via a .env file), otherwise the current directory.
func defaultDir() string {
	if dir := os.Getenv("CONTALIVRE_DIR"); dir != "" {
		return dir
	}
	return "."
}

// project bundles everything a command needs: config, the open store
// and a registry built from the current account snapshot.
type project struct {
	dir      string
	cfg      *config.Config
	store    *store.Store
	registry *accounts.Registry
}

func openProject(dir string) (*project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not a contalivre project (run init first): %w", err)
	}

	st, err := store.Open(filepath.Join(absDir, cfg.Books.File))
	if err != nil {
		return nil, err
	}

	accts, err := st.Accounts()
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &project{
		dir:      absDir,
		cfg:      cfg,
		store:    st,
		registry: accounts.NewRegistry(accts),
	}, nil
}

func (p *project) close() {
	_ = p.store.Close()
}
