// Package cli implements the degree-audit commands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brequin/brequin/audit/catalog"
	"github.com/brequin/brequin/audit/config"
	"github.com/brequin/brequin/audit/db"
)

var (
	dbPath      string
	formatFlag  string
	catalogPath string
)

var errNoStore = errors.New("no catalog store configured (set --db, DEGREE_AUDIT_DB or DATABASE_CONNECTION_STRING)")

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "degree-audit",
	Short: "Check a course schedule against degree requirements",
	Long:  "Streams a student's courses through degree requirements and reports which are fulfilled. Course catalogs come from JSON files, scraped department pages, or a SQLite/PostgreSQL store.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "SQLite catalog path (default: $DEGREE_AUDIT_DB)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	RootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "JSON catalog file (default: read from the configured store)")
}

func loadConfig() config.Config {
	cfg, err := config.ParseEnv()
	if err != nil {
		exitErr("config", err)
	}
	if dbPath != "" {
		cfg.SQLitePath = dbPath
	}
	return cfg
}

func openStore(ctx context.Context, cfg config.Config) (db.Store, error) {
	switch {
	case cfg.SQLitePath != "":
		return db.OpenSQLite(cfg.SQLitePath)
	case cfg.DatabaseURL != "":
		return db.Open(ctx, cfg.DatabaseURL)
	default:
		return nil, errNoStore
	}
}

// loadCatalog reads the --catalog file when given, otherwise the store.
func loadCatalog(ctx context.Context, cfg config.Config) (catalog.Catalog, error) {
	if catalogPath != "" {
		file, err := os.Open(catalogPath)
		if err != nil {
			return catalog.Catalog{}, err
		}
		defer file.Close()
		return catalog.ReadJSON(file)
	}

	s, err := openStore(ctx, cfg)
	if err != nil {
		return catalog.Catalog{}, err
	}
	defer s.Close()
	return db.LoadCatalog(ctx, s)
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("encode", err)
	}
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
