/*
Copyright © 2026 The Cosmos Authors
*/
package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/config"
	"github.com/phukemrunal322-hue/cosmos-sub003/models"
	"github.com/phukemrunal322-hue/cosmos-sub003/store"
	"github.com/spf13/cobra"
)

const defaultDBName = "records.db"

type transferResult struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Tasks    int    `json:"tasks"`
	Meetings int    `json:"meetings"`
	Projects int    `json:"projects"`
}

// importCmd loads a records file into SQLite
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a records file into the SQLite store",
	Long: `Read tasks, meetings and projects from a JSON, YAML or TOML file and
replace the contents of the SQLite store with them. Records are validated
before anything is written.`,
	Example: `  cosmos import records.yaml
  cosmos import export.json --db ~/.cosmos/records.db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			dbPath = defaultDBPath()
		}
		dbPath, err := config.ExpandPath(dbPath)
		if err != nil {
			return configError(err)
		}

		src, err := store.NewFileRecordStore(nil, args[0])
		if err != nil {
			return recordsError(err)
		}
		dst, err := store.NewSQLiteRecordStore(dbPath)
		if err != nil {
			return recordsError(err)
		}
		defer func() { _ = dst.Close() }()

		set, err := transfer(cmd.Context(), src, dst)
		if err != nil {
			return recordsError(err)
		}
		return reportTransfer(cmd, transferResult{
			From: args[0], To: dbPath,
			Tasks: len(set.Tasks), Meetings: len(set.Meetings), Projects: len(set.Projects),
		})
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("db", "", "SQLite database to write (default: the configured sqlite records path)")
}

// defaultDBPath is the configured database when records live in SQLite,
// else a records.db beside the configured records file.
func defaultDBPath() string {
	rc := config.LoadRecordsConfig()
	if rc.Driver == config.DriverSQLite {
		return rc.Path
	}
	return filepath.Join(filepath.Dir(rc.Path), defaultDBName)
}

// transfer copies every record from src into dst.
func transfer(ctx context.Context, src store.RecordSource, dst store.RecordSink) (models.RecordSet, error) {
	set, err := store.LoadAll(ctx, src)
	if err != nil {
		return set, err
	}
	if err := dst.Replace(ctx, set); err != nil {
		return set, fmt.Errorf("write records: %w", err)
	}
	return set, nil
}

func reportTransfer(cmd *cobra.Command, res transferResult) error {
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), res)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Copied %d tasks, %d meetings and %d projects from %s to %s\n",
		res.Tasks, res.Meetings, res.Projects, res.From, res.To)
	return nil
}
