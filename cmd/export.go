/*
Copyright © 2026 The Cosmos Authors
*/
package cmd

import (
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/config"
	"github.com/phukemrunal322-hue/cosmos-sub003/store"
	"github.com/spf13/cobra"
)

// exportCmd writes the configured records to a file
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the configured records to a JSON, YAML or TOML file",
	Long: `Read every record from the configured source (file or SQLite) and write
them to a file. The format follows the file extension.`,
	Example: `  cosmos export backup.json
  cosmos export records.toml --records-driver sqlite`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst, err := store.NewFileRecordStore(nil, args[0])
		if err != nil {
			return recordsError(err)
		}
		src, err := openRecords()
		if err != nil {
			return recordsError(err)
		}
		defer func() { _ = src.Close() }()

		set, err := transfer(cmd.Context(), src, dst)
		if err != nil {
			return recordsError(err)
		}
		return reportTransfer(cmd, transferResult{
			From: config.GetRecordsPath(), To: args[0],
			Tasks: len(set.Tasks), Meetings: len(set.Meetings), Projects: len(set.Projects),
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
