package main

import (
	"fmt"
	"io"
	"log/slog"

	"chat-cli/errors"
	"chat-cli/repositories"

	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// newInspectCommand dumps the chat store, for debugging.
func newInspectCommand(a *app) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:    "inspect",
		Short:  "Print the raw entries of the chat store",
		Hidden: true,
		Args:   usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logs.GetLoggerFromLevel(slog.LevelError)
			db, err := repositories.OpenReadOnly(a.cfg.StorePath, log)
			if err != nil {
				return fmt.Errorf("%w: open chat store: %v", errors.ErrSetup, err)
			}
			defer db.Close()

			rows, err := repositories.Inspect(db, prefix)
			if err != nil {
				return err
			}
			writeStoreTable(a.stdout, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "key prefix to scan, e.g. conv: or evt:")
	return cmd
}

func writeStoreTable(w io.Writer, rows []database.InspectRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Type", "Timestamp", "Namespace", "Entity", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, row := range rows {
		table.Append([]string{row.Key, row.Type, row.Timestamp, row.Namespace, row.EntityID, row.Detail})
	}
	table.Render()
}
