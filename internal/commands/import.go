package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import one or more statement exports into the database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDB, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			out := cmd.OutOrStdout()
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}

				result, err := svc.Import.ImportFile(cmd.Context(), filepath.Base(path), data)
				if err != nil {
					return fmt.Errorf("importing %s: %w", path, err)
				}
				fmt.Fprintf(out, "%s: %d imported, %d skipped, %d discarded (encoding %s, batch %s)\n",
					result.FileName, result.Imported, result.Skipped, result.Discarded, result.Encoding, result.BatchID)
			}
			return nil
		},
	}
}
