package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/mii/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		dir     string
		invalid bool
		padded  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write each valid Mii to its own .mii file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.open()
			if err != nil {
				return err
			}

			if dir == "" {
				dir = a.cfg.Export.Dir
			}

			opts := []export.WriterOption{export.WithLogger(a.logger)}
			if invalid || a.cfg.Export.IncludeInvalid {
				opts = append(opts, export.WithInvalid())
			}
			if padded || a.cfg.Export.StoreData {
				opts = append(opts, export.WithStoreData())
			}

			w, err := export.NewWriter(dir, opts...)
			if err != nil {
				return err
			}

			paths, err := w.WriteAll(db)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d Miis to %s\n", len(paths), w.Dir())

			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&invalid, "invalid", false, "also export slots that failed validation")
	cmd.Flags().BoolVar(&padded, "padded", false, "write the padded form with its checksum")

	return cmd
}
