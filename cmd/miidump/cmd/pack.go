package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/mii/export"
	"github.com/arloliu/mii/format"
)

func newPackCmd(a *app) *cobra.Command {
	var (
		out         string
		compression string
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Write a compressed snapshot of a database",
		Long: `Pack validates a database and writes its whole image compressed with zstd,
s2 or lz4. Snapshots load directly with --file when their extension is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.open()
			if err != nil {
				return err
			}

			ct, err := a.cfg.CompressionType()
			if compression != "" {
				ct, err = format.ParseCompression(compression)
			}
			if err != nil {
				return err
			}

			if out == "" {
				out = export.PackPath(a.cfg.Export.Dir, db, ct)
			}

			if err := export.Pack(db, out, ct); err != nil {
				return err
			}
			a.logger.Info("snapshot written", "path", out, "compression", ct.String())

			fmt.Fprintf(cmd.OutOrStdout(), "Packed %d slots into %s\n", db.SlotCount(), out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "snapshot path (default <export dir>/<file><ext>)")
	cmd.Flags().StringVar(&compression, "compression", "", "none, zstd, s2 or lz4 (default from config)")

	return cmd
}
