package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/mii/database"
	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/format"
)

func newStatsCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count slots by state",
		Long: `Stats loads a database and counts valid, empty, corrupt and malformed slots.
With --all it reads every configured database and skips the missing ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var dbs []*database.Database

			if all {
				for _, v := range format.Variants {
					db, err := database.Load(a.cfg.PathFor(v), v, database.WithLogger(a.logger))
					if errors.Is(err, errs.ErrFileNotFound) {
						a.logger.Debug("database not found", "variant", v.String(), "path", a.cfg.PathFor(v))
						continue
					}
					if err != nil {
						return err
					}
					dbs = append(dbs, db)
				}
			} else {
				db, err := a.open()
				if err != nil {
					return err
				}
				dbs = append(dbs, db)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATABASE\tSLOTS\tVALID\tEMPTY\tBAD CHECKSUM\tMALFORMED\tFAVORITES")
			for _, db := range dbs {
				st := db.Stats()
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
					db.Descriptor().DisplayName, st.Slots, st.Valid, st.Empty,
					st.ChecksumMismatch, st.Malformed, st.Favorites)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if all {
				_, ms := database.MergeWithStats(dbs...)
				fmt.Fprintf(cmd.OutOrStdout(), "Distinct Miis: %d\n", ms.Kept)
				fmt.Fprintf(cmd.OutOrStdout(), "Duplicates:    %d\n", ms.Duplicates)
				fmt.Fprintf(cmd.OutOrStdout(), "Collisions:    %d\n", ms.Collisions)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "read every database type")

	return cmd
}
