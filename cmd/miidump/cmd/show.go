package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arloliu/mii/database"
	"github.com/arloliu/mii/record"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|slot>",
		Short: "Show one Mii in detail",
		Long: `Show prints every decoded field of one Mii. The argument is a Mii name or
a slot number; slots that are empty or fail validation report their state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open()
			if err != nil {
				return err
			}

			if m, ok := db.FindByName(args[0]); ok {
				printMii(cmd, m)
				return nil
			}

			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("no Mii named %q", args[0])
			}

			slot, err := db.Slot(idx)
			if err != nil {
				return err
			}
			if slot.State != database.SlotValid {
				fmt.Fprintf(cmd.OutOrStdout(), "slot %d: %s\n", slot.Index, slot.State)
				if slot.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "  %v\n", slot.Err)
				}

				return nil
			}

			printMii(cmd, slot.Mii)

			return nil
		},
	}
}

func printMii(cmd *cobra.Command, m *record.Mii) {
	out := cmd.OutOrStdout()
	created := m.CreatedAt().Format("2006-01-02 15:04:05")

	fmt.Fprintf(out, "Name:           %s\n", m.Name)
	fmt.Fprintf(out, "Creator:        %s\n", m.CreatorName)
	fmt.Fprintf(out, "Mii ID:         %s\n", m.IDHex())
	fmt.Fprintf(out, "System ID:      %s\n", m.SystemIDHex())
	fmt.Fprintf(out, "Created:        %s\n", created)
	fmt.Fprintf(out, "Gender:         %s\n", m.Gender)
	fmt.Fprintf(out, "Birthday:       %s\n", m.Birthday)
	fmt.Fprintf(out, "Favorite color: %s\n", m.FavoriteColor)
	fmt.Fprintf(out, "Favorite:       %t\n", m.IsFavorite())
	fmt.Fprintf(out, "Special:        %t\n", m.IsSpecial())
	fmt.Fprintf(out, "Height/Weight:  %d/%d\n", m.Features.Height, m.Features.Weight)
	fmt.Fprintf(out, "Facial hair:    %t\n", m.Features.HasFacialHair())
	fmt.Fprintf(out, "Glasses:        %t\n", m.Features.HasGlasses())
	fmt.Fprintf(out, "Checksum:       %04X\n", m.ComputedChecksum)
	fmt.Fprintf(out, "Raw size:       %d bytes\n", len(m.Raw))
	fmt.Fprintf(out, "With padding:   %d bytes\n", len(m.StoreData()))
}
