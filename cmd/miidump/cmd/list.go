package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/mii/database"
	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/record"
)

type listFlags struct {
	favorites bool
	special   bool
	color     string
	gender    string
	creator   string
	name      string
}

func newListCmd(a *app) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the valid Miis of a database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.open()
			if err != nil {
				return err
			}

			pred, err := f.predicate()
			if err != nil {
				return err
			}

			return printMiis(cmd, db.Filter(pred))
		},
	}

	cmd.Flags().BoolVar(&f.favorites, "favorites", false, "only favorites")
	cmd.Flags().BoolVar(&f.special, "special", false, "only Miis with a special ID")
	cmd.Flags().StringVar(&f.color, "color", "", "only this favorite color, e.g. red or light_blue")
	cmd.Flags().StringVar(&f.gender, "gender", "", "only male or female")
	cmd.Flags().StringVar(&f.creator, "creator", "", "only Miis made by this creator")
	cmd.Flags().StringVar(&f.name, "name", "", "only Miis with this name")

	return cmd
}

func (f listFlags) predicate() (database.Predicate, error) {
	var preds []database.Predicate

	if f.favorites {
		preds = append(preds, database.IsFavorite())
	}
	if f.special {
		preds = append(preds, database.IsSpecial())
	}
	if f.color != "" {
		c, err := parseColor(f.color)
		if err != nil {
			return nil, err
		}
		preds = append(preds, database.HasFavoriteColor(c))
	}
	if f.gender != "" {
		switch strings.ToLower(f.gender) {
		case "male", "m":
			preds = append(preds, database.HasGender(format.Male))
		case "female", "f":
			preds = append(preds, database.HasGender(format.Female))
		default:
			return nil, fmt.Errorf("unknown gender %q", f.gender)
		}
	}
	if f.creator != "" {
		preds = append(preds, database.CreatedBy(f.creator))
	}
	if f.name != "" {
		preds = append(preds, database.Named(f.name))
	}

	return database.And(preds...), nil
}

func parseColor(s string) (format.FavoriteColor, error) {
	key := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(s))
	for c := format.ColorRed; c <= format.ColorBlack; c++ {
		if strings.ToLower(strings.ReplaceAll(c.String(), " ", "")) == key {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown favorite color %q", s)
}

func printMiis(cmd *cobra.Command, miis []*record.Mii) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCREATOR\tGENDER\tBIRTHDAY\tCOLOR\tFAVORITE")
	for _, m := range miis {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%t\n",
			m.IDHex(), m.Name, m.CreatorName, m.Gender, m.Birthday, m.FavoriteColor, m.IsFavorite())
	}

	return tw.Flush()
}
