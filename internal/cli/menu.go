package cli

import (
	"github.com/spf13/cobra"

	"hradmin/internal/client/nav"
	"hradmin/internal/client/session"
)

var (
	menuCollapse bool
	menuExpand   bool
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the navigation menu for the current role",
	RunE: func(cmd *cobra.Command, args []string) error {
		if menuCollapse || menuExpand {
			value := []byte("false")
			if menuCollapse {
				value = []byte("true")
			}
			if err := storage.Set(session.KeyNavCollapsed, value); err != nil {
				return err
			}
		}

		sess, ok := store.Current()
		if !ok {
			printer.Infof("Not signed in.")
			return nil
		}

		items := nav.MenuFor(sess.Role)
		if collapsed() {
			for _, item := range items {
				printer.Infof("%s", item.Label)
			}
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, item := range items {
			destination := item.Destination
			if item.Logout {
				destination = "(logout)"
			}
			rows = append(rows, []string{item.Label, destination})
		}
		printer.Table([]string{"Menu", "Destination"}, rows)
		return nil
	},
}

func collapsed() bool {
	value, ok, err := storage.Get(session.KeyNavCollapsed)
	return err == nil && ok && string(value) == "true"
}

func init() {
	menuCmd.Flags().BoolVar(&menuCollapse, "collapse", false, "persist the collapsed menu preference")
	menuCmd.Flags().BoolVar(&menuExpand, "expand", false, "persist the expanded menu preference")
	rootCmd.AddCommand(menuCmd)
}
