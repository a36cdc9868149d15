package cli

import (
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok := store.Current()
		if !ok {
			printer.Infof("Not signed in.")
			return nil
		}
		rows := [][]string{
			{"Staff ID", sess.StaffID},
			{"Name", sess.DisplayName()},
			{"Role", string(sess.Role)},
		}
		if sess.SectionID != "" {
			rows = append(rows, []string{"Section", sess.SectionID})
		}
		printer.Table([]string{"Field", "Value"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
