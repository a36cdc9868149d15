package cli

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := store.Current(); !ok {
			printer.Infof("No active session.")
			return nil
		}
		if err := gw.Logout(cmd.Context()); err != nil {
			return err
		}
		printer.Successf("Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
