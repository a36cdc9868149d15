package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hradmin/internal/client/guard"
	"hradmin/internal/client/routes"
)

var openCmd = &cobra.Command{
	Use:   "open <route>",
	Short: "Evaluate route access for the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if path == "/" {
			path = routes.Default
		}

		decision := guard.Check(store, path)
		switch decision.State {
		case guard.StateLoading:
			printer.Infof("Session still restoring; try again.")
		case guard.StateAuthorized:
			printer.Successf("AUTHORIZED %s", path)
		default:
			printer.Infof("%s -> redirect %s", decision.State, decision.Redirect)
		}
		return nil
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List protected routes and the role each requires",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([][]string, 0)
		for _, route := range routes.Protected() {
			decision := guard.Check(store, route.Path)
			rows = append(rows, []string{route.Path, string(route.Role), decision.State.String()})
		}
		printer.Table([]string{"Route", "Required Role", "Access"}, rows)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show hrmctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hrmctl " + version)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(versionCmd)
}
