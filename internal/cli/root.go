// Package cli contains all hrmctl commands.
package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hradmin/internal/cli/output"
	"hradmin/internal/client/gateway"
	"hradmin/internal/client/session"
)

var (
	serverURL string
	stateFile string
	verbose   bool

	storage session.Storage
	store   *session.Store
	gw      *gateway.Gateway
	printer *output.Printer
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "hrmctl",
	Short: "HR administration terminal client",
	Long: `hrmctl is a terminal client for the HR administration service.

It signs staff in, keeps the session across invocations, and shows the
navigation surface the signed-in role is allowed to use.

Example usage:
  hrmctl login --staff-id 5      # authenticate and show the landing route
  hrmctl whoami                  # show the current session
  hrmctl menu                    # show the role's navigation menu
  hrmctl open /hr/places         # evaluate route access for the session
  hrmctl logout                  # end the session`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initClient()
	},
}

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "HR service base URL (default http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&stateFile, "state-file", "", "session state file (default ~/.hrmctl/state.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("state.file", rootCmd.PersistentFlags().Lookup("state-file"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initClient builds the session store from the state file and restores the
// persisted session before any command evaluates a guard.
func initClient() error {
	logLevel := slog.LevelWarn
	if viper.GetBool("verbose") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	viper.SetEnvPrefix("HRMCTL")
	viper.AutomaticEnv()
	viper.SetDefault("server.url", "http://localhost:8080")

	path := viper.GetString("state.file")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".hrmctl", "state.json")
	}

	storage = session.NewFileStorage(path)
	store = session.NewStore(storage)
	store.Restore()
	gw = gateway.New(viper.GetString("server.url"), store, storage)
	printer = output.NewPrinter(os.Stdout, os.Stderr, !color.NoColor)
	return nil
}
