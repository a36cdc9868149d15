package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hradmin/internal/client/gateway"
)

var (
	loginStaffID  string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the HR service",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginStaffID == "" {
			return errors.New("--staff-id is required")
		}
		password := loginPassword
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimRight(line, "\r\n")
		}
		if password == "" {
			return errors.New("password must not be empty")
		}

		result, err := gw.Authenticate(cmd.Context(), loginStaffID, password)
		if err != nil {
			if errors.Is(err, gateway.ErrInvalidCredentials) {
				printer.Errorf("invalid credentials")
				return err
			}
			return err
		}

		printer.Successf("Signed in as %s (%s)", result.Session.DisplayName(), result.Session.Role)
		printer.Infof("Landing route: %s", result.Landing)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginStaffID, "staff-id", "", "staff identifier")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}
