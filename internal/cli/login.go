package cli

import (
	"github.com/spf13/cobra"
)

// newLoginCmd creates and returns a new login command
func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify controller credentials",
		Long: `Login to the Aviatrix Controller using the configured credentials.

The controller session token (CID) is scoped to a single avxctl invocation;
this command verifies the configured controller address, username and
password and reports whether a session can be established.

Example:
  avxctl login
  AVX_PASSWORD=secret avxctl login`,
		RunE: runLogin,
	}
	return cmd
}

// runLogin handles the login command execution
func runLogin(cmd *cobra.Command, args []string) error {
	client, err := newSDKClient(cmd.Context())
	if err != nil {
		return err
	}
	printOK("Login successful against controller " + client.ControllerAddr())
	return nil
}

// newControllerIPCmd returns a command that prints the controller's public
// IP address.
func newControllerIPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "controller-ip",
		Short: "Show the controller's public IP address",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			ip, err := client.GetControllerPublicIP(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				printJSON(map[string]string{"public_ip": ip})
			} else {
				cmd.Println(ip)
			}
			return nil
		},
	}
}
