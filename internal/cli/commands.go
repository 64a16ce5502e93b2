// Package cli implements the avxctl command line interface. Commands are
// thin shells over the aviatrix SDK: each one loads the CLI configuration,
// logs in to the controller, invokes one SDK operation, and prints the
// result as text or JSON.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	configFile string
)

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "avxctl [command] [flags]",
	Short: "avxctl - a command line interface for the Aviatrix Controller",
	Long: `avxctl manages cloud-networking resources through an Aviatrix Controller.
It covers gateway provisioning, encrypted peering, VPN users, FQDN filters,
firewall policy tags and rules, and gateway statistics.

Examples:
  # List gateways in an account
  avxctl gateway list --account prod

  # Peer two gateways
  avxctl peer gw-app gw-transit

  # Set firewall rules from a YAML file
  avxctl fw set-rules gw-app -f rules.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Path to configuration file to override default")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newControllerIPCmd())
	rootCmd.AddCommand(newGatewayCmd())
	rootCmd.AddCommand(newPeerCmds()...)
	rootCmd.AddCommand(newVPNUserCmd())
	rootCmd.AddCommand(newFQDNCmd())
	rootCmd.AddCommand(newFWCmd())
	rootCmd.AddCommand(newStatsCmd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()
	if err != nil {
		if jsonOutput {
			printJSON(map[string]string{"error": err.Error()})
		} else {
			errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newVersionCmd creates and returns a new version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of avxctl",
		Run: func(cmd *cobra.Command, args []string) {
			configPath, err := GetDefaultConfigPath()
			if err != nil {
				configPath = "unknown"
			}
			if jsonOutput {
				printJSON(map[string]string{
					"version":     getCLIVersion(),
					"config_file": configPath,
				})
			} else {
				cmd.Printf("avxctl %s\n", getCLIVersion())
				cmd.Printf("Config file: %s\n", configPath)
			}
		},
	}
}

// printJSON prints the given value as indented JSON to stdout
func printJSON(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}

// printResult prints an arbitrary SDK result. Structured payloads have no
// natural text rendering, so the default and --json output coincide here.
func printResult(data interface{}) {
	printJSON(data)
}

// printOK prints a success message honoring the --json flag.
func printOK(msg string) {
	if jsonOutput {
		printJSON(map[string]string{"status": "success", "message": msg})
		return
	}
	okLabel.Printf("✓ %s\n", msg)
}

// getCLIVersion returns the current CLI version
func getCLIVersion() string {
	return "v0.1.0"
}
