package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/avxops/avxgo/pkg/aviatrix"
)

// gatewaySpec is the YAML document accepted by "gateway create -f".
// Extra holds optional parameters; keys outside the SDK's allow-list are
// dropped before transmission.
type gatewaySpec struct {
	AccountName string            `yaml:"account_name"`
	CloudType   int               `yaml:"cloud_type"`
	GwName      string            `yaml:"gw_name"`
	VpcID       string            `yaml:"vpc_id"`
	VpcRegion   string            `yaml:"vpc_reg"`
	VpcSize     string            `yaml:"vpc_size"`
	VpcNet      string            `yaml:"vpc_net"`
	Extra       map[string]string `yaml:"extra"`
}

// newGatewayCmd groups the gateway subcommands.
func newGatewayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gateway",
		Short: "Manage gateways",
	}
	cmd.AddCommand(newGatewayListCmd())
	cmd.AddCommand(newGatewayFindCmd())
	cmd.AddCommand(newGatewayCreateCmd())
	cmd.AddCommand(newGatewayDeleteCmd())
	return cmd
}

func newGatewayListCmd() *cobra.Command {
	var account string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List gateways in a cloud account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			gws, err := client.ListGateways(cmd.Context(), account)
			if err != nil {
				return err
			}
			printResult(gws)
			return nil
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "Cloud account name")
	cmd.MarkFlagRequired("account")
	return cmd
}

func newGatewayFindCmd() *cobra.Command {
	var account string
	cmd := &cobra.Command{
		Use:   "find <gateway-name>",
		Short: "Find a gateway by exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			gw, err := client.GetGatewayByName(cmd.Context(), account, args[0])
			if err != nil {
				return err
			}
			printResult(gw)
			return nil
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "Cloud account name")
	cmd.MarkFlagRequired("account")
	return cmd
}

func newGatewayCreateCmd() *cobra.Command {
	var specFile string
	cmd := &cobra.Command{
		Use:   "create -f <spec.yaml>",
		Short: "Create a gateway from a YAML spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(specFile)
			if err != nil {
				return fmt.Errorf("unable to read gateway spec: %w", err)
			}
			var spec gatewaySpec
			if err := yaml.Unmarshal(data, &spec); err != nil {
				return fmt.Errorf("unable to parse gateway spec: %w", err)
			}

			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			req := aviatrix.CreateGatewayRequest{
				AccountName: spec.AccountName,
				CloudType:   aviatrix.CloudType(spec.CloudType),
				GwName:      spec.GwName,
				VpcID:       spec.VpcID,
				VpcRegion:   spec.VpcRegion,
				VpcSize:     spec.VpcSize,
				VpcNet:      spec.VpcNet,
			}
			if err := client.CreateGateway(cmd.Context(), req, spec.Extra); err != nil {
				return err
			}
			printOK("Gateway " + spec.GwName + " created")
			return nil
		},
	}
	cmd.Flags().StringVarP(&specFile, "file", "f", "", "Path to the gateway spec YAML")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newGatewayDeleteCmd() *cobra.Command {
	var cloudType int
	cmd := &cobra.Command{
		Use:   "delete <gateway-name>",
		Short: "Delete a gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.DeleteGateway(cmd.Context(), aviatrix.CloudType(cloudType), args[0]); err != nil {
				return err
			}
			printOK("Gateway " + args[0] + " deleted")
			return nil
		},
	}
	cmd.Flags().IntVar(&cloudType, "cloud-type", 1, "Cloud type (1 AWS, 2 Azure, 4 GCP, 8 ARM)")
	return cmd
}
