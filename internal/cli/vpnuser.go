package cli

import (
	"github.com/spf13/cobra"

	"github.com/avxops/avxgo/pkg/aviatrix"
)

// newVPNUserCmd groups the VPN user subcommands.
func newVPNUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vpn-user",
		Short: "Manage VPN users",
	}
	cmd.AddCommand(newVPNUserListCmd())
	cmd.AddCommand(newVPNUserAddCmd())
	cmd.AddCommand(newVPNUserAttachCmd())
	cmd.AddCommand(newVPNUserDetachCmd())
	cmd.AddCommand(newVPNUserDeleteCmd())
	return cmd
}

func newVPNUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List VPN users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			res, err := client.ListVPNUsers(cmd.Context())
			if err != nil {
				return err
			}
			var users []map[string]any
			if err := res.Decode(&users); err != nil {
				return err
			}
			printResult(users)
			return nil
		},
	}
}

func vpnUserFlags(cmd *cobra.Command, req *aviatrix.VPNUserRequest) {
	cmd.Flags().StringVar(&req.LBName, "lb", "", "Load balancer name")
	cmd.Flags().StringVar(&req.VpcID, "vpc-id", "", "VPC ID")
	cmd.Flags().StringVar(&req.UserEmail, "email", "", "Email for certificate delivery")
	cmd.Flags().StringVar(&req.ProfileName, "profile", "", "Profile to assign")
	cmd.Flags().StringVar(&req.SAMLEndpoint, "saml-endpoint", "", "SAML endpoint")
	cmd.MarkFlagRequired("lb")
	cmd.MarkFlagRequired("vpc-id")
}

func newVPNUserAddCmd() *cobra.Command {
	var req aviatrix.VPNUserRequest
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Add a VPN user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			req.Username = args[0]
			if err := client.AddVPNUser(cmd.Context(), req); err != nil {
				return err
			}
			printOK("VPN user " + req.Username + " added")
			return nil
		},
	}
	vpnUserFlags(cmd, &req)
	return cmd
}

func newVPNUserAttachCmd() *cobra.Command {
	var req aviatrix.VPNUserRequest
	cmd := &cobra.Command{
		Use:   "attach <username>",
		Short: "Attach a VPN user to a VPC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			req.Username = args[0]
			if err := client.AttachVPNUser(cmd.Context(), req); err != nil {
				return err
			}
			printOK("VPN user " + req.Username + " attached")
			return nil
		},
	}
	vpnUserFlags(cmd, &req)
	return cmd
}

func newVPNUserDetachCmd() *cobra.Command {
	var vpcID string
	cmd := &cobra.Command{
		Use:   "detach <username>",
		Short: "Detach a VPN user from its VPC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.DetachVPNUser(cmd.Context(), vpcID, args[0]); err != nil {
				return err
			}
			printOK("VPN user " + args[0] + " detached")
			return nil
		},
	}
	cmd.Flags().StringVar(&vpcID, "vpc-id", "", "VPC ID or DNS name")
	cmd.MarkFlagRequired("vpc-id")
	return cmd
}

func newVPNUserDeleteCmd() *cobra.Command {
	var vpcID string
	cmd := &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a VPN user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.DeleteVPNUser(cmd.Context(), vpcID, args[0]); err != nil {
				return err
			}
			printOK("VPN user " + args[0] + " deleted")
			return nil
		},
	}
	cmd.Flags().StringVar(&vpcID, "vpc-id", "", "VPC ID")
	cmd.MarkFlagRequired("vpc-id")
	return cmd
}
