package cli

import (
	"github.com/spf13/cobra"
)

// newFQDNCmd groups the FQDN filter subcommands.
func newFQDNCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fqdn",
		Short: "Manage FQDN filter tags",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List FQDN filter tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			res, err := client.ListFQDNFilters(cmd.Context())
			if err != nil {
				return err
			}
			var tags []string
			if err := res.Decode(&tags); err != nil {
				return err
			}
			printResult(tags)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <tag>",
		Short: "Create an FQDN filter tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.AddFQDNFilterTag(cmd.Context(), args[0]); err != nil {
				return err
			}
			printOK("FQDN filter tag " + args[0] + " added")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <tag>",
		Short: "Delete an FQDN filter tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.DeleteFQDNFilterTag(cmd.Context(), args[0]); err != nil {
				return err
			}
			printOK("FQDN filter tag " + args[0] + " deleted")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-domains <tag> <domain>...",
		Short: "Replace the domain list of an FQDN filter tag",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.SetFQDNFilterDomains(cmd.Context(), args[0], args[1:]); err != nil {
				return err
			}
			printOK("Domains updated on tag " + args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "domains <tag>",
		Short: "Show the domain list of an FQDN filter tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			res, err := client.GetFQDNFilterDomains(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var domains []string
			if err := res.Decode(&domains); err != nil {
				return err
			}
			printResult(domains)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "enable <tag>",
		Short: "Enable an FQDN filter tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.EnableFQDNFilter(cmd.Context(), args[0]); err != nil {
				return err
			}
			printOK("FQDN filter tag " + args[0] + " enabled")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable <tag>",
		Short: "Disable an FQDN filter tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.DisableFQDNFilter(cmd.Context(), args[0]); err != nil {
				return err
			}
			printOK("FQDN filter tag " + args[0] + " disabled")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "attach <tag> <gateway>",
		Short: "Attach an FQDN filter tag to a gateway",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.AttachFQDNFilterToGateway(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			printOK("Tag " + args[0] + " attached to " + args[1])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "detach <tag> <gateway>",
		Short: "Detach an FQDN filter tag from a gateway",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.DetachFQDNFilterFromGateway(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			printOK("Tag " + args[0] + " detached from " + args[1])
			return nil
		},
	})

	return cmd
}
