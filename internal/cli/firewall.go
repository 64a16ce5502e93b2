package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/avxops/avxgo/pkg/aviatrix"
)

// ruleSpec is one firewall rule in a "fw set-rules -f" YAML document.
type ruleSpec struct {
	Protocol  string `yaml:"protocol"`
	SrcIP     string `yaml:"s_ip"`
	DstIP     string `yaml:"d_ip"`
	Port      string `yaml:"port"`
	DenyAllow string `yaml:"deny_allow"`
	LogEnable string `yaml:"log_enable"`
}

// memberSpec is one tag member in a "fw set-members -f" YAML document.
type memberSpec struct {
	Name string `yaml:"name"`
	CIDR string `yaml:"cidr"`
}

// newFWCmd groups the firewall policy subcommands.
func newFWCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fw",
		Short: "Manage firewall policy tags and rules",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "tags",
		Short: "List firewall policy tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			res, err := client.ListFWTags(cmd.Context())
			if err != nil {
				return err
			}
			var out struct {
				Tags []string `json:"tags"`
			}
			if err := res.Decode(&out); err != nil {
				return err
			}
			printResult(out.Tags)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add-tag <tag>",
		Short: "Create a firewall policy tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.AddFWTag(cmd.Context(), args[0]); err != nil {
				return err
			}
			printOK("Firewall tag " + args[0] + " added")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete-tag <tag>",
		Short: "Delete a firewall policy tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.DeleteFWTag(cmd.Context(), args[0]); err != nil {
				return err
			}
			printOK("Firewall tag " + args[0] + " deleted")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "members <tag>",
		Short: "List the members of a firewall policy tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			members, err := client.GetFWTagMembers(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printResult(members)
			return nil
		},
	})

	setMembers := &cobra.Command{
		Use:   "set-members <tag> -f <members.yaml>",
		Short: "Replace the members of a firewall policy tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("unable to read members file: %w", err)
			}
			var specs []memberSpec
			if err := yaml.Unmarshal(data, &specs); err != nil {
				return fmt.Errorf("unable to parse members file: %w", err)
			}
			members := make([]aviatrix.FWTagMember, 0, len(specs))
			for _, s := range specs {
				members = append(members, aviatrix.FWTagMember{Name: s.Name, CIDR: s.CIDR})
			}

			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.SetFWTagMembers(cmd.Context(), args[0], members); err != nil {
				return err
			}
			printOK("Members updated on tag " + args[0])
			return nil
		},
	}
	setMembers.Flags().StringP("file", "f", "", "Path to the members YAML")
	setMembers.MarkFlagRequired("file")
	cmd.AddCommand(setMembers)

	cmd.AddCommand(&cobra.Command{
		Use:   "policy <gateway>",
		Short: "Show the firewall policy of a gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			policy, err := client.GetFWPolicy(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printResult(policy)
			return nil
		},
	})

	setRules := &cobra.Command{
		Use:   "set-rules <gateway> -f <rules.yaml>",
		Short: "Replace the firewall rules of a gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("unable to read rules file: %w", err)
			}
			var specs []ruleSpec
			if err := yaml.Unmarshal(data, &specs); err != nil {
				return fmt.Errorf("unable to parse rules file: %w", err)
			}
			rules := make([]aviatrix.SecurityRule, 0, len(specs))
			for _, s := range specs {
				rules = append(rules, aviatrix.SecurityRule{
					Protocol:  s.Protocol,
					SrcIP:     s.SrcIP,
					DstIP:     s.DstIP,
					Port:      s.Port,
					DenyAllow: s.DenyAllow,
					LogEnable: s.LogEnable,
				})
			}

			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.SetFWPolicySecurityRules(cmd.Context(), args[0], rules); err != nil {
				return err
			}
			printOK("Firewall rules updated on " + args[0])
			return nil
		},
	}
	setRules.Flags().StringP("file", "f", "", "Path to the rules YAML")
	setRules.MarkFlagRequired("file")
	cmd.AddCommand(setRules)

	return cmd
}
