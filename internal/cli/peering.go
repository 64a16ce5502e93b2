package cli

import (
	"github.com/spf13/cobra"
)

// newPeerCmds returns the peering related top-level commands.
func newPeerCmds() []*cobra.Command {
	peer := &cobra.Command{
		Use:   "peer <gateway-1> <gateway-2>",
		Short: "Connect two gateways with encrypted peering",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.Peer(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			printOK("Peering " + args[0] + " <==> " + args[1] + " started")
			return nil
		},
	}

	unpeer := &cobra.Command{
		Use:   "unpeer <gateway-1> <gateway-2>",
		Short: "Disconnect two peered gateways",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.Unpeer(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			printOK("Unpeering " + args[0] + " <==> " + args[1] + " started")
			return nil
		},
	}

	peers := &cobra.Command{
		Use:   "peers",
		Short: "List peered gateway pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			pairs, err := client.ListPeers(cmd.Context())
			if err != nil {
				return err
			}
			printResult(pairs)
			return nil
		},
	}

	return []*cobra.Command{peer, unpeer, peers}
}
