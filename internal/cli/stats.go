package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avxops/avxgo/pkg/aviatrix"
)

// newStatsCmd groups the statistics subcommands.
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Retrieve gateway statistics",
	}
	cmd.AddCommand(newStatsCurrentCmd())
	cmd.AddCommand(newStatsRangeCmd())
	return cmd
}

func newStatsCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current <gateway>",
		Short: "Show current packet statistics for a gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			res, err := client.GetCurrentGatewayStatistics(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var stats map[string]any
			if err := res.Decode(&stats); err != nil {
				return err
			}
			printResult(stats)
			return nil
		},
	}
}

func newStatsRangeCmd() *cobra.Command {
	var statName string
	var since time.Duration
	cmd := &cobra.Command{
		Use:   "range <gateway>...",
		Short: "Show a statistic for one or more gateways over a time range",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSDKClient(cmd.Context())
			if err != nil {
				return err
			}
			end := time.Now()
			start := end.Add(-since)
			res, err := client.GetGatewayStatistics(cmd.Context(), args, start, end, aviatrix.StatName(statName))
			if err != nil {
				return err
			}
			var series []map[string]any
			if err := res.Decode(&series); err != nil {
				return err
			}
			printResult(series)
			return nil
		},
	}
	cmd.Flags().StringVar(&statName, "stat", string(aviatrix.StatRateAvgTotal),
		fmt.Sprintf("Statistic name (e.g. %s, %s, %s)",
			aviatrix.StatRateAvgTotal, aviatrix.StatCPUIdle, aviatrix.StatMemoryFree))
	cmd.Flags().DurationVar(&since, "since", time.Hour, "Length of the time range ending now")
	return cmd
}
