package aviatrix

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StatName identifies a gateway statistic series.
type StatName string

const (
	StatDataAvgTotal       StatName = "data_avg_total"
	StatDataAvgSent        StatName = "data_avg_sent"
	StatDataAvgReceived    StatName = "data_avg_recvd"
	StatRateAvgTotal       StatName = "rate_avg_total"
	StatRateAvgSent        StatName = "rate_avg_sent"
	StatRateAvgReceived    StatName = "rate_avg_recvd"
	StatRateTotal          StatName = "rate_total"
	StatRateSent           StatName = "rate_sent"
	StatRateReceived       StatName = "rate_received"
	StatRatePeakTotal      StatName = "rate_peak_total"
	StatRatePeakSent       StatName = "rate_peak_sent"
	StatRatePeakReceived   StatName = "rate_peak_received"
	StatCumulativeSent     StatName = "cumulative_sent"
	StatCumulativeReceived StatName = "cumulative_received"
	StatCumulativeTotal    StatName = "cumulative_total"
	StatDiskFree           StatName = "hdisk_free"
	StatDiskTotal          StatName = "hdisk_tot"
	StatMemoryCache        StatName = "memory_cached"
	StatMemoryBuffer       StatName = "memory_buf"
	StatMemorySwapped      StatName = "memory_swpd"
	StatMemoryFree         StatName = "memory_free"
	StatCPUIdle            StatName = "cpu_idle"
	StatCPUWait            StatName = "cpu_wait"
	StatCPUUserSpace       StatName = "cpu_us"
	StatCPUKernelSpace     StatName = "cpu_ks"
	StatCPUSteal           StatName = "cpu_steal"
	StatSystemInterrupts   StatName = "system_int"
	StatSystemCtxSwitches  StatName = "system_cs"
	StatSwapsToDisk        StatName = "swap_to_disk"
	StatSwapsFromDisk      StatName = "swap_from_disk"
	StatIOBlocksIn         StatName = "io_blk_in"
	StatIOBlocksOut        StatName = "io_blk_out"
	StatProcsRunning       StatName = "nproc_running"
	StatProcsUnintSleep    StatName = "nproc_non_int_sleep"
)

// unixTime converts a time to seconds since epoch, mapping the zero time to
// 0 so an open-ended range can be expressed.
func unixTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// GetGatewayStatistics returns the named statistic for one or more gateways
// over the given time range.
func (c *Client) GetGatewayStatistics(ctx context.Context, gwNames []string, start, end time.Time, stat StatName) (Result, error) {
	params := url.Values{}
	params.Set("start_time", strconv.FormatInt(unixTime(start), 10))
	params.Set("end_time", strconv.FormatInt(unixTime(end), 10))
	params.Set("ds_name", string(stat))
	params.Set("db_id", "0")
	params.Set("gw_name", strings.Join(gwNames, ","))
	return c.call(ctx, http.MethodPost, "get_statistics", params, endpointBackend)
}

// GetCurrentGatewayStatistics returns the current packet statistics of a
// single gateway.
func (c *Client) GetCurrentGatewayStatistics(ctx context.Context, gwName string) (Result, error) {
	params := url.Values{}
	params.Set("gw_name", gwName)
	return c.call(ctx, http.MethodPost, "show_packets_stat_for_gw", params, endpointBackend)
}
