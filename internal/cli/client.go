package cli

import (
	"context"
	"fmt"

	"github.com/avxops/avxgo/pkg/aviatrix"
)

// newSDKClient loads the CLI configuration, builds an SDK client, and logs
// in to the controller. Every resource command goes through here.
func newSDKClient(ctx context.Context) (*aviatrix.Client, error) {
	if err := LoadConfig(configFile); err != nil {
		return nil, err
	}
	cfg := GetConfig()

	opts := []aviatrix.Option{}
	if cfg.StrictTLS {
		opts = append(opts, aviatrix.WithStrictTLS())
	}
	timeout, err := cfg.GetTimeout()
	if err != nil {
		return nil, fmt.Errorf("invalid timeout in config: %w", err)
	}
	if timeout > 0 {
		opts = append(opts, aviatrix.WithTimeout(timeout))
	}

	client, err := aviatrix.NewClient(cfg.Controller, opts...)
	if err != nil {
		return nil, err
	}
	if err := client.Login(ctx, cfg.Username, cfg.Password); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return client, nil
}
