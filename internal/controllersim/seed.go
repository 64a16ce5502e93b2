// Package controllersim provides an in-process fake Aviatrix Controller for
// tests. It serves the controller wire protocol (action/CID form encoding on
// /v1/api and /v1/backend1) over a chi router backed by an in-memory
// inventory, so SDK tests can exercise full request/response flows without a
// real controller.
package controllersim

import (
	"github.com/BurntSushi/toml"
	"golang.org/x/crypto/bcrypt"
)

// Seed is the simulator's initial inventory. It is usually loaded from a
// TOML fixture file.
type Seed struct {
	Admin    AdminSeed     `toml:"admin"`
	PublicIP string        `toml:"public_ip"`
	Accounts []AccountSeed `toml:"account"`
	Gateways []GatewaySeed `toml:"gateway"`
}

// AdminSeed holds the login credentials the simulator accepts. The password
// is stored as a bcrypt hash, as a real deployment would.
type AdminSeed struct {
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"`
}

// AccountSeed is one onboarded cloud account.
type AccountSeed struct {
	AccountName string `toml:"account_name"`
	CloudType   int    `toml:"cloud_type"`
}

// GatewaySeed is one provisioned gateway.
type GatewaySeed struct {
	VpcName     string `toml:"vpc_name"`
	AccountName string `toml:"account_name"`
	CloudType   int    `toml:"cloud_type"`
	VpcID       string `toml:"vpc_id"`
	VpcRegion   string `toml:"vpc_reg"`
	VpcSize     string `toml:"vpc_size"`
	VpcNet      string `toml:"vpc_net"`
	VpcState    string `toml:"vpc_state"`
	PublicIP    string `toml:"public_ip"`
}

// LoadSeed reads a TOML seed fixture from disk.
func LoadSeed(path string) (Seed, error) {
	var s Seed
	_, err := toml.DecodeFile(path, &s)
	return s, err
}

// DefaultSeed builds a minimal seed accepting the given credentials, with
// one account and no gateways.
func DefaultSeed(username, password string) Seed {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return Seed{
		Admin: AdminSeed{
			Username:     username,
			PasswordHash: string(hash),
		},
		PublicIP: "198.51.100.10",
		Accounts: []AccountSeed{
			{AccountName: "test-account", CloudType: 1},
		},
	}
}
