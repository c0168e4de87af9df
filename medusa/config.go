package medusa

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/medusa/abi"
)

// NetworkEnvironment names a deployment.
type NetworkEnvironment string

const (
	Localhost NetworkEnvironment = "localhost"
	Testnet   NetworkEnvironment = "testnet"
)

// NetworkConfig holds per-network settings.
type NetworkConfig struct {
	RelayerAddr string `yaml:"relayerAddr"`
}

// Networks maps environments to their settings.
type Networks map[NetworkEnvironment]NetworkConfig

// DefaultNetworks returns the built-in network settings.
func DefaultNetworks() Networks {
	return Networks{
		Localhost: {RelayerAddr: "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"},
		Testnet:   {RelayerAddr: "0xa79F1c8a025B4E1Bc545B0757e265827482abCe0"},
	}
}

// LoadNetworks reads a YAML document of the form
//
//	testnet:
//	  relayerAddr: "0x..."
//
// and merges it over [DefaultNetworks]. Every relayer address must parse.
func LoadNetworks(r io.Reader) (Networks, error) {
	var loaded Networks
	if err := yaml.NewDecoder(r).Decode(&loaded); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding network config: %w", err)
	}
	networks := DefaultNetworks()
	for env, cfg := range loaded {
		networks[env] = cfg
	}
	for env, cfg := range networks {
		if _, err := abi.ParseAddress(cfg.RelayerAddr); err != nil {
			return nil, fmt.Errorf("network %s: relayer address: %w", env, err)
		}
	}
	return networks, nil
}

// Relayer returns the relayer address for env.
func (n Networks) Relayer(env NetworkEnvironment) (abi.Address, error) {
	cfg, ok := n[env]
	if !ok {
		return abi.Address{}, fmt.Errorf("unknown network %q", env)
	}
	return abi.ParseAddress(cfg.RelayerAddr)
}
