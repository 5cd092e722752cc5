package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func generateCorrectConfig() *Config {
	return &Config{
		WebServer: WebServerConfig{
			Interface:            ":8080",
			SimultaneousRequests: 100,
		},
		Abi: AbiConfig{
			Contracts: []ContractConfig{
				{Name: "token", File: "./abi/token.json"},
				{Name: "staking", File: "./abi/staking.json"},
			},
		},
	}
}

func TestSanityCheckConfig(t *testing.T) {
	t.Parallel()

	t.Run("correct config should work", func(t *testing.T) {
		t.Parallel()

		require.Nil(t, SanityCheckConfig(generateCorrectConfig()))
	})
	t.Run("no contracts should work", func(t *testing.T) {
		t.Parallel()

		cfg := generateCorrectConfig()
		cfg.Abi.Contracts = nil
		require.Nil(t, SanityCheckConfig(cfg))
	})
	t.Run("empty contract name should error", func(t *testing.T) {
		t.Parallel()

		cfg := generateCorrectConfig()
		cfg.Abi.Contracts[1].Name = ""
		err := SanityCheckConfig(cfg)
		require.True(t, errors.Is(err, errEmptyContractName))
	})
	t.Run("empty contract file should error", func(t *testing.T) {
		t.Parallel()

		cfg := generateCorrectConfig()
		cfg.Abi.Contracts[0].File = ""
		err := SanityCheckConfig(cfg)
		require.True(t, errors.Is(err, errEmptyContractFile))
	})
	t.Run("duplicated contract name should error", func(t *testing.T) {
		t.Parallel()

		cfg := generateCorrectConfig()
		cfg.Abi.Contracts[1].Name = "token"
		err := SanityCheckConfig(cfg)
		require.True(t, errors.Is(err, errDuplicatedContractName))
	})
	t.Run("zero simultaneous requests should error", func(t *testing.T) {
		t.Parallel()

		cfg := generateCorrectConfig()
		cfg.WebServer.SimultaneousRequests = 0
		err := SanityCheckConfig(cfg)
		require.Equal(t, errInvalidSimultaneousRequests, err)
	})
}
