package config

import (
	"fmt"
)

// SanityCheckConfig checks that the contracts are uniquely named and that the web server limits are usable
func SanityCheckConfig(cfg *Config) error {
	err := checkContracts(cfg.Abi.Contracts)
	if err != nil {
		return err
	}

	if cfg.WebServer.SimultaneousRequests == 0 {
		return errInvalidSimultaneousRequests
	}

	return nil
}

func checkContracts(contracts []ContractConfig) error {
	names := make(map[string]struct{}, len(contracts))
	for idx, contract := range contracts {
		if len(contract.Name) == 0 {
			return fmt.Errorf("%w at index %d", errEmptyContractName, idx)
		}
		if len(contract.File) == 0 {
			return fmt.Errorf("%w for contract %s", errEmptyContractFile, contract.Name)
		}

		_, exists := names[contract.Name]
		if exists {
			return fmt.Errorf("%w: %s", errDuplicatedContractName, contract.Name)
		}
		names[contract.Name] = struct{}{}
	}

	return nil
}
