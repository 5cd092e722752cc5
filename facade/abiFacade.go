package facade

import (
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/multiversx/mx-chain-contract-sdk-go/abi"
	"github.com/multiversx/mx-chain-contract-sdk-go/api/shared"
	"github.com/multiversx/mx-chain-contract-sdk-go/common"
	"github.com/multiversx/mx-chain-contract-sdk-go/config"
	"github.com/multiversx/mx-chain-contract-sdk-go/hashing"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("facade")

const emptyArguments = "[]"

// ArgsAbiFacade holds the arguments needed to create a new abi facade
type ArgsAbiFacade struct {
	ApiInterface      string
	DebugMode         bool
	Hasher            hashing.Hasher
	FingerprintHasher hashing.Hasher
	StatusHandler     common.StatusHandler
}

type registeredContract struct {
	contractAbi *abi.ContractAbi
	fingerprint []byte
}

type abiFacade struct {
	apiInterface      string
	debugMode         bool
	hasher            hashing.Hasher
	fingerprintHasher hashing.Hasher
	statusHandler     common.StatusHandler

	mutContracts sync.RWMutex
	contracts    map[string]*registeredContract
}

// NewAbiFacade creates a facade over the registered contract abi definitions
func NewAbiFacade(args ArgsAbiFacade) (*abiFacade, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &abiFacade{
		apiInterface:      args.ApiInterface,
		debugMode:         args.DebugMode,
		hasher:            args.Hasher,
		fingerprintHasher: args.FingerprintHasher,
		statusHandler:     args.StatusHandler,
		contracts:         make(map[string]*registeredContract),
	}, nil
}

func checkArgs(args ArgsAbiFacade) error {
	if check.IfNil(args.Hasher) {
		return ErrNilHasher
	}
	if check.IfNil(args.FingerprintHasher) {
		return ErrNilFingerprintHasher
	}
	if check.IfNil(args.StatusHandler) {
		return ErrNilStatusHandler
	}

	return nil
}

// LoadContracts reads and registers every configured contract abi file
func (af *abiFacade) LoadContracts(contracts []config.ContractConfig) error {
	for _, contract := range contracts {
		abiJSON, err := os.ReadFile(contract.File)
		if err != nil {
			return fmt.Errorf("%w while reading the abi of contract %s", err, contract.Name)
		}

		err = af.RegisterContract(contract.Name, abiJSON)
		if err != nil {
			return err
		}
	}

	return nil
}

// RegisterContract parses and registers a contract abi JSON definition under the provided name
func (af *abiFacade) RegisterContract(name string, abiJSON []byte) error {
	if len(name) == 0 {
		return ErrEmptyContractName
	}

	contractAbi, err := abi.ParseContractAbi(abiJSON)
	if err != nil {
		return fmt.Errorf("%w for contract %s", err, name)
	}

	af.mutContracts.Lock()
	defer af.mutContracts.Unlock()

	_, exists := af.contracts[name]
	if exists {
		return fmt.Errorf("%w: %s", ErrContractAlreadyRegistered, name)
	}

	contract := &registeredContract{
		contractAbi: contractAbi,
		fingerprint: af.fingerprintHasher.Compute(string(abiJSON)),
	}
	af.contracts[name] = contract
	af.statusHandler.SetUInt64Value(common.MetricNumLoadedContracts, uint64(len(af.contracts)))

	log.Info("contract abi registered",
		"name", name,
		"fingerprint", contract.fingerprint,
		"functions", len(contractAbi.Functions()),
		"events", len(contractAbi.Events()),
	)

	return nil
}

// ContractNames returns the sorted names of the registered contracts
func (af *abiFacade) ContractNames() []string {
	af.mutContracts.RLock()
	defer af.mutContracts.RUnlock()

	names := make([]string, 0, len(af.contracts))
	for name := range af.contracts {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Fingerprint returns the digest of the abi JSON definition registered under the provided name
func (af *abiFacade) Fingerprint(contract string) ([]byte, error) {
	registered, err := af.getContract(contract)
	if err != nil {
		return nil, err
	}

	return registered.fingerprint, nil
}

// GetFunctions returns the description of every function of a contract, in declaration order
func (af *abiFacade) GetFunctions(contract string) ([]shared.FunctionDescription, error) {
	registered, err := af.getContract(contract)
	if err != nil {
		return nil, err
	}

	functions := registered.contractAbi.Functions()
	descriptions := make([]shared.FunctionDescription, 0, len(functions))
	for _, function := range functions {
		selector, errSelector := function.Selector(af.hasher)
		if errSelector != nil {
			return nil, errSelector
		}

		descriptions = append(descriptions, shared.FunctionDescription{
			Name:            function.Name,
			Signature:       function.Signature(),
			Selector:        hex.EncodeToString(selector),
			StateMutability: function.StateMutability,
			Inputs:          typeStrings(function.NewInputs()),
			Outputs:         typeStrings(function.NewOutputs()),
		})
	}

	return descriptions, nil
}

// EncodeCall builds the call data of a function from its JSON array of arguments
func (af *abiFacade) EncodeCall(contract string, function string, args []byte) ([]byte, error) {
	callData, err := af.encodeCall(contract, function, args)
	af.record(common.MetricNumEncodedCalls, err)

	return callData, err
}

func (af *abiFacade) encodeCall(contract string, function string, args []byte) ([]byte, error) {
	abiFunction, err := af.getFunction(contract, function)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		args = []byte(emptyArguments)
	}

	values, err := abi.ParseJSONArguments(abiFunction.NewInputs(), args)
	if err != nil {
		return nil, err
	}

	return abiFunction.EncodeCall(af.hasher, values)
}

// DecodeOutput decodes the return data of a function into JSON friendly values
func (af *abiFacade) DecodeOutput(contract string, function string, data []byte) ([]interface{}, error) {
	values, err := af.decodeOutput(contract, function, data)
	af.record(common.MetricNumDecodedOutputs, err)

	return values, err
}

func (af *abiFacade) decodeOutput(contract string, function string, data []byte) ([]interface{}, error) {
	abiFunction, err := af.getFunction(contract, function)
	if err != nil {
		return nil, err
	}

	values, err := abiFunction.DecodeOutput(data)
	if err != nil {
		return nil, err
	}

	return abi.ArgumentsToJSON(values), nil
}

// DecodeInput finds the function addressed by the selector of the call data and decodes its arguments
func (af *abiFacade) DecodeInput(contract string, data []byte) (string, []interface{}, error) {
	signature, values, err := af.decodeInput(contract, data)
	af.record(common.MetricNumDecodedInputs, err)

	return signature, values, err
}

func (af *abiFacade) decodeInput(contract string, data []byte) (string, []interface{}, error) {
	registered, err := af.getContract(contract)
	if err != nil {
		return "", nil, err
	}

	abiFunction, err := registered.contractAbi.FunctionBySelector(af.hasher, data)
	if err != nil {
		return "", nil, err
	}

	values, err := abiFunction.DecodeInput(af.hasher, data)
	if err != nil {
		return "", nil, err
	}

	return abiFunction.Signature(), abi.ArgumentsToJSON(values), nil
}

// DecodeEvent decodes the topics and the data of a receipt log emitted by the provided event
func (af *abiFacade) DecodeEvent(contract string, event string, topics [][]byte, data []byte) ([]interface{}, error) {
	values, err := af.decodeEvent(contract, event, topics, data)
	af.record(common.MetricNumDecodedEvents, err)

	return values, err
}

func (af *abiFacade) decodeEvent(contract string, event string, topics [][]byte, data []byte) ([]interface{}, error) {
	registered, err := af.getContract(contract)
	if err != nil {
		return nil, err
	}

	abiEvent, err := registered.contractAbi.Event(event)
	if err != nil {
		return nil, err
	}

	values, err := abiEvent.DecodeLog(af.hasher, topics, data)
	if err != nil {
		return nil, err
	}

	return abi.ArgumentsToJSON(values), nil
}

func (af *abiFacade) record(metric string, err error) {
	if err != nil {
		log.Debug("codec request failed", "metric", metric, "error", err)
		af.statusHandler.Increment(common.MetricNumCodecErrors)
		return
	}

	af.statusHandler.Increment(metric)
}

func (af *abiFacade) getContract(name string) (*registeredContract, error) {
	af.mutContracts.RLock()
	defer af.mutContracts.RUnlock()

	registered, ok := af.contracts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContractNotFound, name)
	}

	return registered, nil
}

func (af *abiFacade) getFunction(contract string, function string) (*abi.Function, error) {
	registered, err := af.getContract(contract)
	if err != nil {
		return nil, err
	}

	return registered.contractAbi.Function(function)
}

func typeStrings(parameters []abi.AbiObject) []string {
	types := make([]string, 0, len(parameters))
	for _, parameter := range parameters {
		types = append(types, abi.TypeString(parameter))
	}

	return types
}

// RestApiInterface returns the interface on which the rest API should start on, based on the flags provided
func (af *abiFacade) RestApiInterface() string {
	return af.apiInterface
}

// RestAPIServerDebugMode returns true if the rest API server should run in debug mode
func (af *abiFacade) RestAPIServerDebugMode() bool {
	return af.debugMode
}

// IsInterfaceNil returns true if there is no value under the interface
func (af *abiFacade) IsInterfaceNil() bool {
	return af == nil
}
