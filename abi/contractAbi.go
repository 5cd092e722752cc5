package abi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("abi")

const (
	entryFunction    = "function"
	entryConstructor = "constructor"
	entryEvent       = "event"
	entryFallback    = "fallback"
	entryReceive     = "receive"
	entryError       = "error"
)

type abiEntry struct {
	Type            string     `json:"type"`
	Name            string     `json:"name"`
	Inputs          []Argument `json:"inputs"`
	Outputs         []Argument `json:"outputs"`
	StateMutability string     `json:"stateMutability,omitempty"`
	Constant        bool       `json:"constant,omitempty"`
	Payable         bool       `json:"payable,omitempty"`
	Anonymous       bool       `json:"anonymous,omitempty"`
}

// ContractAbi holds the schema templates of the functions and events of a contract
type ContractAbi struct {
	constructor     *Function
	functions       []*Function
	functionsByName map[string]*Function
	functionsBySig  map[string]*Function
	events          []*Event
	eventsByName    map[string]*Event
	eventsBySig     map[string]*Event
	hasFallback     bool
	hasReceive      bool
}

// ParseContractAbi parses a contract ABI JSON definition using the default codec
func ParseContractAbi(data []byte) (*ContractAbi, error) {
	return ParseContractAbiWithCodec(data, NewCodec())
}

// ParseContractAbiWithCodec parses a contract ABI JSON definition. The returned functions and events
// encode and decode through the provided codec
func ParseContractAbiWithCodec(data []byte, codec valuesCodec) (*ContractAbi, error) {
	if codec == nil {
		return nil, fmt.Errorf("%w: nil codec", ErrInvalidContractAbi)
	}

	var entries []abiEntry
	err := json.Unmarshal(data, &entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContractAbi, err)
	}

	contract := &ContractAbi{
		functionsByName: make(map[string]*Function),
		functionsBySig:  make(map[string]*Function),
		eventsByName:    make(map[string]*Event),
		eventsBySig:     make(map[string]*Event),
	}
	abiSerializer := NewSerializer(codec)

	for index, entry := range entries {
		err = contract.addEntry(entry, abiSerializer)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s %s): %v", ErrInvalidContractAbi, index, entry.Type, entry.Name, err)
		}
	}

	log.Debug("contract abi parsed",
		"functions", len(contract.functions),
		"events", len(contract.events),
		"constructor", contract.constructor != nil,
	)

	return contract, nil
}

func (ca *ContractAbi) addEntry(entry abiEntry, abiSerializer *serializer) error {
	switch entry.Type {
	case entryFunction, "":
		function, err := newFunction(entry, abiSerializer)
		if err != nil {
			return err
		}
		ca.addFunction(function)
	case entryConstructor:
		function, err := newFunction(entry, abiSerializer)
		if err != nil {
			return err
		}
		ca.constructor = function
	case entryEvent:
		event, err := newEvent(entry, abiSerializer)
		if err != nil {
			return err
		}
		ca.addEvent(event)
	case entryFallback:
		ca.hasFallback = true
	case entryReceive:
		ca.hasReceive = true
	case entryError:
		log.Trace("custom error definition skipped", "name", entry.Name)
	default:
		return fmt.Errorf("unknown entry type %q", entry.Type)
	}

	return nil
}

func (ca *ContractAbi) addFunction(function *Function) {
	ca.functions = append(ca.functions, function)
	ca.functionsBySig[function.Signature()] = function
	_, exists := ca.functionsByName[function.Name]
	if exists {
		log.Debug("overloaded function, use the full signature to address it", "name", function.Name)
		return
	}

	ca.functionsByName[function.Name] = function
}

func (ca *ContractAbi) addEvent(event *Event) {
	ca.events = append(ca.events, event)
	ca.eventsBySig[event.Signature()] = event
	_, exists := ca.eventsByName[event.Name]
	if !exists {
		ca.eventsByName[event.Name] = event
	}
}

// Constructor returns the constructor definition or nil if the ABI does not declare one
func (ca *ContractAbi) Constructor() *Function {
	return ca.constructor
}

// Functions returns the functions in declaration order
func (ca *ContractAbi) Functions() []*Function {
	functions := make([]*Function, len(ca.functions))
	copy(functions, ca.functions)

	return functions
}

// Events returns the events in declaration order
func (ca *ContractAbi) Events() []*Event {
	events := make([]*Event, len(ca.events))
	copy(events, ca.events)

	return events
}

// HasFallback returns true if the contract declares a fallback function
func (ca *ContractAbi) HasFallback() bool {
	return ca.hasFallback
}

// HasReceive returns true if the contract declares a receive function
func (ca *ContractAbi) HasReceive() bool {
	return ca.hasReceive
}

// Function returns a function by its full signature or by its name. An overloaded name resolves to
// the first declared overload
func (ca *ContractAbi) Function(nameOrSignature string) (*Function, error) {
	function, ok := ca.functionsBySig[nameOrSignature]
	if ok {
		return function, nil
	}

	function, ok = ca.functionsByName[nameOrSignature]
	if ok {
		return function, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, nameOrSignature)
}

// FunctionBySelector returns the function whose 4 bytes selector prefixes the provided call data
func (ca *ContractAbi) FunctionBySelector(hasher Hasher, callData []byte) (*Function, error) {
	if check.IfNil(hasher) {
		return nil, ErrNilHasher
	}
	if len(callData) < selectorLength {
		return nil, fmt.Errorf("%w: call data shorter than a selector", ErrBufferUnderrun)
	}

	for _, function := range ca.functions {
		selector, err := function.Selector(hasher)
		if err != nil {
			return nil, err
		}
		if bytes.Equal(selector, callData[:selectorLength]) {
			return function, nil
		}
	}

	return nil, fmt.Errorf("%w: selector %x", ErrFunctionNotFound, callData[:selectorLength])
}

// Event returns an event by its full signature or by its name
func (ca *ContractAbi) Event(nameOrSignature string) (*Event, error) {
	event, ok := ca.eventsBySig[nameOrSignature]
	if ok {
		return event, nil
	}

	event, ok = ca.eventsByName[nameOrSignature]
	if ok {
		return event, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrEventNotFound, nameOrSignature)
}

func newTemplates(arguments []Argument) ([]AbiObject, error) {
	templates := make([]AbiObject, 0, len(arguments))
	nodes := 0
	for index, argument := range arguments {
		template, err := NewTemplate(argument.Name, argument.Type, argument.Components)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", index, err)
		}

		nodes += schemaNodes(template)
		if nodes > maxSchemaNodes {
			return nil, fmt.Errorf("parameter %d: %w: parameters exceed %d schema nodes", index, ErrInvalidAbiType, maxSchemaNodes)
		}

		templates = append(templates, template)
	}

	return templates, nil
}
