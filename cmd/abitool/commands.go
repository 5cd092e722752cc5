package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/multiversx/mx-chain-contract-sdk-go/abi"
	"github.com/multiversx/mx-chain-contract-sdk-go/hashing/keccak"
	"github.com/multiversx/mx-chain-core-go/display"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const (
	hexPrefix      = "0x"
	selectorLength = 4
)

var errMissingSignature = errors.New("missing signature argument")
var errMissingFlag = errors.New("missing mandatory flag")

func selectorAction(ctx *cli.Context) error {
	signature := ctx.Args().First()
	if len(signature) == 0 {
		return errMissingSignature
	}

	hash := keccak.NewKeccak().Compute(signature)
	if !ctx.Bool(topic.Name) {
		hash = hash[:selectorLength]
	}

	fmt.Println(hexPrefix + hex.EncodeToString(hash))

	return nil
}

func functionsAction(ctx *cli.Context) error {
	contractAbi, err := loadContractAbi(ctx)
	if err != nil {
		return err
	}

	hasher := keccak.NewKeccak()
	header := []string{"Selector", "Signature", "State mutability"}
	lines := make([]*display.LineData, 0, len(contractAbi.Functions())+len(contractAbi.Events()))
	for _, function := range contractAbi.Functions() {
		selector, errSelector := function.Selector(hasher)
		if errSelector != nil {
			return errSelector
		}

		lines = append(lines, display.NewLineData(false, []string{
			hexPrefix + hex.EncodeToString(selector),
			function.Signature(),
			function.StateMutability,
		}))
	}
	for _, event := range contractAbi.Events() {
		eventTopic, errTopic := event.Topic(hasher)
		if errTopic != nil {
			return errTopic
		}

		lines = append(lines, display.NewLineData(false, []string{
			hexPrefix + hex.EncodeToString(eventTopic),
			event.Signature(),
			"event",
		}))
	}

	table, err := display.CreateTableString(header, lines)
	if err != nil {
		return err
	}

	fmt.Println(table)

	return nil
}

func encodeAction(ctx *cli.Context) error {
	function, err := loadFunction(ctx)
	if err != nil {
		return err
	}

	values, err := abi.ParseJSONArguments(function.NewInputs(), []byte(ctx.String(arguments.Name)))
	if err != nil {
		return errors.Wrap(err, "cannot parse the call arguments")
	}

	callData, err := function.EncodeCall(keccak.NewKeccak(), values)
	if err != nil {
		return errors.Wrapf(err, "cannot encode the call of %s", function.Signature())
	}

	fmt.Println(hexPrefix + hex.EncodeToString(callData))

	return nil
}

func decodeAction(ctx *cli.Context) error {
	function, err := loadFunction(ctx)
	if err != nil {
		return err
	}

	data, err := readHexData(ctx)
	if err != nil {
		return err
	}

	values, err := function.DecodeOutput(data)
	if err != nil {
		return errors.Wrapf(err, "cannot decode the return data of %s", function.Signature())
	}

	return printValues(ctx, values)
}

func decodeInputAction(ctx *cli.Context) error {
	contractAbi, err := loadContractAbi(ctx)
	if err != nil {
		return err
	}

	data, err := readHexData(ctx)
	if err != nil {
		return err
	}

	hasher := keccak.NewKeccak()
	function, err := contractAbi.FunctionBySelector(hasher, data)
	if err != nil {
		return errors.Wrap(err, "cannot find the called function")
	}

	values, err := function.DecodeInput(hasher, data)
	if err != nil {
		return errors.Wrapf(err, "cannot decode the call data of %s", function.Signature())
	}

	fmt.Println(function.Signature())

	return printValues(ctx, values)
}

func loadContractAbi(ctx *cli.Context) (*abi.ContractAbi, error) {
	path := ctx.String(abiFile.Name)
	if len(path) == 0 {
		return nil, errors.Wrap(errMissingFlag, abiFile.Name)
	}

	abiJSON, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read the contract abi file")
	}

	contractAbi, err := abi.ParseContractAbi(abiJSON)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", path)
	}

	log.Debug("contract abi loaded", "file", path, "functions", len(contractAbi.Functions()))

	return contractAbi, nil
}

func loadFunction(ctx *cli.Context) (*abi.Function, error) {
	name := ctx.String(functionName.Name)
	if len(name) == 0 {
		return nil, errors.Wrap(errMissingFlag, functionName.Name)
	}

	contractAbi, err := loadContractAbi(ctx)
	if err != nil {
		return nil, err
	}

	return contractAbi.Function(name)
}

func readHexData(ctx *cli.Context) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(ctx.String(hexData.Name), hexPrefix))
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex data")
	}

	return data, nil
}

func printValues(ctx *cli.Context, values []abi.AbiObject) error {
	if ctx.Bool(verbose.Name) {
		spew.Dump(values)
	}

	output, err := json.MarshalIndent(abi.ArgumentsToJSON(values), "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(output))

	return nil
}
