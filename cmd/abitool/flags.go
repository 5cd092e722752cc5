package main

import (
	"github.com/multiversx/mx-chain-contract-sdk-go/common"
	"github.com/urfave/cli"
)

var (
	filePathPlaceholder = "[path]"

	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the main configuration file. This TOML file contains the " +
			"log level, the web server settings and the contract ABI files served by the REST API.",
		Value: "./config/config.toml",
	}
	// configurationApiFile defines a flag for the path to the api routes toml configuration file
	configurationApiFile = cli.StringFlag{
		Name: "config-api",
		Usage: "The `" + filePathPlaceholder + "` for the api configuration file. This TOML file contains " +
			"all available routes for Rest API and options to enable or disable them.",
		Value: "./config/api.toml",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,abi:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the abi package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + defaultLogLevel,
	}
	// abiFile defines a flag for the path to a contract ABI JSON file
	abiFile = cli.StringFlag{
		Name:  "abi",
		Usage: "The `" + filePathPlaceholder + "` for the contract ABI JSON file.",
	}
	// functionName defines a flag for the function name or full signature
	functionName = cli.StringFlag{
		Name:  "function",
		Usage: "The function `name or signature`, e.g. transfer or transfer(address,uint256).",
	}
	// arguments defines a flag for the JSON array of call arguments
	arguments = cli.StringFlag{
		Name:  "args",
		Usage: "The call arguments as a JSON `array`, e.g. [\"0x00000000000000000000000000000000000000ff\", \"1000\"].",
		Value: "[]",
	}
	// hexData defines a flag for the 0x hex encoded call or return data
	hexData = cli.StringFlag{
		Name:  "data",
		Usage: "The `hex` encoded data to be decoded, with or without the 0x prefix.",
	}
	// topic defines a flag that prints the full 32 bytes hash instead of the 4 bytes selector
	topic = cli.BoolFlag{
		Name:  "topic",
		Usage: "Boolean option for printing the full hash of the signature, as used for event topics.",
	}
	// verbose defines a flag for dumping the decoded value trees
	verbose = cli.BoolFlag{
		Name:  "verbose",
		Usage: "Boolean option for dumping the decoded value trees, not only their JSON view.",
	}
	// restApiInterface defines a flag for the interface on which the rest API will try to bind with
	restApiInterface = cli.StringFlag{
		Name: "rest-api-interface",
		Usage: "The interface `address and port` to which the REST API will attempt to bind. " +
			"To bind to all available interfaces, set this flag to :8080. Set to off to disable the REST API. " +
			"Overrides the value from the main configuration file.",
	}
	// restApiDebug defines a flag for starting the rest API engine in debug mode
	restApiDebug = cli.BoolFlag{
		Name:  "rest-api-debug",
		Usage: "Boolean option for starting the Rest API in debug mode.",
	}
)

func getGlobalFlags() []cli.Flag {
	return []cli.Flag{
		logLevel,
	}
}

func getServeFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		configurationApiFile,
		restApiInterface,
		restApiDebug,
	}
}

func restInterfaceOrDefault(ctx *cli.Context, configured string) string {
	if ctx.IsSet(restApiInterface.Name) {
		return ctx.String(restApiInterface.Name)
	}
	if len(configured) > 0 {
		return configured
	}

	return common.DefaultRestInterface
}
