package main

import (
	"fmt"
	"os"
	"runtime"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const defaultLogLevel = "INFO"

// unVersionedAppString is the default app version when the binary was not built with ldflags
const unVersionedAppString = "undefined"

var log = logger.GetOrCreate("main")

var (
	helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} command [command options] [arguments...]
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
COMMANDS:
   {{range .Commands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
   {{end}}{{end}}{{if .VisibleFlags}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}{{end}}
VERSION:
   {{.Version}}
`
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
var appVersion = unVersionedAppString

func main() {
	_ = logger.SetDisplayByteSlice(logger.ToHexShort)

	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "Contract ABI tool"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "Encodes and decodes smart contract call data, return data and receipt logs using contract ABI definitions"
	app.Flags = getGlobalFlags()
	app.Authors = []cli.Author{
		{
			Name:  "The MultiversX Team",
			Email: "contact@multiversx.com",
		},
	}
	app.Before = func(c *cli.Context) error {
		return logger.SetLogLevel(c.GlobalString(logLevel.Name))
	}
	app.Commands = []cli.Command{
		{
			Name:      "selector",
			Usage:     "prints the 4 bytes selector (or the full topic hash) of a function or event signature",
			ArgsUsage: "signature",
			Flags:     []cli.Flag{topic},
			Action:    selectorAction,
		},
		{
			Name:   "functions",
			Usage:  "prints the selectors and signatures of the functions and events of a contract",
			Flags:  []cli.Flag{abiFile},
			Action: functionsAction,
		},
		{
			Name:   "encode",
			Usage:  "encodes the call data of a function invoked with JSON arguments",
			Flags:  []cli.Flag{abiFile, functionName, arguments},
			Action: encodeAction,
		},
		{
			Name:   "decode",
			Usage:  "decodes the return data of a function",
			Flags:  []cli.Flag{abiFile, functionName, hexData, verbose},
			Action: decodeAction,
		},
		{
			Name:   "decode-input",
			Usage:  "finds the function addressed by the call data selector and decodes its arguments",
			Flags:  []cli.Flag{abiFile, hexData, verbose},
			Action: decodeInputAction,
		},
		{
			Name:   "serve",
			Usage:  "starts the REST API serving the contract ABI files from the main configuration file",
			Flags:  getServeFlags(),
			Action: serveAction,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
