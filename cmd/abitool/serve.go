package main

import (
	"os"
	"os/signal"
	"syscall"

	apiGin "github.com/multiversx/mx-chain-contract-sdk-go/api/gin"
	"github.com/multiversx/mx-chain-contract-sdk-go/config"
	"github.com/multiversx/mx-chain-contract-sdk-go/facade"
	"github.com/multiversx/mx-chain-contract-sdk-go/hashing/blake2b"
	"github.com/multiversx/mx-chain-contract-sdk-go/hashing/keccak"
	"github.com/multiversx/mx-chain-contract-sdk-go/statusHandler"
	"github.com/multiversx/mx-chain-core-go/core"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func serveAction(ctx *cli.Context) error {
	cfg, apiCfg, err := loadConfigs(ctx)
	if err != nil {
		return err
	}

	if !ctx.GlobalIsSet(logLevel.Name) && len(cfg.General.LogLevel) > 0 {
		err = logger.SetLogLevel(cfg.General.LogLevel)
		if err != nil {
			return errors.Wrap(err, "invalid log level in the main configuration file")
		}
	}

	psh := statusHandler.NewPrometheusStatusHandler()
	defer psh.Close()

	abiFacade, err := facade.NewAbiFacade(facade.ArgsAbiFacade{
		ApiInterface:      restInterfaceOrDefault(ctx, cfg.WebServer.Interface),
		DebugMode:         cfg.WebServer.DebugMode || ctx.Bool(restApiDebug.Name),
		Hasher:            keccak.NewKeccak(),
		FingerprintHasher: blake2b.NewBlake2b(),
		StatusHandler:     psh,
	})
	if err != nil {
		return err
	}

	err = abiFacade.LoadContracts(cfg.Abi.Contracts)
	if err != nil {
		return errors.Wrap(err, "cannot load the contract abi files")
	}

	webServer, err := apiGin.NewGinWebServerHandler(apiGin.ArgsNewWebServer{
		Facade:          abiFacade,
		ApiConfig:       *apiCfg,
		WebServerConfig: cfg.WebServer,
		MetricsGatherer: psh.Registry(),
	})
	if err != nil {
		return err
	}

	err = webServer.StartHttpServer()
	if err != nil {
		return errors.Wrap(err, "cannot start the web server")
	}

	log.Info("abi service started",
		"interface", abiFacade.RestApiInterface(),
		"contracts", abiFacade.ContractNames(),
	)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	log.Info("terminating at user's signal...")

	return webServer.Close()
}

func loadConfigs(ctx *cli.Context) (*config.Config, *config.ApiRoutesConfig, error) {
	cfg := &config.Config{}
	err := core.LoadTomlFile(cfg, ctx.String(configurationFile.Name))
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot load the main configuration file")
	}

	err = config.SanityCheckConfig(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid main configuration file")
	}

	apiCfg := &config.ApiRoutesConfig{}
	err = core.LoadTomlFile(apiCfg, ctx.String(configurationApiFile.Name))
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot load the api configuration file")
	}

	return cfg, apiCfg, nil
}
