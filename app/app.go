// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/ChainSafe/wallet-mover/chains/evm"
	"github.com/ChainSafe/wallet-mover/chains/evm/calls/contracts/mover"
	"github.com/ChainSafe/wallet-mover/config"
	"github.com/ChainSafe/wallet-mover/config/chain"
	"github.com/ChainSafe/wallet-mover/flags"
	"github.com/ChainSafe/wallet-mover/health"
	"github.com/ChainSafe/wallet-mover/inventory"
	"github.com/ChainSafe/wallet-mover/inventory/api"
	"github.com/ChainSafe/wallet-mover/logger"
	"github.com/ChainSafe/wallet-mover/lvldb"
	"github.com/ChainSafe/wallet-mover/metadata"
	"github.com/ChainSafe/wallet-mover/metrics"
	"github.com/ChainSafe/wallet-mover/store"
	"github.com/ChainSafe/wallet-mover/workflow"
)

func Run() error {
	var err error

	configFlag := viper.GetString(flags.ConfigFlagName)

	configuration := &config.Config{}
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	logger.ConfigureLogger(configuration.MoverConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	storePath := configuration.MoverConfig.StorePath
	if flagPath := viper.GetString(flags.StoreFlagName); flagPath != "" {
		storePath = flagPath
	}
	if viper.GetBool(flags.FreshStartFlagName) {
		err = os.RemoveAll(storePath)
		panicOnError(err)
		log.Info().Msgf("Cleared bundle store at %s", storePath)
	}

	db, err := lvldb.NewLvlDB(storePath)
	panicOnError(err)
	defer db.Close()
	bundleStore := store.NewBundleStore(db)

	registry := evm.NewContractRegistry()
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				cfg, err := chain.NewEVMConfig(chainConfig)
				panicOnError(err)

				client, err := ethclient.Dial(cfg.Endpoint)
				panicOnError(err)

				log.Info().Str("chain", cfg.Name).Str("chainID", cfg.ChainID).Msg("Registering EVM chain")

				contract := mover.NewMoverContract(client, common.HexToAddress(cfg.MoverAddress))
				registry.RegisterContract(cfg.ChainID, contract)
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	var moverMetrics *metrics.MoverMetrics
	if configuration.MoverConfig.OpenTelemetryCollectorURL != "" {
		provider, err := metrics.InitMeterProvider(context.Background(), configuration.MoverConfig.OpenTelemetryCollectorURL)
		panicOnError(err)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = provider.Shutdown(shutdownCtx)
		}()

		moverMetrics, err = metrics.NewMoverMetrics(provider.Meter("wallet-mover"), configuration.MoverConfig.Env)
		panicOnError(err)
	}

	resolver := metadata.NewResolver(configuration.MoverConfig.IpfsGateway)
	source := api.NewClient(
		configuration.MoverConfig.InventoryConfig.Url,
		configuration.MoverConfig.InventoryConfig.Key,
		http.DefaultClient,
	)
	fetcher := inventory.NewPaginatedAssetFetcher(metadata.NewEnricher(source, resolver))

	machine := workflow.NewMachine(
		workflow.NewAdminGate(registry),
		fetcher,
		bundleStore,
		&logChainSwitcher{},
		&logNotifier{},
		workflow.Policy{AdminBypassesGates: configuration.MoverConfig.AdminBypassesGates},
		moverMetrics,
	)
	log.Info().Str("step", string(machine.Step())).Msg("Workflow machine ready")

	go health.StartHealthEndpoint(configuration.MoverConfig.HealthPort)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
