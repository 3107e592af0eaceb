package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/logger"
	"github.com/jobsift/jobsift/internal/match"
	"github.com/jobsift/jobsift/internal/refdata"
	"github.com/jobsift/jobsift/internal/secrets"
	"github.com/jobsift/jobsift/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the matching contract over HTTP",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", ":8080", "listen address")
}

func serve(cmd *cobra.Command) {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		os.Exit(1)
	}

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	serverCfg := server.Config{}
	if config.Server != nil {
		serverCfg.Address = config.Server.Address
		serverCfg.Timeout = config.Server.Timeout
	}
	if addr, _ := cmd.Flags().GetString("address"); cmd.Flags().Changed("address") || serverCfg.Address == "" {
		serverCfg.Address = addr
	}

	// Token is optional; without one the API is open.
	tokenFile := viper.GetString("server.token-file")
	if tokenFile != "" {
		token, err := secrets.Load(secrets.Source{Name: "api token", File: tokenFile})
		if err != nil {
			log.Fatal("loading api token", zap.Error(err))
		}
		serverCfg.Token = token
	}

	tables := refdata.Load(config.Tables)
	service := match.NewService(config.Matching, tables, log)
	srv := server.New(serverCfg, service, log)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Warn("shutdown failed", zap.Error(err))
		}
	}()

	log.Info("starting jobsift http server", zap.String("version", version))
	if err := srv.Listen(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
