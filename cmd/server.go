package cmd

import (
	"fmt"
	"log"
	"net/http"

	"media-catalog/internal/data/repository"
	"media-catalog/internal/wire"
	"media-catalog/pkg/database"
	"media-catalog/pkg/mailer"
	"media-catalog/pkg/token"
	"media-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := utils.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
		if err != nil {
			log.Printf("Failed to init logger: %v. Using standard log.", err)
			logger, _ = zap.NewProduction()
		}
		defer logger.Sync()

		logger.Info("Starting application",
			zap.String("app", config.App.Name),
			zap.String("port", config.App.Port),
			zap.Bool("debug", config.App.Debug),
		)

		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")

		repos := repository.NewRepository(db, logger)
		mail := mailer.NewSMTPMailer(config.Email)
		tokens := token.NewManager(config.JWT.Secret, config.JWT.ExpiryHours)

		app := wire.Wiring(repos, config, mail, tokens, logger)

		addr := fmt.Sprintf(":%s", config.App.Port)
		logger.Info("Starting HTTP server", zap.String("addr", addr))

		if err := http.ListenAndServe(addr, app.Router); err != nil {
			logger.Fatal("Server error", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
