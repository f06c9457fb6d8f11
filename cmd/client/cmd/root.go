package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"hartlog/cmd/client/cmd/journal"
	logCmd "hartlog/cmd/client/cmd/log"
	"hartlog/internal/app/client"
	"hartlog/internal/app/client/config"
	"hartlog/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
	userID    string
	token     string
)

var rootCmd = &cobra.Command{
	Use:   "hartlog",
	Short: "HartLog - workout and meal journal with AI coaching",
	Long: `HartLog keeps your workout and meal logs on this machine and, when you
are signed in and subscribed, syncs them to the cloud and gets coaching
feedback on each day's entries.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if userID != "" {
		cfg.UserID = userID
	}
	if token != "" {
		cfg.Token = token
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), client.AppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "HartLog server address")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "user id override")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "bearer token override")

	rootCmd.AddCommand(logCmd.LogCmd)
	rootCmd.AddCommand(journal.JournalCmd)
	rootCmd.AddCommand(statusCmd)
}
