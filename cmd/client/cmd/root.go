package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/app/client/config"
	"murojaat/internal/utils/logger"
)

var (
	cfgFile    string
	roleName   string
	serverURL  string
	debug      bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "murojaat",
	Short: "Murojaat - клиент учёта обращений граждан",
	Long: `Murojaat - консольный клиент дашборда обращений граждан.

Роль (admin, employee, legacy) выбирает эндпоинты и ключи сессии.
Токен каждой роли хранится отдельно в файле состояния.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if roleName != "" {
		cfg.Role = roleName
	}
	if debug {
		cfg.LogLevel = "debug"
	}

	log := logger.WithLevel(cfg.Env, cfg.LogLevel)

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}
	log.Debug("client ready", slog.String("role", app.Role().Name.String()), slog.String("server", cfg.BaseURL()))

	ctx := context.WithValue(cmd.Context(), types.ClientAppKey, app)
	if jsonOutput {
		ctx = context.WithValue(ctx, types.OutputKey, "json")
	}
	cmd.SetContext(ctx)
	return nil
}

func closeApp(cmd *cobra.Command, _ []string) error {
	app, err := types.AppFrom(cmd.Context())
	if err != nil {
		return nil
	}
	return app.Close()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (по умолчанию ~/.murojaat/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&roleName, "role", "", "роль дашборда: admin, employee, legacy")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес API")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
}
