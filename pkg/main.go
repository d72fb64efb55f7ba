package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pkg "git.solsynth.dev/hypernet/blogly/pkg/internal"
	"github.com/fatih/color"

	"git.solsynth.dev/hypernet/blogly/pkg/internal/database"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/http"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" ____  _             _\n| __ )| | ___   __ _| |_   _\n|  _ \\| |/ _ \\ / _` | | | | |\n| |_) | | (_) | (_| | | |_| |\n|____/|_|\\___/ \\__, |_|\\__, |\n               |___/   |___/"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Hypernet.Blogly"), pkg.AppVersion)
	fmt.Printf("The tiny blogging service in Hypernet\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	viper.SetDefault("bind_addr", "0.0.0.0:8080")
	viper.SetDefault("database.dialect", database.DialectPostgres)
	viper.SetDefault("maintenance.cleanup_schedule", "@every 60m")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	if viper.GetBool("debug.print_logs") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Connect to database
	db, err := database.NewGorm(
		viper.GetString("database.dialect"),
		viper.GetString("database.dsn"),
		viper.GetBool("debug.database"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(db); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	if _, err := quartz.AddFunc(viper.GetString("maintenance.cleanup_schedule"), func() {
		_, _ = services.DoAutoDatabaseCleanup(db)
	}); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when scheduling database cleanup.")
	}
	quartz.Start()

	// Server
	server := http.NewServer(db, viper.GetBool("debug.print_routes"))
	go server.Listen(viper.GetString("bind_addr"))

	log.Info().Str("bind", viper.GetString("bind_addr")).Msg("Blogly is listening...")

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := server.Shutdown(); err != nil {
		log.Error().Err(err).Msg("An error occurred when shutting down server...")
	}
	quartz.Stop()
}
