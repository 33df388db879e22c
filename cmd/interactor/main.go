package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli/v3"

	"github.com/ponder-labs/interactor/pkg/demo"
	"github.com/ponder-labs/interactor/pkg/etcd"
	"github.com/ponder-labs/interactor/pkg/http"
	"github.com/ponder-labs/interactor/pkg/thrippy"
	"github.com/tzrikka/xdg"
)

const (
	ConfigDirName  = "interactor"
	ConfigFileName = "config.toml"
)

func main() {
	// Optional: environment variables for local development.
	_ = godotenv.Load()

	buildInfo, _ := debug.ReadBuildInfo()
	configFilePath := configFile()

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "dev",
			Usage: "simple setup, but unsafe for production",
		},
	}
	flags = append(flags, http.Flags(configFilePath)...)
	flags = append(flags, thrippy.Flags(configFilePath)...)
	flags = append(flags, etcd.Flags(configFilePath)...)

	cmd := &cli.Command{
		Name:    "interactor",
		Usage:   "Receive and reply to Discord interactions over HTTP webhooks",
		Version: buildInfo.Main.Version,
		Flags:   flags,
		Action:  http.Start(demo.Handler{}),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// configFile returns the path to the app's configuration file.
// It also creates an empty file if it doesn't already exist.
func configFile() altsrc.StringSourcer {
	path, err := xdg.CreateFile(xdg.ConfigHome, ConfigDirName, ConfigFileName)
	if err != nil {
		log.Fatal().Err(err).Caller().Send()
	}
	return altsrc.StringSourcer(path)
}
