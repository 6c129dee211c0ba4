package main

import (
	"os"

	"messageboard/internal/cli"
	"messageboard/internal/config"
)

func main() {
	config.LoadConfig()
	os.Exit(cli.Execute(cli.NewRootCmd(config.AppConfig, os.Stdout)))
}
