package main

import (
	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"

	"github.com/khalid-nowaf/radix/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	if err := ctx.Run(&cli.Context{}); err != nil {
		log.Fatalf("%v", err)
	}
}
