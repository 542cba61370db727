package main

import (
	"log"
	"os"

	"github.com/trezcool/checkmygrade/apps"
	"github.com/trezcool/checkmygrade/core"
	logsvc "github.com/trezcool/checkmygrade/services/logger"
)

func main() {
	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.NewConfig()

	app, err := apps.New(conf, logsvc.NewRollbarLogger(std, conf))
	if err != nil {
		std.Fatal(err)
	}

	cli := commandLine{app: app, out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
