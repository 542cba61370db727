package main

import "github.com/trezcool/checkmygrade/apps/cli"

func main() {
	cli.Execute()
}
