package main

import (
	"github.com/zillyinc/tellus-client-version/pkg/cli"
)

func main() {
	cli.Execute()
}
