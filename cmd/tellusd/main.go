package main

import (
	"log"

	"github.com/zillyinc/tellus-client-version/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
