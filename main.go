package main

import (
	"os"

	"github.com/cuentaconmigo/conmigo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
