package main

import (
	"fmt"
	"os"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
