package main

import (
	"fmt"
	"os"

	"github.com/Abhinav6284/Planora/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
