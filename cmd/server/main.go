package main

import (
	"fmt"
	"os"

	"scaffold-service/internal/cli"
)

// @title Scaffold Service API
// @version 1.0
// @description Entity introspection and module scaffolding for the admin menu.
// @host localhost:8080
// @BasePath /
func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
