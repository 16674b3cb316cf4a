package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	registry := NewRegistry(
		&CheckDepsCommand{},
		&CheckDBCommand{},
		&MigrateCommand{},
		&DoctorCommand{},
		&HealthCheckCommand{},
		&SeedCommand{},
		&CheckCoverageCommand{},
	)

	err := registry.Dispatch(os.Args[1:])
	switch {
	case err == nil:
		return
	case errors.Is(err, errUsage):
		if len(os.Args) > 1 {
			PrintError("Unknown command: %s", os.Args[1])
		}
		registry.WriteHelp(os.Stdout)
	default:
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
