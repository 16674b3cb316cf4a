package main

import "fmt"

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (deps, db, api)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	checks := []Command{&CheckDepsCommand{}, &CheckDBCommand{}, &HealthCheckCommand{}}
	failed := 0
	for _, check := range checks {
		if err := check.Run(nil); err != nil {
			PrintError("%s failed: %v", check.Name(), err)
			failed++
			continue
		}
		PrintSuccess("%s OK", check.Name())
	}

	if failed > 0 {
		return fmt.Errorf("doctor found %d issue(s)", failed)
	}

	PrintSuccess("All systems operational!")
	return nil
}
