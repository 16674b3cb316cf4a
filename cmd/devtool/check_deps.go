package main

import (
	"fmt"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required development tools"
}

type toolCheck struct {
	name     string
	args     []string
	field    int
	required bool
	hint     string
}

var toolChecks = []toolCheck{
	{name: "go", args: []string{"version"}, field: 2, required: true, hint: "https://go.dev/dl/"},
	{name: "docker", args: []string{"--version"}, field: 2, hint: "https://docs.docker.com/get-docker/ (needed for integration tests)"},
	{name: "make", args: []string{"--version"}, field: 2, required: true, hint: "install via your package manager"},
	{name: "goose", args: []string{"--version"}, field: -1, hint: "go install github.com/pressly/goose/v3/cmd/goose@latest"},
	{name: "swag", args: []string{"--version"}, field: -1, hint: "go install github.com/swaggo/swag/cmd/swag@latest"},
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	missing := 0
	for _, tc := range toolChecks {
		out, err := getCommandOutput(tc.name, tc.args...)
		if err != nil {
			if tc.required {
				PrintError("%s not found (%s)", tc.name, tc.hint)
				missing++
			} else {
				PrintWarning("%s not found (%s)", tc.name, tc.hint)
			}
			continue
		}
		PrintSuccess("%s installed: %s", tc.name, toolVersion(out, tc.field))
	}

	if missing > 0 {
		return fmt.Errorf("%d required tool(s) missing", missing)
	}
	return nil
}

// toolVersion picks a whitespace-separated field from the first output line;
// a negative field counts from the end.
func toolVersion(out string, field int) string {
	line := strings.SplitN(out, "\n", 2)[0]
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return line
	}
	if field < 0 {
		field = len(parts) + field
	}
	if field < 0 || field >= len(parts) {
		return line
	}
	v := strings.TrimRight(parts[field], ",")
	return strings.TrimPrefix(v, "version:")
}
