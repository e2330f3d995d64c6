package main

import (
	"context"
	"fmt"
	"os"

	"github.com/marcelsud/webhook-console/host"
)

/* validate-host - checks a host context file before the console is started with it
 * Usage: go run cmd/validate-host/main.go [host.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	path := "host.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fmt.Printf("Validating host context file: %s\n", path)

	c, err := host.NewFileProvider(path).Context(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("VALIDATION PASSED\n\n")
	fmt.Printf("   Environment: %s\n", c.EnvironmentID)
	if c.UserID != "" {
		fmt.Printf("   User:        %s (%s)\n", c.UserID, c.UserEmail)
	}
	for _, role := range c.UserRoles {
		fmt.Printf("   Role:        %s\n", role.Codename)
	}
	if len(c.AppConfig) > 0 {
		fmt.Printf("   App config:  %d key(s)\n", len(c.AppConfig))
	}
}
