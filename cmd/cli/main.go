package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/marcelsud/webhook-console/config"
	"github.com/marcelsud/webhook-console/webhook"
	"github.com/marcelsud/webhook-console/webhook/probe"
)

/* cli sends one test delivery to a URL and prints the diagnosed result
 * Usage: go run cmd/cli/main.go <url> [secret]
 */
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: cli <url> [secret]")
		return
	}
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}

	target := webhook.ProbeTarget{
		WebhookID:   uuid.New().String(),
		WebhookName: "cli",
		URL:         os.Args[1],
	}
	if len(os.Args) > 2 {
		target.Secret = os.Args[2]
	}

	engine := probe.New(probe.WithTimeout(cfg.ProbeTimeout))
	result, err := engine.Probe(context.Background(), target)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(out))
}
