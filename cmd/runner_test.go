package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/paulchambaz/illiad/internal/shared"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Config: nil,
			})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Logger: nil,
			})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Output: nil,
			})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
		commands := runner.register()

		if len(commands) != 5 {
			t.Fatalf("expected 5 commands, got %d", len(commands))
		}

		names := make(map[string]bool)
		for _, cmd := range commands {
			names[cmd.Name] = true
		}

		for _, want := range []string{"setup", "scan", "serve", "catalog", "browse"} {
			if !names[want] {
				t.Errorf("missing command %s", want)
			}
		}
	})

	t.Run("resolveConfig leaves runner config untouched", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
		originalPort := runner.config.Server.Port

		cmd := &cli.Command{
			Flags: []cli.Flag{
				configFlag(),
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				config := runner.resolveConfig(cmd)
				if config.Server.Port != 9999 {
					t.Errorf("expected resolved port 9999, got %d", config.Server.Port)
				}
				return nil
			},
		}

		if err := cmd.Run(context.Background(), []string{"test", "--port", "9999"}); err != nil {
			t.Fatalf("failed to run command: %v", err)
		}

		if runner.config.Server.Port != originalPort {
			t.Errorf("runner config mutated: port %d, want %d", runner.config.Server.Port, originalPort)
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
			t.Fatalf("failed to write JSON: %v", err)
		}

		if got := output.String(); got != "{\"key\":\"value\"}\n" {
			t.Errorf("unexpected output: %q", got)
		}
	})

	t.Run("writeJSON pretty", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
			t.Fatalf("failed to write JSON: %v", err)
		}

		if got := output.String(); !strings.Contains(got, "  \"key\": \"value\"") {
			t.Errorf("expected indented output, got %q", got)
		}
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("%s - %s\n", "Homer", "The Iliad"); err != nil {
			t.Fatalf("failed to write output: %v", err)
		}

		if got := output.String(); got != "Homer - The Iliad\n" {
			t.Errorf("unexpected output: %q", got)
		}
	})
}
