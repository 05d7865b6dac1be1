package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/paulchambaz/illiad/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
	}
}

// SetLogger replaces the runner's logger, used when the TUI owns the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, scanCommand, serveCommand, catalogCommand, browseCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// resolveConfig loads the config file named by --config when present and
// applies any explicitly set flag overrides on top, mirroring the
// file-then-flags precedence of the original deployment.
//
// Overrides apply to a copy; the runner's own config is never mutated.
func (r *Runner) resolveConfig(cmd *cli.Command) *shared.Config {
	config := *r.config

	configPath := cmd.String("config")
	if configPath != "" {
		if loaded, err := shared.LoadConfig(configPath); err == nil {
			config = *loaded
		} else if cmd.IsSet("config") {
			r.logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		}
	}

	if cmd.IsSet("data") {
		config.Library.Data = cmd.String("data")
	}
	if cmd.IsSet("sql") {
		config.Database.Path = cmd.String("sql")
	}
	if cmd.IsSet("port") {
		config.Server.Port = cmd.Int("port")
	}
	if cmd.IsSet("address") {
		config.Server.Host = cmd.String("address")
	}
	if cmd.IsSet("register") {
		config.Server.Register = cmd.Bool("register")
	}

	return &config
}

// openDatabase opens the configured store and applies pending migrations.
func (r *Runner) openDatabase(config *shared.Config) (*sql.DB, error) {
	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
