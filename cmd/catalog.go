package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/paulchambaz/illiad/internal/models"
	"github.com/paulchambaz/illiad/internal/repositories"
	"github.com/paulchambaz/illiad/internal/shared"
	"github.com/paulchambaz/illiad/internal/ui"
)

// CatalogList prints the indexed catalog, as a plain table or JSON.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	config := r.resolveConfig(cmd)

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	audiobooks, err := repositories.NewAudiobookRepository(db).List()
	if err != nil {
		return fmt.Errorf("failed to list catalog: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(models.Catalog{Audiobooks: audiobooks}, cmd.Bool("pretty"))
	}

	if len(audiobooks) == 0 {
		r.writePlain("catalog is empty, run 'illiad scan' first\n")
		return nil
	}

	for _, audiobook := range audiobooks {
		r.writePlain("%s  %s - %s\n", audiobook.Hash, audiobook.Author, audiobook.Title)
	}

	return nil
}

// Browse launches the interactive catalog browser.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	config := r.resolveConfig(cmd)

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/illiad-browse.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(repositories.NewAudiobookRepository(db))
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}

	return nil
}
