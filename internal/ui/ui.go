package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulchambaz/illiad/internal/models"
	"github.com/paulchambaz/illiad/internal/repositories"
)

// ViewState represents the current view in the browser.
type ViewState int

const (
	BookListView ViewState = iota
	FileListView
)

// Model represents the catalog browser state.
type Model struct {
	view     ViewState
	repo     *repositories.AudiobookRepository
	width    int
	height   int
	bookList list.Model
	fileList list.Model
	selected models.AudiobookSummary
	err      error
	help     help.Model
	keys     keyMap
}

// keyMap defines the key bindings for the browser.
type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	back  key.Binding
	quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.quit},
	}
}

// bookItem wraps [models.AudiobookSummary] to implement [list.Item].
type bookItem struct {
	book models.AudiobookSummary
}

func (i bookItem) FilterValue() string { return i.book.Title }
func (i bookItem) Title() string       { return i.book.Title }
func (i bookItem) Description() string {
	return fmt.Sprintf("%s • %s", i.book.Author, i.book.Hash)
}

// fileItem wraps one file of an audiobook directory to implement [list.Item].
type fileItem struct {
	name string
	size int64
}

func (i fileItem) FilterValue() string { return i.name }
func (i fileItem) Title() string       { return i.name }
func (i fileItem) Description() string {
	return fmt.Sprintf("%d bytes", i.size)
}

type booksLoadedMsg struct {
	books []models.AudiobookSummary
	err   error
}

type filesLoadedMsg struct {
	book  models.AudiobookSummary
	files []fileItem
	err   error
}

// NewModel creates a browser model over the given catalog repository.
func NewModel(repo *repositories.AudiobookRepository) *Model {
	return &Model{
		view: BookListView,
		repo: repo,
		help: help.New(),
		keys: newKeyMap(),
	}
}

// Init loads the catalog from the store.
func (m *Model) Init() tea.Cmd {
	return m.loadBooks()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.bookList.Width() == 0 {
			m.bookList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.fileList.Width() == 0 {
			m.fileList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case BookListView:
			return m.handleBookListKeys(msg)
		case FileListView:
			return m.handleFileListKeys(msg)
		}

	case booksLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.books))
		for i, book := range msg.books {
			items[i] = bookItem{book: book}
		}
		m.bookList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.bookList.Title = "Audiobooks"
		m.bookList.SetSize(m.width-4, m.height-8)
		return m, nil

	case filesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = BookListView
			return m, nil
		}
		m.selected = msg.book
		items := make([]list.Item, len(msg.files))
		for i, file := range msg.files {
			items[i] = file
		}
		m.fileList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.fileList.Title = fmt.Sprintf("Files in '%s'", msg.book.Title)
		m.fileList.SetSize(m.width-4, m.height-8)
		m.view = FileListView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case BookListView:
		return m.renderBookList()
	case FileListView:
		return m.renderFileList()
	default:
		return ""
	}
}

func (m *Model) handleBookListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.bookList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(bookItem); ok {
				return m, m.loadFiles(item.book)
			}
		}
	}

	var cmd tea.Cmd
	m.bookList, cmd = m.bookList.Update(msg)
	return m, cmd
}

func (m *Model) handleFileListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = BookListView
		return m, nil
	}

	var cmd tea.Cmd
	m.fileList, cmd = m.fileList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case BookListView:
		m.bookList, cmd = m.bookList.Update(msg)
	case FileListView:
		m.fileList, cmd = m.fileList.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadBooks() tea.Cmd {
	return func() tea.Msg {
		books, err := m.repo.List()
		return booksLoadedMsg{books: books, err: err}
	}
}

// loadFiles lists the top-level files of the selected book's source
// directory, mirroring what an archive download would contain.
func (m *Model) loadFiles(book models.AudiobookSummary) tea.Cmd {
	return func() tea.Msg {
		path, err := m.repo.GetPath(book.Hash)
		if err != nil {
			return filesLoadedMsg{err: err}
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return filesLoadedMsg{err: err}
		}

		var files []fileItem
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			files = append(files, fileItem{name: entry.Name(), size: info.Size()})
		}

		return filesLoadedMsg{book: book, files: files}
	}
}

func (m *Model) renderBookList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.bookList.View(), helpView)
}

func (m *Model) renderFileList() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.fileList.View(), helpView)
}
