package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tgienger/taskman/internal/store"
	"github.com/tgienger/taskman/internal/ui/views"
)

type App struct {
	store    *store.Store
	taskList *views.TaskListView
	width    int
	height   int
}

// Creates a new application
func NewApp(st *store.Store) *App {
	return &App{
		store:    st,
		taskList: views.NewTaskListView(st),
	}
}

func (a *App) Init() tea.Cmd {
	return a.taskList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = size.Width
		a.height = size.Height
	}

	_, cmd := a.taskList.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return a.taskList.View()
}
