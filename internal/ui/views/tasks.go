package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tgienger/taskman/internal/models"
	"github.com/tgienger/taskman/internal/store"
	"github.com/tgienger/taskman/internal/ui/keys"
	"github.com/tgienger/taskman/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusSearchInput FocusArea = iota
	FocusFilterButton
	FocusTaskList
)

// filterOption is one entry in the filter dropdown
type filterOption struct {
	label    string
	status   string
	priority string
}

var filterOptions = []filterOption{
	{label: "All"},
	{label: "Pending", status: models.StatusPending},
	{label: "Completed", status: models.StatusCompleted},
	{label: "High priority", priority: models.PriorityHigh},
	{label: "Medium priority", priority: models.PriorityMedium},
	{label: "Low priority", priority: models.PriorityLow},
}

// TaskListView shows the task list with search, filters and edit forms
type TaskListView struct {
	store  *store.Store
	tasks  []models.Task
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	// UI state
	focus       FocusArea
	cursor      int
	scrollY     int
	searchInput textinput.Model
	filterIdx   int // index into filterOptions

	// Filter dropdown state
	filterDropdownOpen bool
	filterCursor       int

	// Task creation/editing
	editing      bool
	editingNew   bool
	editTaskID   int64
	editTitle    textinput.Model
	editDesc     textarea.Model
	editPriority textinput.Model
	editStatus   string
	editFocusIdx int // 0=title, 1=desc, 2=priority, 3=status (edit only), then save

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   int64
	deleteTargetName string

	// Statistics popup
	showingStats bool
	stats        models.Stats

	// Help popup (shown with ? at narrow widths)
	showHelpPopup bool

	// Last store error, shown under the header until the next action
	errMsg string
}

// NewTaskListView creates a new task list view
func NewTaskListView(st *store.Store) *TaskListView {
	s := styles.NewStyles()

	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100

	editTitle := textinput.New()
	editTitle.Placeholder = "Task title"
	editTitle.CharLimit = 200

	editDesc := textarea.New()
	editDesc.Placeholder = "Description (optional)"
	editDesc.CharLimit = 1000
	editDesc.SetWidth(50)
	editDesc.SetHeight(3)
	editDesc.ShowLineNumbers = false

	editPriority := textinput.New()
	editPriority.Placeholder = "high/medium/low"
	editPriority.CharLimit = 10

	return &TaskListView{
		store:        st,
		styles:       s,
		keys:         keys.DefaultKeyMap(),
		focus:        FocusTaskList,
		searchInput:  search,
		editTitle:    editTitle,
		editDesc:     editDesc,
		editPriority: editPriority,
	}
}

// Init initializes the view
func (v *TaskListView) Init() tea.Cmd {
	return v.loadTasks
}

type tasksLoadedMsg struct {
	tasks []models.Task
}

func (v *TaskListView) loadTasks() tea.Msg {
	search := strings.TrimSpace(v.searchInput.Value())
	if search != "" {
		return tasksLoadedMsg{tasks: v.store.Search(search)}
	}
	f := filterOptions[v.filterIdx]
	return tasksLoadedMsg{tasks: v.store.List(f.status, f.priority)}
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.editDesc.SetWidth(clamp(contentWidth-10, 20, 50))
		return v, nil

	case tasksLoadedMsg:
		v.tasks = msg.tasks
		if v.cursor >= len(v.tasks) {
			v.cursor = max(0, len(v.tasks)-1)
		}
		return v, nil

	case tea.KeyMsg:
		// Help and stats popups close on any key
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}
		if v.showingStats {
			v.showingStats = false
			return v, nil
		}

		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}

		if v.editing {
			return v.updateEditing(msg)
		}

		if v.filterDropdownOpen {
			return v.updateFilterDropdown(msg)
		}

		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle search input typing first - don't process hotkeys while typing
	if v.focus == FocusSearchInput {
		switch {
		case key.Matches(msg, v.keys.Back):
			v.searchInput.Blur()
			v.searchInput.Reset()
			v.focus = FocusTaskList
			return v, v.loadTasks
		case key.Matches(msg, v.keys.Enter):
			v.searchInput.Blur()
			v.focus = FocusTaskList
			return v, v.loadTasks
		default:
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			return v, tea.Batch(cmd, v.loadTasks)
		}
	}

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Tab):
		v.cycleFocus(1)
		return v, nil

	case msg.String() == "shift+tab":
		v.cycleFocus(-1)
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.focus == FocusTaskList && v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.focus == FocusTaskList && v.cursor < len(v.tasks)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		switch v.focus {
		case FocusFilterButton:
			v.filterDropdownOpen = true
			v.filterCursor = v.filterIdx
		case FocusTaskList:
			if len(v.tasks) > 0 {
				v.startEditTask(v.tasks[v.cursor])
				return v, textinput.Blink
			}
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		if v.focus == FocusTaskList && len(v.tasks) > 0 {
			return v, v.toggleTask(v.tasks[v.cursor])
		}
		return v, nil

	case key.Matches(msg, v.keys.Edit):
		if v.focus == FocusTaskList && len(v.tasks) > 0 {
			v.startEditTask(v.tasks[v.cursor])
			return v, textinput.Blink
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.startNewTask()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if v.focus == FocusTaskList && len(v.tasks) > 0 {
			v.confirmingDelete = true
			v.deleteTargetID = v.tasks[v.cursor].ID
			v.deleteTargetName = v.tasks[v.cursor].Title
		}
		return v, nil

	case key.Matches(msg, v.keys.Search):
		v.focus = FocusSearchInput
		v.searchInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Filter):
		v.focus = FocusFilterButton
		v.filterDropdownOpen = true
		v.filterCursor = v.filterIdx
		return v, nil

	case key.Matches(msg, v.keys.Stats):
		v.stats = v.store.Stats()
		v.showingStats = true
		return v, nil

	case msg.String() == "?":
		v.showHelpPopup = true
		return v, nil
	}

	return v, nil
}

func (v *TaskListView) updateFilterDropdown(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.filterDropdownOpen = false
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.filterCursor > 0 {
			v.filterCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.filterCursor < len(filterOptions)-1 {
			v.filterCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		v.filterIdx = v.filterCursor
		v.filterDropdownOpen = false
		v.cursor = 0
		v.scrollY = 0
		return v, v.loadTasks
	}

	return v, nil
}

func (v *TaskListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		if _, err := v.store.Delete(v.deleteTargetID); err != nil {
			v.errMsg = err.Error()
			return v, nil
		}
		v.errMsg = ""
		return v, v.loadTasks
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

// focusCount is the number of edit form stops: title, desc, priority,
// status (edit only) and the save button.
func (v *TaskListView) focusCount() int {
	if v.editingNew {
		return 4
	}
	return 5
}

func (v *TaskListView) statusFocusIdx() int { return 3 }
func (v *TaskListView) saveFocusIdx() int   { return v.focusCount() - 1 }

func (v *TaskListView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.editing = false
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.saveTask()

	case key.Matches(msg, v.keys.Tab):
		v.editFocusIdx = (v.editFocusIdx + 1) % v.focusCount()
		v.updateEditFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.editFocusIdx = (v.editFocusIdx + v.focusCount() - 1) % v.focusCount()
		v.updateEditFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		// Enter on title or priority moves to the next field
		if v.editFocusIdx == 0 || v.editFocusIdx == 2 {
			v.editFocusIdx++
			v.updateEditFocus()
			return v, nil
		}
		// Enter on status toggles it
		if !v.editingNew && v.editFocusIdx == v.statusFocusIdx() {
			v.toggleEditStatus()
			return v, nil
		}
		// Enter on save button saves
		if v.editFocusIdx == v.saveFocusIdx() {
			return v, v.saveTask()
		}
		// For the description textarea, let enter pass through for newlines

	case msg.String() == " ":
		// Space also toggles status when focused there
		if !v.editingNew && v.editFocusIdx == v.statusFocusIdx() {
			v.toggleEditStatus()
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.editFocusIdx {
	case 0:
		v.editTitle, cmd = v.editTitle.Update(msg)
	case 1:
		v.editDesc, cmd = v.editDesc.Update(msg)
	case 2:
		v.editPriority, cmd = v.editPriority.Update(msg)
	}
	return v, cmd
}

func (v *TaskListView) toggleEditStatus() {
	if v.editStatus == models.StatusCompleted {
		v.editStatus = models.StatusPending
	} else {
		v.editStatus = models.StatusCompleted
	}
}

func (v *TaskListView) cycleFocus(dir int) {
	v.searchInput.Blur()

	v.focus = FocusArea((int(v.focus) + dir + 3) % 3)

	if v.focus == FocusSearchInput {
		v.searchInput.Focus()
	}
}

func (v *TaskListView) ensureVisible() {
	// Each task item is 2 lines + 1 margin = 3 lines
	availableHeight := v.height - 10
	if availableHeight < 3 {
		availableHeight = 3
	}
	visibleItems := availableHeight / 3
	if visibleItems < 1 {
		visibleItems = 1
	}

	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visibleItems {
		v.scrollY = v.cursor - visibleItems + 1
	}
}

func (v *TaskListView) startNewTask() {
	v.editing = true
	v.editingNew = true
	v.editFocusIdx = 0
	v.editTitle.Reset()
	v.editDesc.Reset()
	v.editPriority.SetValue(models.PriorityMedium)
	v.editStatus = models.StatusPending
	v.updateEditFocus()
}

func (v *TaskListView) startEditTask(task models.Task) {
	v.editing = true
	v.editingNew = false
	v.editFocusIdx = 0
	v.editTaskID = task.ID
	v.editTitle.SetValue(task.Title)
	v.editDesc.SetValue(task.Description)
	v.editPriority.SetValue(task.Priority)
	v.editStatus = task.Status
	v.updateEditFocus()
}

func (v *TaskListView) updateEditFocus() {
	v.editTitle.Blur()
	v.editDesc.Blur()
	v.editPriority.Blur()

	switch v.editFocusIdx {
	case 0:
		v.editTitle.Focus()
	case 1:
		v.editDesc.Focus()
	case 2:
		v.editPriority.Focus()
	}
}

// saveTask validates form input and writes through the store. The store
// accepts any priority string, so normalization happens here.
func (v *TaskListView) saveTask() tea.Cmd {
	title := strings.TrimSpace(v.editTitle.Value())
	if title == "" {
		v.editing = false
		return nil
	}

	desc := strings.TrimSpace(v.editDesc.Value())
	priority := strings.ToLower(strings.TrimSpace(v.editPriority.Value()))
	if !models.ValidPriority(priority) {
		priority = models.PriorityMedium
	}

	var err error
	if v.editingNew {
		_, err = v.store.Add(title, desc, priority)
	} else {
		status := v.editStatus
		if !models.ValidStatus(status) {
			status = models.StatusPending
		}
		_, err = v.store.Update(v.editTaskID, store.UpdateFields{
			Title:       &title,
			Description: &desc,
			Priority:    &priority,
			Status:      &status,
		})
	}
	if err != nil {
		v.errMsg = err.Error()
		v.editing = false
		return nil
	}

	v.errMsg = ""
	v.editing = false
	return v.loadTasks
}

func (v *TaskListView) toggleTask(task models.Task) tea.Cmd {
	status := models.StatusCompleted
	if task.Status == models.StatusCompleted {
		status = models.StatusPending
	}
	if _, err := v.store.Update(task.ID, store.UpdateFields{Status: &status}); err != nil {
		v.errMsg = err.Error()
		return nil
	}
	v.errMsg = ""
	return v.loadTasks
}

// View renders the view
func (v *TaskListView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.showingStats {
		return v.renderStatsPopup()
	}

	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	if v.editing {
		return v.renderEditForm()
	}

	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(v.renderTaskList())

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskListView) renderHeader() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	isNarrow := contentWidth < 60

	searchStyle := s.Input
	if v.focus == FocusSearchInput {
		searchStyle = s.InputFocused
	}
	searchWidth := clamp(contentWidth-8, 10, 30)
	searchBox := searchStyle.Width(searchWidth).Render(v.searchInput.View())

	filterStyle := s.Button
	if v.focus == FocusFilterButton {
		filterStyle = s.ButtonFocused
	}
	filterLabel := filterOptions[v.filterIdx].label
	if !isNarrow {
		filterLabel = "Show: " + filterLabel
	}
	filterBtn := filterStyle.Render(filterLabel + " ▼")

	title := s.Title.Render("Tasks")

	var header string
	if isNarrow {
		header = lipgloss.JoinVertical(lipgloss.Left, searchBox, filterBtn)
	} else {
		header = lipgloss.JoinHorizontal(lipgloss.Center, searchBox, "  ", filterBtn)
	}

	dropdown := ""
	if v.filterDropdownOpen {
		dropdown = "\n" + v.renderFilterDropdown()
	}

	errLine := ""
	if v.errMsg != "" {
		errLine = "\n" + s.Error.Render("save failed: "+v.errMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, header+dropdown+errLine)
}

func (v *TaskListView) renderFilterDropdown() string {
	s := v.styles
	var items []string

	for i, opt := range filterOptions {
		itemStyle := s.ListItem
		if v.filterCursor == i {
			itemStyle = s.ListSelected
		}
		items = append(items, itemStyle.Render(opt.label))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, items...)
	return s.FilterBar.Render(content)
}

func (v *TaskListView) renderTaskList() string {
	s := v.styles

	if len(v.tasks) == 0 {
		return s.TitleMuted.Render("No tasks. Press 'n' to create one.")
	}

	availableHeight := v.height - 12
	if availableHeight < 3 {
		availableHeight = 3
	}
	visibleItems := availableHeight / 3
	if visibleItems < 1 {
		visibleItems = 1
	}

	var items []string
	endIdx := min(v.scrollY+visibleItems, len(v.tasks))

	for i := v.scrollY; i < endIdx; i++ {
		task := v.tasks[i]
		items = append(items, v.renderTaskItem(task, i == v.cursor && v.focus == FocusTaskList))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskListView) priorityStyle(priority string) lipgloss.Style {
	switch priority {
	case models.PriorityHigh:
		return v.styles.PriorityHigh
	case models.PriorityLow:
		return v.styles.PriorityLow
	default:
		return v.styles.PriorityMedium
	}
}

func (v *TaskListView) renderTaskItem(task models.Task, selected bool) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	statusIcon := "○"
	if task.Status == models.StatusCompleted {
		statusIcon = s.StatusDone.Render("✓")
	}
	priorityMark := v.priorityStyle(task.Priority).Render("●")

	titleLine := fmt.Sprintf("%s [%d] %s %s", statusIcon, task.ID, priorityMark, task.Title)

	detailLine := task.Description
	if detailLine == "" {
		detailLine = s.TitleMuted.Render("no description")
	}

	var titleStyle, detailStyle lipgloss.Style
	if selected {
		titleStyle = s.ListSelected.Width(width)
		detailStyle = s.ListSelected.Width(width)
	} else {
		titleStyle = s.ListItem.Width(width)
		detailStyle = s.ListItem.Width(width)
	}

	title := titleStyle.Render(titleLine)
	detail := detailStyle.Render(detailLine)

	return lipgloss.JoinVertical(lipgloss.Left, title, detail) + "\n"
}

func (v *TaskListView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "New Task"
	if !v.editingNew {
		formTitle = "Edit Task"
	}

	titleStyle := s.Input
	descStyle := s.Input
	priorityStyle := s.Input
	statusStyle := s.Input
	btnStyle := s.Button

	switch v.editFocusIdx {
	case 0:
		titleStyle = s.InputFocused
	case 1:
		descStyle = s.InputFocused
	case 2:
		priorityStyle = s.InputFocused
	}
	if !v.editingNew && v.editFocusIdx == v.statusFocusIdx() {
		statusStyle = s.InputFocused
	}
	if v.editFocusIdx == v.saveFocusIdx() {
		btnStyle = s.ButtonFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	rows := []string{
		s.Title.Render(formTitle),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.editTitle.View()),
		"",
		"Description:",
		descStyle.Render(v.editDesc.View()),
		"",
		"Priority (high/medium/low):",
		priorityStyle.Width(20).Render(v.editPriority.View()),
	}

	if !v.editingNew {
		rows = append(rows,
			"",
			"Status:",
			statusStyle.Width(20).Render(v.editStatus),
		)
	}

	rows = append(rows,
		"",
		btnStyle.Render(" Save "),
		"",
		s.TitleMuted.Render("Tab: next • Ctrl+S: save • Esc: cancel"),
	)

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderStatsPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	rows := []string{
		s.Title.Render("Task Statistics"),
		"",
		fmt.Sprintf("Total:     %d", v.stats.Total),
		fmt.Sprintf("Pending:   %d", v.stats.Pending),
		fmt.Sprintf("Completed: %d", v.stats.Completed),
		"",
		s.TitleMuted.Render("By priority"),
	}

	// Known priorities in a stable order, then anything else the
	// document happened to contain.
	shown := map[string]bool{}
	for _, p := range []string{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if count, ok := v.stats.ByPriority[p]; ok {
			rows = append(rows, fmt.Sprintf("%s %-8s %d", v.priorityStyle(p).Render("●"), p, count))
			shown[p] = true
		}
	}
	var extras []string
	for p := range v.stats.ByPriority {
		if !shown[p] {
			extras = append(extras, p)
		}
	}
	sort.Strings(extras)
	for _, p := range extras {
		rows = append(rows, fmt.Sprintf("  %-8s %d", p, v.stats.ByPriority[p]))
	}

	rows = append(rows, "", s.TitleMuted.Render("Press any key to close"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderHelp() string {
	contentWidth := styles.ContentWidth(v.width)
	if contentWidth > 0 && contentWidth < 50 {
		return v.styles.Help.Render(v.styles.HelpKey.Render("?") + " help")
	}

	return v.styles.Help.Render(
		fmt.Sprintf("%s edit • %s new • %s del • %s done • %s search • %s filter • %s stats • %s quit",
			v.styles.HelpKey.Render("↵"),
			v.styles.HelpKey.Render("n"),
			v.styles.HelpKey.Render("d"),
			v.styles.HelpKey.Render("space"),
			v.styles.HelpKey.Render("/"),
			v.styles.HelpKey.Render("f"),
			v.styles.HelpKey.Render("s"),
			v.styles.HelpKey.Render("q"),
		),
	)
}

func (v *TaskListView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpKey.Render("↵") + "      edit task",
		s.HelpKey.Render("n") + "      new task",
		s.HelpKey.Render("d") + "      delete task",
		s.HelpKey.Render("space") + "  toggle completed",
		s.HelpKey.Render("/") + "      search",
		s.HelpKey.Render("f") + "      filter",
		s.HelpKey.Render("s") + "      statistics",
		s.HelpKey.Render("q") + "      quit",
		"",
		s.TitleMuted.Render("Press any key to close"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Keyboard Shortcuts"), ""}, helpItems...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Task?"),
		"",
		s.TitleMuted.Render(v.deleteTargetName),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}
