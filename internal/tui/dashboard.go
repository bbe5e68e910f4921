package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifeos-app/lifeos/internal/insights"
	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/output"
	"github.com/lifeos-app/lifeos/internal/prefs"
	"github.com/lifeos-app/lifeos/internal/router"
	"github.com/lifeos-app/lifeos/internal/runtime"
)

// navEntry pairs a key shortcut with a router link.
type navEntry struct {
	key  string
	link router.Link
}

var navEntries = []navEntry{
	{"1", router.Link{To: "/", Label: "Dashboard"}},
	{"2", router.Link{To: "/tarefas", Label: "Tasks"}},
	{"3", router.Link{To: "/financeiro", Label: "Finance"}},
	{"4", router.Link{To: "/fitness", Label: "Fitness"}},
	{"5", router.Link{To: "/estudos", Label: "Study"}},
	{"6", router.Link{To: "/configuracoes", Label: "Settings"}},
}

// DashboardModel is the bubbletea model for the LifeOS dashboard.
type DashboardModel struct {
	ctx    *runtime.Context
	styles Styles

	width  int
	height int
}

// NewDashboardModel creates the dashboard bound to a runtime context
// and registers itself as the preference store's theme applier, so
// theme mutations swap the palette before subscribers hear about them.
func NewDashboardModel(ctx *runtime.Context) *DashboardModel {
	m := &DashboardModel{ctx: ctx}
	ctx.Prefs.SetApplier(m)
	return m
}

// ApplyTheme swaps the active palette. Implements prefs.ThemeApplier.
func (m *DashboardModel) ApplyTheme(theme model.Theme) {
	m.styles = BuildStyles(PaletteFor(theme))
}

var _ prefs.ThemeApplier = (*DashboardModel)(nil)

// Init implements tea.Model.
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.ctx.Prefs.ToggleTheme()
			return m, nil
		case "u":
			m.switchUser()
			return m, nil
		case "left", "backspace":
			m.ctx.Router.Back()
			return m, nil
		case "right":
			m.ctx.Router.Forward()
			return m, nil
		}
		for _, entry := range navEntries {
			if msg.String() == entry.key {
				entry.link.Follow(m.ctx.Router)
				return m, nil
			}
		}
	}
	return m, nil
}

// switchUser cycles the active profile.
func (m *DashboardModel) switchUser() {
	profiles := m.ctx.Prefs.Profiles()
	if len(profiles) == 0 {
		return
	}
	current := m.ctx.Prefs.CurrentUser()
	for i, p := range profiles {
		if p.Name == current {
			m.ctx.Prefs.SetUser(profiles[(i+1)%len(profiles)].Name)
			return
		}
	}
	m.ctx.Prefs.SetUser(profiles[0].Name)
}

// View implements tea.Model.
func (m *DashboardModel) View() string {
	loc := m.ctx.Router.Location()

	var b strings.Builder
	b.WriteString(m.renderNav(loc))
	b.WriteString("\n")

	// Conditional rendering by path; most specific patterns first, so
	// "/" (which prefix-matches everything) only renders as fallback.
	switch {
	case router.Match("/tarefas", loc.Path):
		b.WriteString(m.renderTasks())
	case router.Match("/financeiro", loc.Path):
		b.WriteString(m.renderFinance())
	case router.Match("/fitness", loc.Path):
		b.WriteString(m.renderFitness())
	case router.Match("/estudos", loc.Path):
		b.WriteString(m.renderStudy())
	case router.Match("/configuracoes", loc.Path):
		b.WriteString(m.renderSettings())
	case router.Match("/", loc.Path):
		b.WriteString(m.renderOverview())
	}

	b.WriteString(m.styles.Help.Render("1-6 navigate · ←/→ history · t theme · u user · q quit"))
	return b.String()
}

func (m *DashboardModel) renderNav(loc router.Location) string {
	items := make([]string, 0, len(navEntries))
	for _, entry := range navEntries {
		label := fmt.Sprintf("[%s] %s", entry.key, entry.link.Label)
		if entry.link.IsActive(loc) {
			items = append(items, m.styles.NavActive.Render(label))
		} else {
			items = append(items, m.styles.NavItem.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(items, "  "))
}

func (m *DashboardModel) renderOverview() string {
	user := m.ctx.Prefs.CurrentUser()
	sum := insights.Compute(m.ctx.Data, user, time.Now())

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Welcome back, %s!", user)))
	b.WriteString("\n")
	b.WriteString(m.styles.Box.Render(strings.Join([]string{
		fmt.Sprintf("Pending tasks    %s", m.styles.Value.Render(fmt.Sprintf("%d", sum.PendingTasks))),
		fmt.Sprintf("Total balance    %s", m.styles.Value.Render(output.FormatMoney(sum.TotalBalance))),
		fmt.Sprintf("Calories today   %s", m.styles.Value.Render(fmt.Sprintf("%d kcal", sum.TodayCalories))),
		fmt.Sprintf("Study this week  %s", m.styles.Value.Render(fmt.Sprintf("%.1f h", sum.WeeklyStudyHours))),
	}, "\n")))
	b.WriteString("\n")

	for _, ins := range insights.Generate(sum) {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			m.styles.Value.Render(ins.Category+":"), ins.Message,
			m.styles.Subtitle.Render(ins.Suggestion)))
	}
	return b.String()
}

func (m *DashboardModel) renderTasks() string {
	user := m.ctx.Prefs.CurrentUser()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Tasks"))
	b.WriteString("\n")
	for _, t := range m.ctx.Data.TasksByUser(user) {
		mark := "[ ]"
		switch t.Status {
		case model.TaskDone:
			mark = m.styles.Success.Render("[x]")
		case model.TaskInProgress:
			mark = m.styles.Value.Render("[~]")
		}
		line := fmt.Sprintf("%s %s (%s, due %s)", mark, t.Title, t.Priority, output.FormatDate(t.DueDate))
		if t.Priority == model.PriorityHigh && t.Status != model.TaskDone {
			line = m.styles.Danger.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *DashboardModel) renderFinance() string {
	user := m.ctx.Prefs.CurrentUser()
	sum := insights.Compute(m.ctx.Data, user, time.Now())

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Finance"))
	b.WriteString("\n")
	for _, a := range m.ctx.Data.AccountsByUser(user) {
		b.WriteString(fmt.Sprintf("%-15s %-12s %s\n", a.Name, a.Bank,
			m.styles.Value.Render(output.FormatMoney(a.Balance))))
	}
	b.WriteString(fmt.Sprintf("\n30d income  %s\n", m.styles.Success.Render(output.FormatMoney(sum.MonthlyIncome))))
	b.WriteString(fmt.Sprintf("30d expense %s\n", m.styles.Danger.Render(output.FormatMoney(sum.MonthlyExpense))))
	for _, g := range m.ctx.Data.FinancialGoalsByUser(user) {
		pct := 0.0
		if g.TargetAmount > 0 {
			pct = g.CurrentAmount / g.TargetAmount * 100
		}
		b.WriteString(fmt.Sprintf("%s: %.0f%% of %s\n", g.Name, pct, output.FormatMoney(g.TargetAmount)))
	}
	return b.String()
}

func (m *DashboardModel) renderFitness() string {
	user := m.ctx.Prefs.CurrentUser()
	sum := insights.Compute(m.ctx.Data, user, time.Now())

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Fitness"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Today: %s kcal, %dg protein\n",
		m.styles.Value.Render(fmt.Sprintf("%d", sum.TodayCalories)), sum.TodayProtein))
	for _, g := range m.ctx.Data.FitnessGoalsByUser(user) {
		b.WriteString(fmt.Sprintf("%s goal: %.1f / %.1f %s\n", g.Type, g.Current, g.Target, g.Unit))
	}
	workouts := m.ctx.Data.WorkoutsByUser(user)
	if len(workouts) > 0 {
		last := workouts[len(workouts)-1]
		b.WriteString(fmt.Sprintf("Last workout: %s (%s)\n", last.Name, output.FormatMinutes(last.DurationMin)))
	}
	return b.String()
}

func (m *DashboardModel) renderStudy() string {
	user := m.ctx.Prefs.CurrentUser()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Study"))
	b.WriteString("\n")
	for _, s := range m.ctx.Data.SubjectsByUser(user) {
		b.WriteString(fmt.Sprintf("%-15s %s\n", s.Name,
			m.styles.Value.Render(fmt.Sprintf("%.1f h", s.TotalHours))))
	}
	return b.String()
}

func (m *DashboardModel) renderSettings() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Settings"))
	b.WriteString("\n")
	profile := m.ctx.Prefs.CurrentProfile()
	b.WriteString(fmt.Sprintf("User   %s <%s>\n", profile.Name, profile.Email))
	b.WriteString(fmt.Sprintf("Theme  %s\n", m.ctx.Prefs.Theme()))
	return b.String()
}
