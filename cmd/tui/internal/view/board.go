package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/board"
	"github.com/nveloso/pipeflow/internal/lead"
	"github.com/nveloso/pipeflow/internal/notify"
	"github.com/nveloso/pipeflow/internal/pipeline"
)

type boardState int

const (
	boardStatePipelines boardState = iota
	boardStateBoard
	boardStateNewLead
	boardStateArchive
)

var (
	columnStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(28)

	selectedColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("205"))

	selectedLeadStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	revenueBadge = lipgloss.NewStyle().Faint(true).Render("[revenue]")
)

type BoardModel struct {
	CommonModel
	boards          *board.Service
	pipelineService *pipeline.Service
	leadService     *lead.Service
	businessID      uuid.UUID

	state      boardState
	pipelines  []*pipeline.Pipeline
	pipeIdx    int
	pipelineID uuid.UUID
	b          *board.Board

	col int
	row int

	loading bool
	status  string

	form *huh.Form

	// Form field bindings
	formName    string
	formValue   string
	formRevenue bool
}

func NewBoardModel(boards *board.Service, pipeSvc *pipeline.Service, leadSvc *lead.Service, businessID uuid.UUID) BoardModel {
	return BoardModel{
		boards:          boards,
		pipelineService: pipeSvc,
		leadService:     leadSvc,
		businessID:      businessID,
	}
}

func (m BoardModel) Title() string { return "Pipeline Board" }

func (m BoardModel) ShortHelp() string {
	switch m.state {
	case boardStatePipelines:
		return "Esc: back | j/k: select | Enter: open"
	case boardStateBoard:
		return "Esc: back | h/l: column | j/k: lead | H/L: move lead | n: new | a: archive | r: reload"
	case boardStateNewLead, boardStateArchive:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return ""
}

func (m BoardModel) Init() tea.Cmd {
	return m.loadPipelinesCmd()
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPipelinesMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.pipelines = msg.pipelines
		if len(m.pipelines) == 0 {
			m.status = "No pipelines found."
		}

		return m, nil

	case loadBoardMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.setBoard(msg.b)

		return m, nil

	case dropResultMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error moving lead: %v", msg.err)
			// The local projection may be stale after a rejected move.
			return m, m.loadBoardCmd()
		}

		if msg.b != nil {
			m.setBoard(msg.b)
		}

		return m, nil

	case archiveResultMsg:
		m.loading = false
		m.state = boardStateBoard

		if msg.err != nil {
			m.status = fmt.Sprintf("Error archiving: %v", msg.err)
			return m, m.loadBoardCmd()
		}

		m.status = "Archived."
		m.setBoard(msg.b)

		return m, nil

	case createLeadResultMsg:
		m.loading = false
		m.state = boardStateBoard

		if msg.err != nil {
			m.status = fmt.Sprintf("Error creating lead: %v", msg.err)
			return m, nil
		}

		m.status = "Lead created."

		return m, m.loadBoardCmd()

	case ExternalChangeMsg:
		if m.state != boardStateBoard || m.pipelineID == uuid.Nil {
			return m, nil
		}

		if msg.Channel == notify.ChannelLeads || msg.Channel == notify.ChannelStages {
			return m, m.loadBoardCmd()
		}

		return m, nil
	}

	switch m.state {
	case boardStatePipelines:
		return m.updatePipelines(msg)
	case boardStateBoard:
		return m.updateBoard(msg)
	case boardStateNewLead, boardStateArchive:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m BoardModel) updatePipelines(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "j", "down":
		if m.pipeIdx < len(m.pipelines)-1 {
			m.pipeIdx++
		}
	case "k", "up":
		if m.pipeIdx > 0 {
			m.pipeIdx--
		}
	case "enter":
		if len(m.pipelines) == 0 {
			return m, nil
		}

		m.pipelineID = m.pipelines[m.pipeIdx].ID
		m.state = boardStateBoard
		m.loading = true
		m.status = ""

		return m, m.loadBoardCmd()
	}

	return m, nil
}

func (m BoardModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.state = boardStatePipelines
		m.b = nil

		return m, nil
	case "h", "left":
		if m.col > 0 {
			m.col--
			m.clampRow()
		}
	case "l", "right":
		if m.b != nil && m.col < len(m.b.Columns)-1 {
			m.col++
			m.clampRow()
		}
	case "j", "down":
		if col := m.currentColumn(); col != nil && m.row < len(col.Leads)-1 {
			m.row++
		}
	case "k", "up":
		if m.row > 0 {
			m.row--
		}
	case "H":
		return m.dropSelected(-1)
	case "L":
		return m.dropSelected(1)
	case "n":
		return m.startNewLead()
	case "a":
		return m.startArchive()
	case "r":
		m.loading = true
		m.status = ""

		return m, m.loadBoardCmd()
	}

	return m, nil
}

// dropSelected moves the selected lead one column over. The target is
// resolved against the current projection; dropping past either edge
// changes nothing.
func (m BoardModel) dropSelected(offset int) (tea.Model, tea.Cmd) {
	l := m.selectedLead()
	if l == nil {
		return m, nil
	}

	target := m.col + offset
	if m.b == nil || target < 0 || target >= len(m.b.Columns) {
		return m, nil
	}

	from := m.b.Columns[m.col].Stage.ID
	to := m.b.Columns[target].Stage.ID

	m.loading = true
	m.status = ""

	return m, m.dropCmd(l.ID, from, to)
}

func (m BoardModel) startNewLead() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formValue = "0"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("customer").
				Title("Customer").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("customer cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("value").
				Title("Value").
				Placeholder("0.00").
				Value(&m.formValue).
				Validate(func(s string) error {
					if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
						return fmt.Errorf("value must be a number")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = boardStateNewLead

	return m, m.form.Init()
}

func (m BoardModel) startArchive() (tea.Model, tea.Cmd) {
	if m.selectedLead() == nil {
		return m, nil
	}

	m.formRevenue = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("with_revenue").
				Title("Close this lead as won, with revenue?").
				Affirmative("Won").
				Negative("Lost").
				Value(&m.formRevenue),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = boardStateArchive

	return m, m.form.Init()
}

func (m BoardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = boardStateBoard
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == boardStateArchive {
		l := m.selectedLead()
		if l == nil {
			m.state = boardStateBoard
			return m, nil
		}

		m.loading = true

		return m, m.archiveCmd(l.ID, m.formRevenue)
	}

	m.loading = true

	return m, m.createLeadCmd()
}

func (m BoardModel) View() string {
	switch m.state {
	case boardStatePipelines:
		return lipgloss.NewStyle().Padding(1).Render(m.pipelinesView())

	case boardStateBoard:
		if m.loading && m.b == nil {
			return lipgloss.NewStyle().Padding(2).Render("Loading board...")
		}

		return lipgloss.NewStyle().Padding(1).Render(m.boardView())

	case boardStateNewLead, boardStateArchive:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	return ""
}

func (m BoardModel) pipelinesView() string {
	if m.loading {
		return "Loading pipelines..."
	}

	var sb strings.Builder

	sb.WriteString("Pipelines\n\n")

	for i, p := range m.pipelines {
		line := p.Name
		if i == m.pipeIdx {
			line = selectedLeadStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		sb.WriteString(line + "\n")
	}

	if m.status != "" {
		sb.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render(m.status))
	}

	return sb.String()
}

func (m BoardModel) boardView() string {
	if m.b == nil {
		return m.status
	}

	columns := make([]string, len(m.b.Columns))
	for i := range m.b.Columns {
		columns[i] = m.columnView(i, &m.b.Columns[i])
	}

	boardLine := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	statusLine := ""
	if m.status != "" {
		statusLine = "\n" + lipgloss.NewStyle().Faint(true).Render(m.status)
	}

	return m.b.Pipeline.Name + "\n\n" + boardLine + statusLine
}

func (m BoardModel) columnView(index int, col *board.Column) string {
	var sb strings.Builder

	title := col.Stage.Name
	if col.Stage.IsRevenue {
		title += " " + revenueBadge
	}

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(title) + "\n\n")

	for j, l := range col.Leads {
		line := fmt.Sprintf("%s  %s", l.CustomerName, FormatMoney(l.Value))
		if index == m.col && j == m.row {
			line = selectedLeadStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render("Total: "+FormatMoney(col.Total)))

	style := columnStyle
	if index == m.col {
		style = selectedColumnStyle
	}

	return style.Render(sb.String())
}

func (m *BoardModel) setBoard(b *board.Board) {
	m.b = b

	if m.col >= len(b.Columns) {
		m.col = 0
	}

	m.clampRow()
}

func (m *BoardModel) clampRow() {
	col := m.currentColumn()
	if col == nil || len(col.Leads) == 0 {
		m.row = 0
		return
	}

	if m.row >= len(col.Leads) {
		m.row = len(col.Leads) - 1
	}
}

func (m BoardModel) currentColumn() *board.Column {
	if m.b == nil || m.col >= len(m.b.Columns) {
		return nil
	}

	return &m.b.Columns[m.col]
}

func (m BoardModel) selectedLead() *lead.Lead {
	col := m.currentColumn()
	if col == nil || m.row >= len(col.Leads) {
		return nil
	}

	return col.Leads[m.row]
}

// inputStage is where new leads land: the stage flagged as input, or the
// leftmost column when none is.
func (m BoardModel) inputStage() *pipeline.Stage {
	if m.b == nil || len(m.b.Columns) == 0 {
		return nil
	}

	for _, col := range m.b.Columns {
		if col.Stage.IsInput {
			return col.Stage
		}
	}

	return m.b.Columns[0].Stage
}

// Messages

type loadPipelinesMsg struct {
	pipelines []*pipeline.Pipeline
	err       error
}

func (m BoardModel) loadPipelinesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		pipelines, err := m.pipelineService.Pipelines(ctx, m.businessID)

		return loadPipelinesMsg{pipelines: pipelines, err: err}
	}
}

type loadBoardMsg struct {
	b   *board.Board
	err error
}

func (m BoardModel) loadBoardCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		b, err := m.boards.Load(ctx, m.businessID, m.pipelineID)

		return loadBoardMsg{b: b, err: err}
	}
}

type dropResultMsg struct {
	b   *board.Board
	err error
}

func (m BoardModel) dropCmd(leadID, fromStage, toStage uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		b, err := m.boards.Drop(ctx, m.businessID, m.pipelineID, leadID, fromStage, toStage)

		return dropResultMsg{b: b, err: err}
	}
}

type archiveResultMsg struct {
	b   *board.Board
	err error
}

func (m BoardModel) archiveCmd(leadID uuid.UUID, withRevenue bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		b, err := m.boards.Archive(ctx, m.businessID, m.pipelineID, leadID, withRevenue)

		return archiveResultMsg{b: b, err: err}
	}
}

type createLeadResultMsg struct {
	err error
}

func (m BoardModel) createLeadCmd() tea.Cmd {
	stage := m.inputStage()
	name := m.formName
	value, _ := strconv.ParseFloat(strings.TrimSpace(m.formValue), 64)
	leadSvc := m.leadService
	businessID := m.businessID

	return func() tea.Msg {
		if stage == nil {
			return createLeadResultMsg{err: fmt.Errorf("pipeline has no stages")}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		_, err := leadSvc.Create(ctx, lead.CreateParams{
			BusinessID:   businessID,
			StageID:      stage.ID,
			CustomerName: name,
			Value:        int64(math.Round(value * 100)),
			Assignee:     stage.DefaultAssignee,
		})

		return createLeadResultMsg{err: err}
	}
}
