package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/notify"
	"github.com/nveloso/pipeflow/internal/pipeline"
)

type stagesState int

const (
	stagesStatePipelines stagesState = iota
	stagesStateList
	stagesStateAdding
)

type StagesModel struct {
	CommonModel
	pipelineService *pipeline.Service
	businessID      uuid.UUID

	state      stagesState
	pipelines  []*pipeline.Pipeline
	pipeIdx    int
	pipelineID uuid.UUID
	stages     []*pipeline.Stage
	idx        int

	loading bool
	status  string

	form *huh.Form

	// Form field bindings
	formName    string
	formColor   string
	formRevenue bool
	formInput   bool
}

func NewStagesModel(pipeSvc *pipeline.Service, businessID uuid.UUID) StagesModel {
	return StagesModel{
		pipelineService: pipeSvc,
		businessID:      businessID,
	}
}

func (m StagesModel) Title() string { return "Manage Stages" }

func (m StagesModel) ShortHelp() string {
	switch m.state {
	case stagesStatePipelines:
		return "Esc: back | j/k: select | Enter: open"
	case stagesStateList:
		return "Esc: back | j/k: select | H/L: reorder | r: set revenue | a: add"
	case stagesStateAdding:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return ""
}

func (m StagesModel) Init() tea.Cmd {
	return m.loadPipelinesCmd()
}

func (m StagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stagesPipelinesMsg:
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

	case loadStagesMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.setStages(msg.stages)

		return m, nil

	case stageMutationMsg:
		m.loading = false
		m.state = stagesStateList

		if msg.err != nil {
			if errors.Is(msg.err, pipeline.ErrReordering) {
				m.status = "A reorder is still settling; try again."
			} else {
				m.status = fmt.Sprintf("Error: %v", msg.err)
			}

			return m, m.loadStagesCmd()
		}

		m.status = msg.status

		return m, m.loadStagesCmd()

	case ExternalChangeMsg:
		if m.state != stagesStateList || msg.Channel != notify.ChannelStages {
			return m, nil
		}

		return m, m.loadStagesCmd()
	}

	switch m.state {
	case stagesStatePipelines:
		return m.updatePipelines(msg)
	case stagesStateList:
		return m.updateList(msg)
	case stagesStateAdding:
		return m.updateAdding(msg)
	}

	return m, nil
}

func (m StagesModel) updatePipelines(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		m.state = stagesStateList
		m.loading = true
		m.status = ""

		return m, m.loadStagesCmd()
	}

	return m, nil
}

func (m StagesModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.state = stagesStatePipelines
		m.stages = nil

		return m, nil
	case "j", "down":
		if m.idx < len(m.stages)-1 {
			m.idx++
		}
	case "k", "up":
		if m.idx > 0 {
			m.idx--
		}
	case "H":
		m.loading = true
		return m, m.moveStageCmd(m.idx, pipeline.DirectionLeft)
	case "L":
		m.loading = true
		return m, m.moveStageCmd(m.idx, pipeline.DirectionRight)
	case "r":
		if m.idx >= len(m.stages) {
			return m, nil
		}

		m.loading = true

		return m, m.setRevenueCmd(m.stages[m.idx].ID)
	case "a":
		return m.startAdding()
	}

	return m, nil
}

func (m StagesModel) startAdding() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formColor = ""
	m.formRevenue = false
	m.formInput = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("color").
				Title("Color (optional)").
				Placeholder("#8839ef").
				Value(&m.formColor),

			huh.NewConfirm().
				Key("is_revenue").
				Title("Revenue stage?").
				Affirmative("Yes").
				Negative("No").
				Value(&m.formRevenue),

			huh.NewConfirm().
				Key("is_input").
				Title("Input stage for new leads?").
				Affirmative("Yes").
				Negative("No").
				Value(&m.formInput),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = stagesStateAdding

	return m, m.form.Init()
}

func (m StagesModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = stagesStateList
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

	m.loading = true

	return m, m.addStageCmd()
}

func (m StagesModel) View() string {
	switch m.state {
	case stagesStatePipelines:
		return lipgloss.NewStyle().Padding(1).Render(m.pipelinesView())

	case stagesStateList:
		if m.loading && m.stages == nil {
			return lipgloss.NewStyle().Padding(2).Render("Loading stages...")
		}

		return lipgloss.NewStyle().Padding(1).Render(m.listView())

	case stagesStateAdding:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	return ""
}

func (m StagesModel) pipelinesView() string {
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

func (m StagesModel) listView() string {
	var sb strings.Builder

	sb.WriteString("Stages\n\n")

	for i, st := range m.stages {
		line := fmt.Sprintf("%d. %s", st.Order, st.Name)
		if st.IsRevenue {
			line += " " + revenueBadge
		}

		if st.IsInput {
			line += " " + lipgloss.NewStyle().Faint(true).Render("[input]")
		}

		if i == m.idx {
			line = selectedLeadStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		sb.WriteString(line + "\n")
	}

	if len(m.stages) == 0 {
		sb.WriteString(lipgloss.NewStyle().Faint(true).Render("  (no stages yet)") + "\n")
	}

	if m.status != "" {
		sb.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render(m.status))
	}

	return sb.String()
}

func (m *StagesModel) setStages(stages []*pipeline.Stage) {
	m.stages = stages

	if m.idx >= len(stages) && m.idx > 0 {
		m.idx = len(stages) - 1
	}
}

// Messages

type stagesPipelinesMsg struct {
	pipelines []*pipeline.Pipeline
	err       error
}

func (m StagesModel) loadPipelinesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		pipelines, err := m.pipelineService.Pipelines(ctx, m.businessID)

		return stagesPipelinesMsg{pipelines: pipelines, err: err}
	}
}

type loadStagesMsg struct {
	stages []*pipeline.Stage
	err    error
}

func (m StagesModel) loadStagesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		stages, err := m.pipelineService.Stages(ctx, m.businessID, m.pipelineID)

		return loadStagesMsg{stages: stages, err: err}
	}
}

type stageMutationMsg struct {
	status string
	err    error
}

func (m StagesModel) moveStageCmd(index int, direction pipeline.Direction) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.pipelineService.MoveStage(ctx, m.businessID, m.pipelineID, index, direction)

		return stageMutationMsg{status: "Moved.", err: err}
	}
}

func (m StagesModel) setRevenueCmd(stageID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.pipelineService.SetRevenue(ctx, m.businessID, stageID)

		return stageMutationMsg{status: "Revenue stage set.", err: err}
	}
}

func (m StagesModel) addStageCmd() tea.Cmd {
	params := pipeline.CreateStageParams{
		PipelineID: m.pipelineID,
		BusinessID: m.businessID,
		Name:       m.formName,
		Color:      strings.TrimSpace(m.formColor),
		IsRevenue:  m.formRevenue,
		IsInput:    m.formInput,
	}
	pipeSvc := m.pipelineService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := pipeSvc.AddStage(ctx, params)

		return stageMutationMsg{status: "Stage added.", err: err}
	}
}
