package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/nveloso/pipeflow/cmd/tui/internal/view"
	"github.com/nveloso/pipeflow/internal/board"
	"github.com/nveloso/pipeflow/internal/cart"
	"github.com/nveloso/pipeflow/internal/config"
	"github.com/nveloso/pipeflow/internal/database"
	"github.com/nveloso/pipeflow/internal/lead"
	leadStore "github.com/nveloso/pipeflow/internal/lead/store"
	"github.com/nveloso/pipeflow/internal/notify"
	"github.com/nveloso/pipeflow/internal/pipeline"
	pipelineStore "github.com/nveloso/pipeflow/internal/pipeline/store"
	"github.com/nveloso/pipeflow/internal/product"
	productStore "github.com/nveloso/pipeflow/internal/product/store"
	"github.com/nveloso/pipeflow/internal/sale"
	saleStore "github.com/nveloso/pipeflow/internal/sale/store"
)

type model struct {
	pipelineService *pipeline.Service
	leadService     *lead.Service
	boardService    *board.Service
	productService  *product.Service
	cartService     *cart.Service

	listener *notify.Listener

	businessID uuid.UUID
	employeeID uuid.UUID
	cfg        *config.Config

	currentView View

	boardView  view.BoardModel
	cartView   view.CartModel
	stagesView view.StagesModel
}

type View int

const (
	ViewMenu   View = 0
	ViewBoard  View = 1
	ViewCart   View = 2
	ViewStages View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	businessID, err := uuid.Parse(cfg.TUI.BusinessID)
	if err != nil {
		slog.Error("TUI_BUSINESS_ID must be a valid uuid", "error", err)
		os.Exit(1)
	}

	employeeID, err := uuid.Parse(cfg.TUI.EmployeeID)
	if err != nil {
		slog.Error("TUI_EMPLOYEE_ID must be a valid uuid", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// The listener is best-effort: without it the board simply stops
	// following other clients' edits until a manual reload.
	listener, err := notify.Connect(context.Background(), cfg.ConnectionString(),
		notify.ChannelLeads, notify.ChannelStages, notify.ChannelProducts)
	if err != nil {
		slog.Warn("change notifications unavailable", "error", err)
		listener = nil
	}

	pipeSvc := pipeline.NewService(pipelineStore.New(db))
	leadSvc := lead.NewService(leadStore.New(db))
	boardSvc := board.NewService(pipeSvc, leadSvc)
	productSvc := product.NewService(productStore.New(db))
	saleSvc := sale.NewService(saleStore.New(db))
	cartSvc := cart.NewService(saleSvc)

	return model{
		pipelineService: pipeSvc,
		leadService:     leadSvc,
		boardService:    boardSvc,
		productService:  productSvc,
		cartService:     cartSvc,
		listener:        listener,
		businessID:      businessID,
		employeeID:      employeeID,
		cfg:             cfg,
		currentView:     ViewMenu,
		boardView:       view.NewBoardModel(boardSvc, pipeSvc, leadSvc, businessID),
		cartView:        view.NewCartModel(productSvc, cartSvc, businessID, employeeID, cfg.Checkout.TaxEnabled, cfg.Checkout.TaxRatePercent),
		stagesView:      view.NewStagesModel(pipeSvc, businessID),
	}
}

func (m model) Init() tea.Cmd {
	return m.waitNotifyCmd()
}

// waitNotifyCmd blocks on the next change notification and feeds it to
// the active view. It re-arms itself after every event.
func (m model) waitNotifyCmd() tea.Cmd {
	if m.listener == nil {
		return nil
	}

	listener := m.listener

	return func() tea.Msg {
		event, err := listener.Wait(context.Background())
		if err != nil {
			return nil
		}

		return view.ExternalChangeMsg{Channel: event.Channel}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewBoard
				m.boardView = view.NewBoardModel(m.boardService, m.pipelineService, m.leadService, m.businessID)

				return m, m.boardView.Init()
			case "2":
				m.currentView = ViewCart
				m.cartView = view.NewCartModel(m.productService, m.cartService, m.businessID, m.employeeID,
					m.cfg.Checkout.TaxEnabled, m.cfg.Checkout.TaxRatePercent)

				return m, m.cartView.Init()
			case "3":
				m.currentView = ViewStages
				m.stagesView = view.NewStagesModel(m.pipelineService, m.businessID)

				return m, m.stagesView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	case view.ExternalChangeMsg:
		rearm := m.waitNotifyCmd()

		var newModel tea.Model

		switch m.currentView {
		case ViewBoard:
			newModel, cmd = m.boardView.Update(msg)
			m.boardView = newModel.(view.BoardModel)
		case ViewStages:
			newModel, cmd = m.stagesView.Update(msg)
			m.stagesView = newModel.(view.StagesModel)
		}

		return m, tea.Batch(cmd, rearm)
	}

	switch m.currentView {
	case ViewBoard:
		var newModel tea.Model
		newModel, cmd = m.boardView.Update(msg)
		m.boardView = newModel.(view.BoardModel)
	case ViewCart:
		var newModel tea.Model
		newModel, cmd = m.cartView.Update(msg)
		m.cartView = newModel.(view.CartModel)
	case ViewStages:
		var newModel tea.Model
		newModel, cmd = m.stagesView.Update(msg)
		m.stagesView = newModel.(view.StagesModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Pipeflow TUI\n\n" +
				"1. Pipeline Board\n" +
				"2. New Sale\n" +
				"3. Manage Stages\n\n" +
				"q. Quit",
		)
	case ViewBoard:
		return m.boardView.View()
	case ViewCart:
		return m.cartView.View()
	case ViewStages:
		return m.stagesView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
