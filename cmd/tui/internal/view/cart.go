package view

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/cart"
	"github.com/nveloso/pipeflow/internal/product"
	"github.com/nveloso/pipeflow/internal/sale"
)

type cartState int

const (
	cartStateShopping cartState = iota
	cartStateConfirm
	cartStateReceipt
)

type cartFocus int

const (
	focusSearch cartFocus = iota
	focusLines
)

type CartModel struct {
	CommonModel
	productService *product.Service
	cartService    *cart.Service
	businessID     uuid.UUID
	employeeID     uuid.UUID

	state cartState
	focus cartFocus
	c     *cart.Cart

	input     textinput.Model
	results   []*product.Product
	resultIdx int
	lineIdx   int

	// cancelSearch aborts the in-flight lookup when a newer keystroke
	// supersedes it. Stale results also carry their query, so anything
	// that slips past cancellation is discarded on arrival.
	cancelSearch context.CancelFunc

	form        *huh.Form
	formConfirm bool

	receipt *sale.CommitResult
	status  string
}

func NewCartModel(productSvc *product.Service, cartSvc *cart.Service, businessID, employeeID uuid.UUID, taxEnabled bool, taxRatePercent float64) CartModel {
	input := textinput.New()
	input.Placeholder = "Search products by name or SKU"
	input.Focus()
	input.CharLimit = 80
	input.Width = 40

	return CartModel{
		productService: productSvc,
		cartService:    cartSvc,
		businessID:     businessID,
		employeeID:     employeeID,
		c:              cart.New(taxEnabled, taxRatePercent),
		input:          input,
	}
}

func (m CartModel) Title() string { return "New Sale" }

func (m CartModel) ShortHelp() string {
	switch m.state {
	case cartStateShopping:
		if m.focus == focusSearch {
			return "Esc: back | Tab: cart | j/k: results | Enter: add"
		}

		return "Esc: back | Tab: search | j/k: lines | +/-: qty | x: remove | c: checkout"
	case cartStateConfirm:
		return "Esc: cancel | Enter: confirm"
	case cartStateReceipt:
		return "Enter: new sale | Esc: back"
	}

	return ""
}

func (m CartModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m CartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultsMsg:
		// Results for an abandoned query never overwrite fresher ones.
		if msg.query != strings.TrimSpace(m.input.Value()) {
			return m, nil
		}

		if msg.err != nil {
			if !errors.Is(msg.err, context.Canceled) {
				m.status = fmt.Sprintf("Search error: %v", msg.err)
			}

			return m, nil
		}

		m.results = msg.products
		m.resultIdx = 0

		return m, nil

	case checkoutResultMsg:
		if msg.err != nil {
			m.state = cartStateShopping
			m.status = fmt.Sprintf("Checkout failed: %v", msg.err)

			return m, nil
		}

		m.receipt = msg.result
		m.state = cartStateReceipt
		m.status = ""

		return m, nil
	}

	switch m.state {
	case cartStateShopping:
		return m.updateShopping(msg)
	case cartStateConfirm:
		return m.updateConfirm(msg)
	case cartStateReceipt:
		return m.updateReceipt(msg)
	}

	return m, nil
}

func (m CartModel) updateShopping(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		m.abortSearch()
		return m, Back
	case "tab":
		if m.focus == focusSearch {
			m.focus = focusLines
			m.input.Blur()
		} else {
			m.focus = focusSearch
			m.input.Focus()
		}

		return m, nil
	}

	if m.focus == focusLines {
		return m.updateLines(keyMsg)
	}

	switch keyMsg.String() {
	case "down", "ctrl+n":
		if m.resultIdx < len(m.results)-1 {
			m.resultIdx++
		}

		return m, nil
	case "up", "ctrl+p":
		if m.resultIdx > 0 {
			m.resultIdx--
		}

		return m, nil
	case "enter":
		return m.addSelected()
	}

	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() == before {
		return m, cmd
	}

	return m, tea.Batch(cmd, m.searchCmd())
}

func (m CartModel) addSelected() (tea.Model, tea.Cmd) {
	if len(m.results) == 0 {
		return m, nil
	}

	p := m.results[m.resultIdx]

	if err := m.c.Add(*p); err != nil {
		m.status = fmt.Sprintf("Cannot add %s: %v", p.Name, err)
		return m, nil
	}

	m.status = fmt.Sprintf("Added %s.", p.Name)

	return m, nil
}

func (m CartModel) updateLines(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "j", "down":
		if m.lineIdx < len(m.c.Lines)-1 {
			m.lineIdx++
		}
	case "k", "up":
		if m.lineIdx > 0 {
			m.lineIdx--
		}
	case "+", "=":
		if line := m.selectedLine(); line != nil {
			if err := m.c.Increment(line.ProductID); err != nil {
				m.status = fmt.Sprintf("Cannot add more: %v", err)
			}
		}
	case "-":
		if line := m.selectedLine(); line != nil {
			m.c.Decrement(line.ProductID)
			m.clampLine()
		}
	case "x":
		if line := m.selectedLine(); line != nil {
			m.c.Remove(line.ProductID)
			m.clampLine()
		}
	case "c":
		return m.startConfirm()
	}

	return m, nil
}

func (m CartModel) startConfirm() (tea.Model, tea.Cmd) {
	if m.c.Empty() {
		m.status = "Cart is empty."
		return m, nil
	}

	m.formConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("commit").
				Title(fmt.Sprintf("Charge %s?", FormatMoney(m.c.Total()))).
				Affirmative("Commit").
				Negative("Cancel").
				Value(&m.formConfirm),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = cartStateConfirm

	return m, m.form.Init()
}

func (m CartModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = cartStateShopping
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

	if !m.formConfirm {
		m.state = cartStateShopping
		return m, nil
	}

	return m, m.checkoutCmd()
}

func (m CartModel) updateReceipt(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "enter":
		m.state = cartStateShopping
		m.receipt = nil
		m.results = nil
		m.input.SetValue("")
		m.focus = focusSearch
		m.input.Focus()

		return m, textinput.Blink
	}

	return m, nil
}

func (m CartModel) View() string {
	switch m.state {
	case cartStateShopping:
		return lipgloss.NewStyle().Padding(1).Render(m.shoppingView())

	case cartStateConfirm:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(m.cartView() + "\n" + m.form.View())

	case cartStateReceipt:
		return lipgloss.NewStyle().Padding(1).Render(m.receiptView())
	}

	return ""
}

func (m CartModel) shoppingView() string {
	var sb strings.Builder

	sb.WriteString(m.input.View() + "\n\n")

	for i, p := range m.results {
		line := fmt.Sprintf("%s  %s  %s  (stock %d)", p.Name, p.SKU, FormatMoney(p.Price), p.Stock)
		if m.focus == focusSearch && i == m.resultIdx {
			line = selectedLeadStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n" + m.cartView())

	if m.status != "" {
		sb.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render(m.status))
	}

	return sb.String()
}

func (m CartModel) cartView() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Cart") + "\n")

	if m.c.Empty() {
		sb.WriteString(lipgloss.NewStyle().Faint(true).Render("  (empty)") + "\n")
	}

	for i, line := range m.c.Lines {
		row := fmt.Sprintf("%dx %s  %s", line.Quantity, line.Name, FormatMoney(line.Price*int64(line.Quantity)))
		if m.focus == focusLines && i == m.lineIdx {
			row = selectedLeadStyle.Render("> " + row)
		} else {
			row = "  " + row
		}

		sb.WriteString(row + "\n")
	}

	sb.WriteString(fmt.Sprintf("\nSubtotal: %s", FormatMoney(m.c.Subtotal())))

	if m.c.TaxEnabled {
		sb.WriteString(fmt.Sprintf("  Tax (%.1f%%): %s", m.c.TaxRatePercent, FormatMoney(m.c.Tax())))
	}

	sb.WriteString("  " + lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Total: %s", FormatMoney(m.c.Total()))))

	return sb.String()
}

func (m CartModel) receiptView() string {
	if m.receipt == nil {
		return ""
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(fmt.Sprintf("Sale committed.\nOrder #%d", m.receipt.OrderNumber))
}

func (m *CartModel) selectedLine() *cart.Line {
	if m.lineIdx >= len(m.c.Lines) {
		return nil
	}

	return &m.c.Lines[m.lineIdx]
}

func (m *CartModel) clampLine() {
	if m.lineIdx >= len(m.c.Lines) && m.lineIdx > 0 {
		m.lineIdx = len(m.c.Lines) - 1
	}
}

func (m *CartModel) abortSearch() {
	if m.cancelSearch != nil {
		m.cancelSearch()
		m.cancelSearch = nil
	}
}

// Messages

type searchResultsMsg struct {
	query    string
	products []*product.Product
	err      error
}

func (m *CartModel) searchCmd() tea.Cmd {
	m.abortSearch()

	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.results = nil
		m.resultIdx = 0

		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelSearch = cancel

	productSvc := m.productService
	businessID := m.businessID

	return func() tea.Msg {
		ctx, cancelTimeout := context.WithTimeout(ctx, dbTimeout)
		defer cancelTimeout()

		products, err := productSvc.Search(ctx, businessID, query)

		return searchResultsMsg{query: query, products: products, err: err}
	}
}

type checkoutResultMsg struct {
	result *sale.CommitResult
	err    error
}

func (m CartModel) checkoutCmd() tea.Cmd {
	cartSvc := m.cartService
	c := m.c
	businessID := m.businessID
	employeeID := m.employeeID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := cartSvc.Checkout(ctx, businessID, employeeID, c, nil)

		return checkoutResultMsg{result: result, err: err}
	}
}
