// Package tui implements the interactive convergent explorer behind
// the "contfrac explore" subcommand: a scrollable table of convergents
// of growing grade, extended lazily as the cursor moves down, with the
// arithmetical expression of the selected truncation previewed below.
package tui

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinne26/contfrac"
	"github.com/tinne26/contfrac/internal/parse"
)

// How many convergents to compute ahead of the cursor.
const extendChunk = 16

// Lines of chrome around the viewport (title, target, header, expression
// preview, status and help lines).
const chromeHeight = 9

// Model is the bubbletea model of the explorer.
type Model struct {
	target contfrac.Value
	label  string

	coeffSeq  *contfrac.Expansion
	convSeq   *contfrac.ConvergentSeq
	coeffs    []*big.Int
	convs     []contfrac.Convergent
	exhausted bool

	cursor   int
	entering bool
	input    textinput.Model
	viewport viewport.Model
	ready    bool
	err      error
}

// NewModel creates an explorer for the given value. The label is the
// original spelling of the value, shown verbatim in the header.
func NewModel(value contfrac.Value, label string) Model {
	input := textinput.New()
	input.Placeholder = "415/93, 2.718, 42..."
	input.CharLimit = 64
	input.Width = 32

	model := Model{input: input}
	model.restart(value, label)
	return model
}

func (self *Model) restart(value contfrac.Value, label string) {
	self.target = value
	self.label = label
	self.coeffSeq = contfrac.ContinuedFraction(value, 0)
	self.convSeq = contfrac.Convergents(value, -1)
	self.coeffs = nil
	self.convs = nil
	self.exhausted = false
	self.cursor = 0
	self.extend(extendChunk)
}

// The two sequences advance in lockstep: one coefficient consumed per
// convergent, so coeffs[:k+1] always corresponds to convs[k].
func (self *Model) extend(count int) {
	for i := 0; i < count && !self.exhausted; i++ {
		coeff, okCoeff := self.coeffSeq.Next()
		conv, okConv := self.convSeq.Next()
		if !okCoeff || !okConv {
			self.exhausted = true
			break
		}
		self.coeffs = append(self.coeffs, coeff)
		self.convs = append(self.convs, conv)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - chromeHeight
		if height < 3 { height = 3 }
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		if m.entering { return m.updateEntering(msg) }

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 { m.cursor -= 1 }
		case "down", "j":
			if m.cursor >= len(m.convs)-1 && !m.exhausted {
				m.extend(extendChunk)
			}
			if m.cursor < len(m.convs)-1 { m.cursor += 1 }
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			for !m.exhausted { m.extend(extendChunk) }
			m.cursor = len(m.convs) - 1
		case "e", "enter":
			m.entering = true
			m.err = nil
			m.input.SetValue("")
			return m, m.input.Focus()
		}
		m.syncViewport()
		return m, nil
	}
	return m, nil
}

func (m Model) updateEntering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value, err := parse.Value(m.input.Value())
		if err != nil {
			m.err = err
		} else {
			m.restart(value, strings.TrimSpace(m.input.Value()))
		}
		m.entering = false
		m.input.Blur()
		m.syncViewport()
		return m, nil
	case "esc", "ctrl+c":
		m.entering = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready { return "starting up..." }

	var builder strings.Builder
	builder.WriteString(titleStyle.Render("contfrac explorer"))
	builder.WriteString("  ")
	builder.WriteString(subtleStyle.Render("convergents of"))
	builder.WriteString(" ")
	builder.WriteString(targetStyle.Render(m.label))
	builder.WriteString("\n")
	builder.WriteString(subtleStyle.Render(truncate(m.notation(), m.viewport.Width-1)))
	builder.WriteString("\n\n")
	builder.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-28s %-22s %s", "grade", "fraction", "value", "error")))
	builder.WriteString("\n")
	builder.WriteString(m.viewport.View())
	builder.WriteString("\n")
	builder.WriteString(exprStyle.Render(truncate(contfrac.ArithmeticalExpr(m.coeffs[:m.cursor+1]), m.viewport.Width-5)))
	builder.WriteString("\n")

	if m.entering {
		builder.WriteString("new value: " + m.input.View())
	} else if m.err != nil {
		builder.WriteString(errorStyle.Render("error: " + m.err.Error()))
	} else {
		builder.WriteString(helpStyle.Render("up/down scroll · g/G first/last · e new value · q quit"))
	}
	return builder.String()
}

func (self *Model) syncViewport() {
	if !self.ready { return }
	self.viewport.SetContent(self.renderRows())

	// keep the selected row visible
	if self.cursor < self.viewport.YOffset {
		self.viewport.SetYOffset(self.cursor)
	}
	if self.cursor >= self.viewport.YOffset+self.viewport.Height {
		self.viewport.SetYOffset(self.cursor - self.viewport.Height + 1)
	}
}

func (self *Model) renderRows() string {
	target := self.target.Rat()
	lines := make([]string, len(self.convs))
	for i, conv := range self.convs {
		errAbs := new(big.Rat).Sub(target, conv.Rat())
		errAbs.Abs(errAbs)
		errColumn := "exact"
		if errAbs.Sign() != 0 {
			errFloat, _ := errAbs.Float64()
			errColumn = fmt.Sprintf("%.3g", errFloat)
		}

		line := fmt.Sprintf(
			"%-6d %-28s %-22.16g %s",
			i, truncate(conv.String(), 28), conv.Float64(), errColumn,
		)
		switch {
		case i == self.cursor:
			line = selectedRowStyle.Render(line)
		case errAbs.Sign() == 0:
			line = exactStyle.Render(line)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Returns the standard "[a0; a1, a2, ...]" notation of the coefficients
// computed so far.
func (self *Model) notation() string {
	return parse.Notation(self.coeffs, self.exhausted)
}

func truncate(str string, width int) string {
	if width <= 1 || len(str) <= width { return str }
	return str[:width-1] + "…"
}
