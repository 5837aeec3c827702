package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskroll/internal/domain"
	"taskroll/internal/roller"
)

type rollEventMsg struct {
	event roller.Event
}

type rollClosedMsg struct{}

// RollModel animates a roll: preview ticks cycle through candidate tasks
// until the settle event shows the final pick.
type RollModel struct {
	events  <-chan roller.Event
	preview *domain.Task
	result  *domain.Task
	settled bool
	aborted bool
}

// NewRollModel creates a roll animation fed by the given roll's events.
func NewRollModel(events <-chan roller.Event) RollModel {
	return RollModel{events: events}
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m RollModel) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent blocks on the next roll event.
func (m RollModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return rollClosedMsg{}
		}
		return rollEventMsg{event: ev}
	}
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m RollModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		}

	case rollEventMsg:
		if msg.event.Final {
			m.settled = true
			m.result = msg.event.Result
			return m, tea.Quit
		}
		m.preview = msg.event.Preview
		return m, m.waitForEvent()

	case rollClosedMsg:
		// Channel closed without a terminal event: the roll was cancelled.
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current roll frame.
func (m RollModel) View() string {
	switch {
	case m.aborted:
		return "Roll cancelled.\n"
	case m.settled && m.result != nil:
		return "🎲 " + resultStyle.Render(m.result.Name) + " " + PriorityBadge(m.result.Priority) + "\n"
	case m.settled:
		return "No incomplete tasks to roll.\n"
	case m.preview != nil:
		return "🎲 " + previewStyle.Render(m.preview.Name) + "\n"
	default:
		return "🎲 rolling...\n"
	}
}

// Result returns the settled pick, if any.
func (m RollModel) Result() (*domain.Task, bool) {
	return m.result, m.settled
}

// RunRoll runs the roll animation to completion and returns the final pick.
// The boolean is false when the roll was cancelled or settled on an empty
// pool.
func RunRoll(events <-chan roller.Event) (*domain.Task, bool, error) {
	program := tea.NewProgram(NewRollModel(events))
	final, err := program.Run()
	if err != nil {
		return nil, false, err
	}

	model, ok := final.(RollModel)
	if !ok {
		return nil, false, nil
	}
	result, settled := model.Result()
	return result, settled && result != nil, nil
}
