package carousel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showcase/internal/slider"
)

// ChangedMsg signals that the engine changed. State is the snapshot taken
// when the change was published; it may be older than the engine by the time
// the message is handled.
type ChangedMsg struct {
	State slider.State
}

// waitForChange blocks on the engine subscription and delivers the next
// snapshot. A closed subscription yields no message, which ends the chain.
func waitForChange(updates <-chan slider.State) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		st, ok := <-updates
		if !ok {
			return nil
		}
		return ChangedMsg{State: st}
	}
}
