package carousel

import (
	"fmt"

	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// View renders the carousel with a status line under it.
func (m Model) View() string {
	if m.state.Empty() {
		return components.CaptionText("No slides").ViewWithContext(m.context())
	}

	status := components.HStack(
		components.StatusBadge("auto-play", m.state.AutoPlay),
		components.CaptionText(fmt.Sprintf("slide %d of %d", m.state.Index+1, m.state.Count)),
	).WithGap(1)

	return components.VStack(m.view(), status).ViewWithContext(m.context())
}
