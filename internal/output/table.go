package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tiwariParth/go-todo-cli/internal/models"
)

// AllTitle is the table title when no status filter is active.
const AllTitle = "All"

// TaskTable prints tasks under the title "Tasks - <title>" with the columns
// ID, Status and Description.
func (c *Console) TaskTable(title string, tasks []models.Task) {
	cell := c.renderer.NewStyle().Padding(0, 1)
	header := cell.Bold(true)
	idStyle := cell.Align(lipgloss.Right).Foreground(lipgloss.Color("6"))
	statusStyle := cell.Foreground(lipgloss.Color("5"))
	descStyle := cell.Foreground(lipgloss.Color("2"))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.renderer.NewStyle()).
		Headers("ID", "Status", "Description").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			switch col {
			case 0:
				return idStyle
			case 1:
				return statusStyle
			default:
				return descStyle
			}
		})

	for _, task := range tasks {
		t.Row(idCell(task), task.Status.String(), task.Description)
	}

	rendered := t.Render()
	heading := c.renderer.NewStyle().
		Italic(true).
		Width(lipgloss.Width(rendered)).
		Align(lipgloss.Center).
		Render("Tasks - " + title)

	fmt.Fprintln(c.w, heading)
	fmt.Fprintln(c.w, rendered)
}
