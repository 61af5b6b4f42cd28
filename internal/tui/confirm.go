package tui

type confirmModel struct {
	username string
}

func (m confirmModel) View() string {
	content := "Delete user \"" + m.username + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
