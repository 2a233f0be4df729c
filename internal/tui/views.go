package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/Togss/esportsranker/internal/database/repository"
)

func (a *App) renderLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Esports Ranker - Sign In") + "\n\n")
	b.WriteString(labelStyle.Render("Enter your device code to sign in.") + "\n\n")
	b.WriteString("  " + a.codeInput.View() + "\n\n")
	if a.deviceID != "" {
		b.WriteString(dimStyle.Render("device "+a.deviceID) + "\n\n")
	}
	b.WriteString(renderHelp(a.keys.Confirm, a.keys.Back, a.keys.Interrupt))
	return b.String()
}

func (a *App) renderDashboard() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Esports Ranker - Dashboard") + "\n\n")

	b.WriteString(labelStyle.Render("Session") + "\n")
	if a.session.LoggedIn {
		b.WriteString("  signed in     " + valueStyle.Render("yes") + "\n")
		b.WriteString("  access token  " + valueStyle.Render(maskToken(a.session.AccessToken, a.showToken)) + "\n")
	} else {
		b.WriteString("  signed in     " + valueStyle.Render("no") + "\n")
		b.WriteString(dimStyle.Render("  press l to sign in with a device code") + "\n")
	}

	b.WriteString("\n" + labelStyle.Render("Tournaments") + "\n")
	total := 0
	for _, s := range []string{
		repository.StatusUpcoming,
		repository.StatusOngoing,
		repository.StatusCompleted,
		repository.StatusDraft,
	} {
		n := a.statusCounts[s]
		total += n
		b.WriteString(fmt.Sprintf("  %s %d\n", statusStyleFor(s).Render(fmt.Sprintf("%-10s", s)), n))
	}
	b.WriteString(fmt.Sprintf("  %-10s %d\n", "total", total))

	b.WriteString("\n" + labelStyle.Render("Rosters") + "\n")
	b.WriteString(fmt.Sprintf("  teams   %d\n", a.teamCount))
	b.WriteString(fmt.Sprintf("  players %d\n", a.playerCount))

	if a.cfg.Database.Path != "" {
		b.WriteString("\n" + dimStyle.Render("db "+a.cfg.Database.Path) + "\n")
	}

	b.WriteString("\n" + renderHelp(a.keys.Tournaments, a.keys.Login, a.keys.Logout, a.keys.ToggleToken, a.keys.Quit))
	return b.String()
}

func (a *App) renderTournaments() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Esports Ranker - Tournaments") + "\n\n")

	if a.loading {
		b.WriteString(a.spin.View() + " loading tournaments...\n")
		b.WriteString("\n" + renderHelp(a.keys.Dashboard, a.keys.Quit))
		return b.String()
	}

	if len(a.names) == 0 {
		b.WriteString(dimStyle.Render("no tournaments yet; press a to add one or r to reload") + "\n")
	}
	for i, name := range a.names {
		marker := " "
		if i == a.cursor {
			marker = cursorStyle.Render("▶")
		}
		line := name
		if row, ok := a.byName[name]; ok {
			line = fmt.Sprintf("%-40s %s %3d teams",
				name,
				statusStyleFor(row.Status).Render(fmt.Sprintf("%-9s", row.Status)),
				row.TeamCount)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", marker, line))
	}
	if detail := a.renderDetail(); detail != "" {
		b.WriteString("\n" + detail + "\n")
	}

	b.WriteString("\n" + renderHelp(a.keys.Up, a.keys.Down, a.keys.Add, a.keys.Reload, a.keys.Reset, a.keys.Dashboard, a.keys.Quit))
	return b.String()
}

// renderDetail shows the selected tournament's row, when the repo listing
// produced one for that name.
func (a *App) renderDetail() string {
	if a.cursor >= len(a.names) {
		return ""
	}
	row, ok := a.byName[a.names[a.cursor]]
	if !ok {
		return ""
	}
	var parts []string
	if row.Region != "" {
		parts = append(parts, "region "+row.Region)
	}
	if row.Tier != "" {
		parts = append(parts, "tier "+row.Tier)
	}
	if row.StartDate != nil && row.EndDate != nil {
		parts = append(parts, fmt.Sprintf("%s to %s",
			row.StartDate.Format(a.dateFormat), row.EndDate.Format(a.dateFormat)))
	}
	if row.PrizePoolUSD != nil {
		parts = append(parts, fmt.Sprintf("$%d USD", *row.PrizePoolUSD))
	}
	parts = append(parts, "slug "+row.Slug)
	return dimStyle.Render(strings.Join(parts, "  |  "))
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalConfirmReset:
		body := titleStyle.Render("Reset database?") +
			"\nThis deletes every tournament, team, and player.\n[y] yes  [n] no"
		return modalStyle.Render(body)
	case modalAddTournament:
		labels := []string{"name", "region", "tier", "start", "end", "prize USD"}
		var b strings.Builder
		b.WriteString(titleStyle.Render("Add tournament") + "\n")
		for i := range a.addInputs {
			label := fmt.Sprintf("%-9s", labels[i])
			if i == a.addFocus {
				b.WriteString(cursorStyle.Render(label))
			} else {
				b.WriteString(labelStyle.Render(label))
			}
			b.WriteString(" " + a.addInputs[i].View() + "\n")
		}
		b.WriteString("\n[enter] save  [tab] next field  [esc] cancel")
		return modalStyle.Render(b.String())
	}
	return ""
}

func (a *App) renderStatus() string {
	if a.statusErr {
		return statusErrStyle.Render(a.status)
	}
	return statusOKStyle.Render(a.status)
}

func renderHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "   ")
}

func maskToken(token string, show bool) string {
	if token == "" {
		return "(none)"
	}
	if show {
		return token
	}
	return strings.Repeat("*", len(token))
}

func statusStyleFor(status string) lipgloss.Style {
	switch status {
	case repository.StatusOngoing:
		return badgeOngoing
	case repository.StatusUpcoming:
		return badgeUpcoming
	case repository.StatusCompleted:
		return badgeCompleted
	default:
		return badgeDraft
	}
}
