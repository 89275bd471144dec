package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/tableview"
)

// Renderer tokens understood by cell rendering. Columns without a token
// render as plain text.
const (
	renderStatus = "status"
	renderDate   = "date"
	renderNumber = "number"
)

// render draws the engine's current page window into the tview table. Table
// mode uses one row per record under a header row; compact mode stacks two
// rows per record and skips the header.
func (p *resourcePane[T]) render(table *tview.Table, theme Theme, focused bool) {
	table.Clear()
	view := p.engine.View()
	p.restoreCursor()

	if view.Mode == tableview.ModeCompactList {
		p.renderCompact(table, view, theme, focused)
		return
	}
	p.renderTable(table, view, theme, focused)
}

func (p *resourcePane[T]) renderTable(table *tview.Table, view tableview.View[T], theme Theme, focused bool) {
	headerBg := hexToColor(theme.HeaderBg)
	headerFg := hexToColor(theme.HeaderText)
	sort := p.engine.Sort()

	table.SetCell(0, 0, tview.NewTableCell(" ").
		SetBackgroundColor(headerBg).
		SetSelectable(false))
	for c, col := range view.Columns {
		title := col.Title
		if col.Key == sort.Key {
			if sort.Direction == tableview.Descending {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		cell := tview.NewTableCell(" " + title + " ").
			SetTextColor(headerFg).
			SetBackgroundColor(headerBg).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false)
		if col.Sort == tableview.SortNumber {
			cell.SetAlign(tview.AlignRight)
		}
		table.SetCell(0, c+1, cell)
	}

	for r, rec := range view.Rows {
		id := view.Identities[r]
		selected := p.engine.IsSelected(id)
		underCursor := focused && r == p.cursor

		bg := theme.SurfaceColor()
		if underCursor {
			bg = theme.SelectionBackground()
		}

		marker := " "
		markerColor := hexToColor(theme.Text.Faint)
		if selected {
			marker = "✓"
			markerColor = hexToColor(theme.Text.Accent)
		} else if underCursor {
			marker = "›"
		}
		table.SetCell(r+1, 0, tview.NewTableCell(marker).
			SetTextColor(markerColor).
			SetBackgroundColor(bg))

		for c, col := range view.Columns {
			cell := tview.NewTableCell(" " + tview.Escape(col.Value(rec)) + " ").
				SetTextColor(cellColor(col, rec, theme)).
				SetBackgroundColor(bg).
				SetExpansion(1)
			if col.Sort == tableview.SortNumber {
				cell.SetAlign(tview.AlignRight)
			}
			table.SetCell(r+1, c+1, cell)
		}
	}
}

// renderCompact stacks each record as a two-line entry: the first visible
// column bold on line one with the remaining values beside it, and the
// record identity muted on line two.
func (p *resourcePane[T]) renderCompact(table *tview.Table, view tableview.View[T], theme Theme, focused bool) {
	const rowsPerItem = 2

	for r, rec := range view.Rows {
		id := view.Identities[r]
		selected := p.engine.IsSelected(id)
		underCursor := focused && r == p.cursor

		bg := theme.SurfaceColor()
		if underCursor {
			bg = theme.SelectionBackground()
		}

		marker := " "
		markerColor := hexToColor(theme.Text.Faint)
		if selected {
			marker = "✓"
			markerColor = hexToColor(theme.Text.Accent)
		} else if underCursor {
			marker = "›"
		}

		base := r * rowsPerItem
		table.SetCell(base, 0, tview.NewTableCell(marker).
			SetTextColor(markerColor).
			SetBackgroundColor(bg))
		table.SetCell(base+1, 0, tview.NewTableCell(" ").
			SetBackgroundColor(bg))

		for c, col := range view.Columns {
			cell := tview.NewTableCell(" " + tview.Escape(col.Value(rec)) + " ").
				SetTextColor(cellColor(col, rec, theme)).
				SetBackgroundColor(bg)
			if c == 0 {
				cell.SetAttributes(tcell.AttrBold)
			}
			table.SetCell(base, c+1, cell)
		}
		table.SetCell(base+1, 1, tview.NewTableCell(" "+tview.Escape(id)+" ").
			SetTextColor(hexToColor(theme.Text.Faint)).
			SetBackgroundColor(bg))
	}
}

func cellColor[T any](col tableview.Column[T], rec T, theme Theme) tcell.Color {
	switch col.Renderer {
	case renderStatus:
		return hexToColor(theme.StatusColor(col.Value(rec)))
	case renderDate:
		return hexToColor(theme.Text.Muted)
	case renderNumber:
		return hexToColor(theme.Text.Primary)
	default:
		return hexToColor(theme.Text.Primary)
	}
}

// statusTag renders a status value as a colored tview tag for detail text.
func statusTag(theme Theme, status string) string {
	return fmt.Sprintf("[%s::b]%s[-]", theme.StatusColor(status), tview.Escape(titleCase(status)))
}
