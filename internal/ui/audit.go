package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/audit"
	"github.com/bastionhq/certview/internal/state"
	"github.com/bastionhq/certview/internal/tableview"
)

func newAuditPane(pageSize int, notify func(string)) (*resourcePane[audit.Entry], error) {
	cfg := tableview.Config[audit.Entry]{
		Columns: []tableview.Column[audit.Entry]{
			{Key: "time", Title: "Time", Sortable: true, Sort: tableview.SortDate, Priority: 1, Renderer: renderDate,
				Value: func(e audit.Entry) string { return e.Time }},
			{Key: "action", Title: "Action", Sortable: true, Sort: tableview.SortString, Priority: 1, Renderer: renderStatus,
				Value: func(e audit.Entry) string { return e.Action }},
			{Key: "subject", Title: "Subject", Sortable: true, Sort: tableview.SortString, Priority: 2,
				Value: func(e audit.Entry) string { return e.Subject }},
			{Key: "actor", Title: "Actor", Sortable: true, Sort: tableview.SortString, Priority: 3,
				Value: func(e audit.Entry) string { return e.Actor }},
			{Key: "detail", Title: "Detail", Priority: 4,
				Value: func(e audit.Entry) string { return e.Detail }},
		},
		SearchKeys: []string{"subject", "actor", "detail"},
		Filters: map[string]tableview.Predicate[audit.Entry]{
			"action": fieldEquals(func(e audit.Entry) string { return e.Action }),
		},
		Identity:    func(e audit.Entry) string { return idString(e.Seq) },
		InitialSort: tableview.SortSpec{Key: "time", Direction: tableview.Descending},
		PageSize:    pageSize,
		Selection:   tableview.SelectionNone,
		Callbacks:   paneCallbacks("audit", notify),
	}

	p, err := newResourcePane("Audit", cfg, func(res state.Resources) []audit.Entry {
		return res.AuditTrail
	})
	if err != nil {
		return nil, err
	}
	p.filters = []filterOption{
		{Label: "All"},
		{Key: "action", Value: "issue", Label: "Issued"},
		{Key: "action", Value: "revoke", Label: "Revocations"},
		{Key: "action", Value: "approve", Label: "Approvals"},
		{Key: "action", Value: "deny", Label: "Denials"},
	}
	p.wideKeys = []string{"detail"}
	p.detail = auditDetail
	return p, nil
}

func auditDetail(e audit.Entry, theme Theme) string {
	text := theme.Text
	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]%s[-]  %s\n\n", text.Primary, tview.Escape(orDash(e.Subject)), statusTag(theme, e.Action))
	fmt.Fprintf(&b, "[%s]Time:[-]  [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(e.Time)))
	fmt.Fprintf(&b, "[%s]Actor:[-] [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(e.Actor)))
	if e.Detail != "" {
		fmt.Fprintf(&b, "\n[%s]Detail:[-]\n  [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(e.Detail))
	}
	return b.String()
}
