package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/bastion"
	"github.com/bastionhq/certview/internal/state"
	"github.com/bastionhq/certview/internal/tableview"
)

func newApprovalsPane(pageSize int, notify func(string)) (*resourcePane[bastion.Approval], error) {
	cfg := tableview.Config[bastion.Approval]{
		Columns: []tableview.Column[bastion.Approval]{
			{Key: "subject", Title: "Subject", Sortable: true, Sort: tableview.SortString, Priority: 1,
				Value: func(a bastion.Approval) string { return a.Subject }},
			{Key: "status", Title: "Status", Sortable: true, Sort: tableview.SortString, Priority: 1, Renderer: renderStatus,
				Value: func(a bastion.Approval) string { return a.Status }},
			{Key: "kind", Title: "Kind", Sortable: true, Sort: tableview.SortString, Priority: 2,
				Value: func(a bastion.Approval) string { return a.Kind }},
			{Key: "requester", Title: "Requested By", Sortable: true, Sort: tableview.SortString, Priority: 2,
				Value: func(a bastion.Approval) string { return a.RequestedBy }},
			{Key: "requested", Title: "Requested", Sortable: true, Sort: tableview.SortDate, Priority: 3, Renderer: renderDate,
				Value: func(a bastion.Approval) string { return a.RequestedAt }},
			{Key: "reason", Title: "Reason", Priority: 4,
				Value: func(a bastion.Approval) string { return a.Reason }},
		},
		SearchKeys: []string{"subject", "requester", "reason"},
		Filters: map[string]tableview.Predicate[bastion.Approval]{
			"status": fieldEquals(func(a bastion.Approval) string { return a.Status }),
			"kind":   fieldEquals(func(a bastion.Approval) string { return a.Kind }),
		},
		Identity:    func(a bastion.Approval) string { return idString(a.ID) },
		InitialSort: tableview.SortSpec{Key: "requested", Direction: tableview.Descending},
		PageSize:    pageSize,
		Selection:   tableview.SelectionMulti,
		Callbacks:   paneCallbacks("approvals", notify),
	}

	p, err := newResourcePane("Approvals", cfg, func(res state.Resources) []bastion.Approval {
		return res.Approvals
	})
	if err != nil {
		return nil, err
	}
	p.filters = []filterOption{
		{Label: "All"},
		{Key: "status", Value: "pending", Label: "Pending"},
		{Key: "status", Value: "approved", Label: "Approved"},
		{Key: "status", Value: "denied", Label: "Denied"},
		{Key: "kind", Value: "revoke", Label: "Revocations"},
	}
	p.wideKeys = []string{"reason"}
	p.detail = approvalDetail
	p.actions = func(a bastion.Approval) []rowAction {
		if !strings.EqualFold(a.Status, "pending") {
			return nil
		}
		return []rowAction{
			{
				Label:   "Approve",
				Confirm: fmt.Sprintf("Approve %s request for %s?", a.Kind, a.Subject),
				Run: func(ctx context.Context, client *bastion.Client) error {
					return client.ResolveApproval(ctx, a.ID, "approve")
				},
			},
			{
				Label:   "Deny",
				Confirm: fmt.Sprintf("Deny %s request for %s?", a.Kind, a.Subject),
				Run: func(ctx context.Context, client *bastion.Client) error {
					return client.ResolveApproval(ctx, a.ID, "deny")
				},
			},
		}
	}
	return p, nil
}

func approvalDetail(a bastion.Approval, theme Theme) string {
	text := theme.Text
	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]%s[-]  %s\n\n", text.Primary, tview.Escape(a.Subject), statusTag(theme, a.Status))
	fmt.Fprintf(&b, "[%s]Kind:[-]         [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(titleCase(a.Kind)))
	fmt.Fprintf(&b, "[%s]Requested by:[-] [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(a.RequestedBy)))
	fmt.Fprintf(&b, "[%s]Requested at:[-] [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(orDash(a.RequestedAt)))
	if a.Reason != "" {
		fmt.Fprintf(&b, "\n[%s]Reason:[-]\n  [%s]%s[-]\n", text.Muted, text.Primary, tview.Escape(a.Reason))
	}
	return b.String()
}
