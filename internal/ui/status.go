package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/state"
)

// renderHeader draws the daemon status line: connectivity, version, resource
// counts, authority health, and the age of the last refresh.
func (vm *viewModel) renderHeader(snapshot state.Snapshot) {
	text := vm.theme.Text
	logo := tview.TranslateANSI(vm.theme.LogoStyle().Render(" BASTION "))

	if !snapshot.HasStatus {
		if snapshot.LastError != nil {
			errorMsg := "Connection failed"
			errStr := snapshot.LastError.Error()
			if strings.Contains(errStr, "connection refused") {
				errorMsg = "Daemon not running"
			} else if strings.Contains(errStr, "timeout") {
				errorMsg = "Connection timeout"
			} else if strings.Contains(errStr, "no such host") {
				errorMsg = "Host not found"
			}
			retry := "soon"
			if !snapshot.LastUpdated.IsZero() {
				retry = snapshot.LastUpdated.Format("15:04:05")
			}
			vm.header.SetText(fmt.Sprintf("%s [%s::b]%s[-]  [%s::b]Retrying...[-]  [%s]last attempt %s[-]",
				logo, text.Danger, errorMsg, text.Warning, text.Muted, retry))
			return
		}
		vm.header.SetText(fmt.Sprintf("%s [%s::b]Connecting to Bastion...[-]", logo, text.Warning))
		return
	}

	daemonStatus := fmt.Sprintf("[%s::b]● OFF[-]", text.Danger)
	if snapshot.Status.Running {
		daemonStatus = fmt.Sprintf("[%s::b]● ON[-]", text.Success)
	}

	parts := []string{logo, daemonStatus}
	if snapshot.Status.Version != "" {
		parts = append(parts, fmt.Sprintf("[%s]v%s[-]", text.Faint, tview.Escape(snapshot.Status.Version)))
	}

	stats := snapshot.Status.ResourceStats
	parts = append(parts, fmt.Sprintf("[%s]Certs:[-] [%s]%d[-]", text.Muted, text.Primary, stats["certificates"]))
	if expiring := stats["expiring"]; expiring > 0 {
		parts = append(parts, fmt.Sprintf("[%s]Expiring:[-] [%s]%d[-]", text.Muted, text.Warning, expiring))
	}
	if pending := stats["pendingApprovals"]; pending > 0 {
		parts = append(parts, fmt.Sprintf("[%s]Approvals:[-] [%s]%d[-]", text.Muted, text.Warning, pending))
	}

	var unready []string
	for _, check := range snapshot.Status.Authorities {
		if !check.Ready {
			label := check.Name
			if check.Detail != "" {
				label += ": " + check.Detail
			}
			unready = append(unready, label)
		}
	}
	if len(unready) > 0 {
		detail := unready[0]
		if len(unready) > 1 {
			detail = fmt.Sprintf("%s +%d more", detail, len(unready)-1)
		}
		parts = append(parts, fmt.Sprintf("[%s::b]CA HEALTH[-] [%s]%s[-]", text.Danger, text.Danger, tview.Escape(truncate(detail, 60))))
	}

	if snapshot.Status.LastError != "" {
		parts = append(parts, fmt.Sprintf("[%s::b]ERROR[-] [%s]%s[-]", text.Danger, text.Danger, tview.Escape(truncate(snapshot.Status.LastError, 60))))
	}

	parts = append(parts, fmt.Sprintf("[%s]%s[-]", text.Muted, refreshAge(snapshot.LastUpdated)))
	if snapshot.IsOffline() {
		parts = append(parts, fmt.Sprintf("[%s::b]STALE[-]", text.Warning))
	}

	vm.header.SetText(strings.Join(parts, "  "))
}

// refreshAge formats the last refresh time with a relative suffix.
func refreshAge(last time.Time) string {
	if last.IsZero() {
		return "never refreshed"
	}
	out := last.Format("15:04:05")
	since := time.Since(last)
	switch {
	case since < time.Minute:
		out += " (now)"
	case since < time.Hour:
		out += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	case since < 24*time.Hour:
		out += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}
	return out
}
