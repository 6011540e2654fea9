package launchpad

import (
	"strconv"
	"strings"
)

// Placeholder shown for missing metrics.
const Placeholder = "—"

// FormatStatus renders a status for badges: underscores become spaces and
// an empty status reads "unknown".
func FormatStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return StatusUnknown
	}
	return strings.ReplaceAll(status, "_", " ")
}

// StatusClass returns the badge colour classes for a status.
func StatusClass(status string) string {
	switch status {
	case StatusApproved:
		return "bg-emerald-500/15 text-emerald-300"
	case StatusLive:
		return "bg-sky-500/15 text-sky-300"
	case StatusCompleted:
		return "bg-purple-500/15 text-purple-300"
	case StatusPendingReview:
		return "bg-amber-500/15 text-amber-300"
	case StatusRejected:
		return "bg-rose-500/15 text-rose-300"
	default:
		return "bg-slate-700 text-slate-200"
	}
}

// ClampProgress bounds a funding percentage to [0, 100].
func ClampProgress(percent float64) float64 {
	return min(max(percent, 0), 100)
}

// ProgressLabel renders "N% funded" with the unclamped value.
func ProgressLabel(percent float64) string {
	return FormatPercent(percent) + "% funded"
}

// FormatPercent prints a percentage without trailing zeros.
func FormatPercent(percent float64) string {
	return strconv.FormatFloat(percent, 'f', -1, 64)
}

// SafeExternalURL turns a backend-supplied link into an absolute http(s)
// URL. Empty input becomes "#".
func SafeExternalURL(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "#"
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

// OrPlaceholder returns value, or the dash placeholder when it is blank.
func OrPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	return value
}
