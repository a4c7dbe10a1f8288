package crawl

import "fmt"

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatProgress renders a progress event as a single status line.
func FormatProgress(e ProgressEvent) string {
	switch e.Type {
	case ProgressStarted:
		return fmt.Sprintf("Syncing %d categories", e.Total)
	case ProgressCompleted:
		return fmt.Sprintf("[%d/%d] %s%s", e.Completed, e.Total, e.Category, progressURL(e.URL))
	case ProgressFailed:
		return fmt.Sprintf("[%d/%d] %s%s failed: %v", e.Completed, e.Total, e.Category, progressURL(e.URL), e.Error)
	case ProgressFinished:
		return fmt.Sprintf("Synced %d categories", e.Total)
	default:
		return ""
	}
}

// progressURLWidth bounds the URL shown in a progress line.
const progressURLWidth = 60

func progressURL(url string) string {
	if url == "" {
		return ""
	}
	return " (" + TruncateURL(url, progressURLWidth) + ")"
}

// FormatSummary renders the outcome of a sync.
func FormatSummary(r *SyncResult) string {
	s := fmt.Sprintf("%d categories, %d titles (~%d unique, ~%d duplicates)", len(r.Catalogue), r.Titles, r.Unique, r.Duplicates)
	if len(r.Failed) > 0 {
		s += fmt.Sprintf(", %d failed", len(r.Failed))
	}
	return s
}
