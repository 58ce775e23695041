package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

var useColor = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorDim    = "\033[2m"
)

func colored(color, s string) string {
	if !useColor {
		return s
	}
	return color + s + colorReset
}

func statusLabel(s models.TaskStatus) string {
	switch s {
	case models.StatusCompleted:
		return colored(colorGreen, string(s))
	case models.StatusInProgress, models.StatusTaken:
		return colored(colorYellow, string(s))
	case models.StatusCancelled, models.StatusRejected:
		return colored(colorRed, string(s))
	case models.StatusArchived:
		return colored(colorDim, string(s))
	}
	return string(s)
}

func relativeTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return humanize.Time(*t)
}

func newTable(headers ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	return w
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
