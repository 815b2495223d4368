package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/pastemd/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func fileWord(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 of 12 files changed, 2 written, 1 fenced".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesChanged == 0 && stats.FilesErrored == 0 {
		return s.Success.Render("Nothing to change") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, fileWord(stats.FilesProcessed))) +
			"\n"
	}

	parts := []string{
		s.Changed.Render(fmt.Sprintf("%d of %d %s changed",
			stats.FilesChanged, stats.FilesProcessed, fileWord(stats.FilesProcessed))),
	}

	if stats.FilesWritten > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
	}
	if stats.FilesFenced > 0 {
		parts = append(parts, s.Fenced.Render(fmt.Sprintf("%d fenced", stats.FilesFenced)))
	}
	if stats.RulesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d rules skipped", stats.RulesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.SummaryTitle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth))
	b.WriteString("\n")

	b.WriteString("  Files checked:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")
	b.WriteString("  Files changed:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesChanged)) + "\n")

	if stats.FilesWritten > 0 {
		b.WriteString("  Files written:  " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}
	if stats.FilesFenced > 0 {
		b.WriteString("  Code pastes:    " +
			s.Fenced.Render(strconv.Itoa(stats.FilesFenced)) + "\n")
	}
	if stats.RulesSkipped > 0 {
		b.WriteString("  Rules skipped:  " +
			s.Warning.Render(strconv.Itoa(stats.RulesSkipped)) + "\n")
	}
	if stats.FilesErrored > 0 {
		b.WriteString("  Files failed:   " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	b.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		b.WriteString(s.Failure.Render("Completed with errors"))
	case stats.FilesChanged > 0:
		b.WriteString(s.Changed.Render("Content was reformatted"))
	default:
		b.WriteString(s.Success.Render("Already clean"))
	}
	b.WriteString("\n")

	return b.String()
}

// FormatFileLine formats the per-file status line printed in verbose runs.
func (s *Styles) FormatFileLine(outcome runner.FileOutcome) string {
	path := s.FilePath.Render(outcome.Path)

	switch {
	case outcome.Error != nil:
		return fmt.Sprintf("%s: %s\n", path, s.Failure.Render(outcome.Error.Error()))
	case outcome.Fenced:
		return fmt.Sprintf("%s: %s\n", path,
			s.Fenced.Render("fenced as "+outcome.Language))
	case outcome.Written:
		return fmt.Sprintf("%s: %s\n", path, s.Success.Render("rewritten"))
	case outcome.Changed:
		return fmt.Sprintf("%s: %s\n", path, s.Changed.Render("would change"))
	default:
		return fmt.Sprintf("%s: %s\n", path, s.Dim.Render("unchanged"))
	}
}
