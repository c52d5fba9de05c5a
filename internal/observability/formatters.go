// Package observability provides logging, metrics and formatted output utilities for the CLI and server.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPersonalInfo outputs the contact header and summary.
func (p *Printer) PrintPersonalInfo(info types.PersonalInfo) {
	var sb strings.Builder

	name := info.FullName()
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if info.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", info.Title))
	}
	if info.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", info.Email))
	}
	if info.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", info.Phone))
	}
	if info.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", info.Location))
	}

	if len(info.Links) > 0 {
		sb.WriteString("\nLinks:\n")
		for _, l := range info.Links {
			sb.WriteString(fmt.Sprintf("  • %s  %s\n", l.Label, l.URL))
		}
	}

	if info.Summary != "" {
		sb.WriteString("\nSummary:\n")
		sb.WriteString("  " + truncate(info.Summary, 120) + "\n")
	}

	p.printBox("PERSONAL INFO", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs every section with its id, type and first few items.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSections(sections []types.Section) {
	if len(sections) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO SECTIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	for _, s := range sections {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("id: %s  type: %s\n", s.ID, s.Type))

		if len(s.Items) == 0 {
			sb.WriteString("  (no items)\n")
		}
		count := min(len(s.Items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s  [%s]\n", ItemLabel(s.Items[i]), s.Items[i].ItemID()))
		}
		if len(s.Items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(s.Items)-maxItemsToShow))
		}

		p.printBox(strings.ToUpper(s.Title), strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintTemplates outputs the template catalog, marking the selected entry.
func (p *Printer) PrintTemplates(templates []types.Template, selectedID string) {
	var sb strings.Builder
	for i, t := range templates {
		marker := " "
		if t.ID == selectedID {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %-13s %s\n", marker, t.ID, t.Name))
		sb.WriteString(fmt.Sprintf("  %s", t.Description))
		if i < len(templates)-1 {
			sb.WriteString("\n\n")
		}
	}
	p.printBox("TEMPLATES", sb.String())
}

// PrintValidation outputs the result of validating a resume document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(problems []string) {
	if len(problems) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RESUME IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(problems)))
	for i, problem := range problems {
		sb.WriteString(fmt.Sprintf("⚠ %s", problem))
		if i < len(problems)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("VALIDATION FAILED", sb.String())
}

// ItemLabel is a one-line human description of an item
func ItemLabel(item types.SectionItem) string {
	var label string
	switch it := item.(type) {
	case *types.ExperienceItem:
		label = joinNonEmpty(" at ", it.Position, it.Company)
	case *types.EducationItem:
		label = joinNonEmpty(", ", it.Degree, it.School)
	case *types.SkillItem:
		label = it.Name
		if it.Level > 0 {
			label = fmt.Sprintf("%s (%d/5)", it.Name, it.Level)
		}
	case *types.ProjectItem:
		label = it.Name
	case *types.CustomItem:
		label = it.Title
		if label == "" {
			label = truncate(it.Content, 40)
		}
	}
	if strings.TrimSpace(label) == "" {
		return "(blank)"
	}
	return label
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
