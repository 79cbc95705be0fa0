package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteText writes the report as the five demonstration lines. The author is
// named by the first word of their name.
func (r *Report) WriteText(w io.Writer) error {
	popular := r.MostPopular
	if popular == "" {
		popular = "None"
	}
	lines := []string{
		fmt.Sprintf("Articles by %s: %s", firstName(r.Author), quoteList(r.AuthorArticles)),
		fmt.Sprintf("Contributors to %s: %s", r.Magazine, quoteList(r.Contributors)),
		fmt.Sprintf("Titles in %s: %s", r.Magazine, quoteList(r.Titles)),
		fmt.Sprintf("Frequent authors in %s: %s", r.Magazine, quoteList(r.FrequentAuthors)),
		fmt.Sprintf("Most popular magazine: %s", popular),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}

// quoteList renders items the way Python prints a list of strings:
// ['a', 'b'], switching to double quotes for items containing ' but no ".
func quoteList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, it := range items {
		quoted = append(quoted, quoteItem(it))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func quoteItem(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
