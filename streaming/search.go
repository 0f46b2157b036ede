package streaming

import "strings"

// Match is one search hit.
type Match struct {
	// Line is the 1-based line number of the hit.
	Line int
	// Offset is the byte offset of the line's start within the file.
	Offset int64
	// Text is the full matching line.
	Text string
}

// Section is one marker-delimited region of the file.
type Section struct {
	// StartLine is the 1-based line number of the start marker.
	StartLine int
	// Content holds the lines between the markers, joined by newlines.
	// The marker lines themselves are excluded.
	Content string
}

// Search scans the file line by line and returns every line containing
// term. With ignoreCase the comparison is case-insensitive.
func (r *Reader) Search(term string, ignoreCase bool) ([]Match, error) {
	needle := term
	if ignoreCase {
		needle = strings.ToLower(term)
	}

	var matches []Match
	lineNo := 0
	var offset int64

	err := r.Lines(func(line string) error {
		lineNo++
		haystack := line
		if ignoreCase {
			haystack = strings.ToLower(line)
		}
		if strings.Contains(haystack, needle) {
			matches = append(matches, Match{
				Line:   lineNo,
				Offset: offset,
				Text:   line,
			})
		}
		offset += int64(len(line)) + 1 // account for the newline
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// ExtractSections returns the regions delimited by lines containing the
// start marker. A region ends at the first line containing the end marker;
// with an empty end marker it runs until the next start marker or the end
// of the file.
func (r *Reader) ExtractSections(start, end string) ([]Section, error) {
	var sections []Section
	var current *Section
	var lines []string
	lineNo := 0

	flush := func() {
		if current != nil {
			current.Content = strings.Join(lines, "\n")
			sections = append(sections, *current)
			current = nil
			lines = nil
		}
	}

	err := r.Lines(func(line string) error {
		lineNo++
		switch {
		case strings.Contains(line, start):
			flush()
			current = &Section{StartLine: lineNo}
		case current != nil && end != "" && strings.Contains(line, end):
			flush()
		case current != nil:
			lines = append(lines, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	flush()
	return sections, nil
}
