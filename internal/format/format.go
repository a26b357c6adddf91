package format

import "strings"

// Marker patterns removed from comment lines, applied in this order.
// Each pattern is removed at its first occurrence only, so stripping is
// idempotent on already-stripped text.
var markerPatterns = []string{"// ", "//", "/* ", "/*", " * ", " *"}

const codeBlockDirective = ".. code-block:: cpp"

// StripMarkers removes comment marker text from a single line.
func StripMarkers(line string) string {
	for _, pattern := range markerPatterns {
		line = strings.Replace(line, pattern, "", 1)
	}
	return line
}

// Render converts one declaration's raw comment lines into the rst body
// placed beneath its directive: markers stripped, embedded lists and
// verbatim code runs delimited, every line indented by two spaces.
func Render(lines []string) string {
	stripped := make([]string, len(lines))
	for i, line := range lines {
		stripped[i] = StripMarkers(line)
	}

	processed := detectBlocks(stripped)

	var sb strings.Builder
	for i, line := range processed {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  ")
		sb.WriteString(line)
	}
	return sb.String()
}

// builder accumulates processed lines and supports inserting separator or
// delimiter lines just before the most recently pushed line.
type builder struct {
	lines []string
}

func (b *builder) push(line string) {
	b.lines = append(b.lines, line)
}

func (b *builder) insertBeforeLast(line string) {
	last := b.lines[len(b.lines)-1]
	b.lines[len(b.lines)-1] = line
	b.lines = append(b.lines, last)
}

// prevNonBlank reports whether the line pushed before the current one
// exists and is non-blank.
func (b *builder) prevNonBlank() bool {
	return len(b.lines) > 1 && b.lines[len(b.lines)-2] != ""
}

// detectBlocks runs the single forward pass over stripped comment lines,
// separating list runs and verbatim code runs from surrounding prose.
// List detection takes priority over code-block detection for each line;
// blocks left open at end of input are not closed retroactively.
func detectBlocks(lines []string) []string {
	inList := false
	inCode := false
	b := &builder{lines: make([]string, 0, len(lines))}

	for _, line := range lines {
		b.push(line)

		if inList {
			if continuesList(line) {
				continue
			}
			inList = false
			b.insertBeforeLast("")
		}
		if startsList(line) {
			inList = true
			if b.prevNonBlank() {
				b.insertBeforeLast("")
			}
			continue
		}

		if inCode {
			if !continuesCode(line) {
				inCode = false
				b.insertBeforeLast("")
			}
		} else if startsCode(line, b.lines) {
			inCode = true
			if b.prevNonBlank() {
				b.insertBeforeLast("")
			}
			b.insertBeforeLast(codeBlockDirective)
			b.insertBeforeLast("")
		}

		if inCode && !strings.HasPrefix(line, "  ") {
			b.lines[len(b.lines)-1] = "  " + b.lines[len(b.lines)-1]
		}
	}

	return b.lines
}

func startsList(line string) bool {
	for _, marker := range []string{" -", "-", " 1.", "1.", " (1)", "(1)"} {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// continuesList keeps a list open for indented continuations, blank-ish
// lines, further numbered items, and further bullet items.
func continuesList(line string) bool {
	if strings.HasPrefix(line, " ") || len(line) <= 1 {
		return true
	}
	head := line
	if len(head) > 5 {
		head = head[:5]
	}
	if strings.Contains(head, ". ") || strings.Contains(head, ") ") {
		return true
	}
	return startsList(line)
}

func continuesCode(line string) bool {
	return strings.HasPrefix(line, " ") || line == "" || strings.HasSuffix(line, ";")
}

// startsCode applies the code-block start heuristics: a 2-space indent, a
// statement line two positions after a line ending in a colon, or a
// 1-space indent ending in a semicolon. The current line is the last
// entry of processed.
func startsCode(line string, processed []string) bool {
	if strings.HasPrefix(line, "  ") {
		return true
	}
	if !strings.HasSuffix(line, ";") {
		return false
	}
	if n := len(processed); n >= 3 && strings.HasSuffix(processed[n-3], ":") {
		return true
	}
	return strings.HasPrefix(line, " ")
}
