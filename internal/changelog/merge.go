package changelog

import "strings"

// Merge inserts a rendered section into an existing changelog document so
// the document stays newest-first. The section goes immediately after the
// leading title/preamble block (everything before the first "## " line);
// all existing bytes after the insertion point are preserved verbatim.
//
// Merge does not deduplicate by version: merging the same section twice
// produces two copies. Calling it once per version is the caller's job.
func Merge(existing, section string) string {
	sec := strings.TrimRight(section, "\n") + "\n\n"

	if strings.TrimSpace(existing) == "" {
		return sec
	}

	if idx := firstSectionOffset(existing); idx >= 0 {
		return existing[:idx] + sec + existing[idx:]
	}

	// No version sections yet: the whole document is preamble.
	if !strings.HasSuffix(existing, "\n") {
		existing += "\n"
	}
	return existing + "\n" + sec
}

// firstSectionOffset returns the byte offset of the first line starting a
// version section ("## "), or -1 when the document has none.
func firstSectionOffset(doc string) int {
	offset := 0
	for {
		line := doc[offset:]
		if end := strings.IndexByte(line, '\n'); end >= 0 {
			line = line[:end]
		}
		if strings.HasPrefix(line, "## ") {
			return offset
		}

		next := strings.IndexByte(doc[offset:], '\n')
		if next < 0 {
			return -1
		}
		offset += next + 1
		if offset >= len(doc) {
			return -1
		}
	}
}
