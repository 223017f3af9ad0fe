package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ariel-frischer/changelogger/internal/changelog"
)

// changelogFooter is appended once, when the document is first created.
const changelogFooter = "--- Generated by changelogger\n"

// readChangelog returns the current changelog content. A missing file is
// empty content, not an error.
func readChangelog(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// writeChangelog merges the rendered section into the target file. The whole
// merged document is written in a single atomic operation; a new document
// gets the configured title and the generator footer.
func writeChangelog(path, section, title string) error {
	existing, err := readChangelog(path)
	if err != nil {
		return err
	}

	content := changelog.Merge(existing, section)
	if strings.TrimSpace(existing) == "" {
		if title != "" {
			content = title + "\n\n" + content
		}
		content += changelogFooter
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
