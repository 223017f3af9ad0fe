package changelog

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ariel-frischer/changelogger/internal/classify"
)

// Group headings, in fixed rendering order.
const (
	headingBreaking = "Breaking changes"
	headingFeatures = "New features"
	headingFixes    = "Bug fixes"
)

// Render writes the markdown section for one release. When no renderable
// commits remain after dropping Ignored ones, nothing is written unless the
// version was explicitly forced; the caller detects the empty output and
// skips the run.
func Render(s Section, w io.Writer) error {
	groups := groupCommits(s.Commits)
	if groups.empty() && !s.Forced {
		return nil
	}

	if err := renderHeader(s, w); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	sections := []struct {
		heading string
		commits []classify.Classified
	}{
		{headingBreaking, groups.major},
		{headingFeatures, groups.minor},
		{headingFixes, groups.patch},
	}
	for _, sec := range sections {
		if len(sec.commits) == 0 {
			continue
		}
		if err := renderGroup(sec.heading, sec.commits, s.Remote, w); err != nil {
			return fmt.Errorf("rendering %s: %w", sec.heading, err)
		}
	}

	if err := renderTrailer(s, w); err != nil {
		return fmt.Errorf("rendering trailer: %w", err)
	}
	return nil
}

// RenderString is a convenience wrapper rendering to a string. An empty
// result means the run produced nothing worth a section.
func RenderString(s Section) (string, error) {
	var b strings.Builder
	if err := Render(s, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// groups holds the per-category ordered commit lists. Order within each list
// is the input order; a map keyed by category would not guarantee that the
// groups render their commits chronologically.
type groups struct {
	major []classify.Classified
	minor []classify.Classified
	patch []classify.Classified
}

func (g groups) empty() bool {
	return len(g.major) == 0 && len(g.minor) == 0 && len(g.patch) == 0
}

// groupCommits splits classified commits into the three rendered groups,
// preserving input order. Ignored commits are dropped; a commit still
// Unknown at this point folds into the patch group.
func groupCommits(commits []classify.Classified) groups {
	var g groups
	for _, c := range commits {
		switch c.Category {
		case classify.Major:
			g.major = append(g.major, c)
		case classify.Minor:
			g.minor = append(g.minor, c)
		case classify.Patch, classify.Unknown:
			g.patch = append(g.patch, c)
		case classify.Ignored:
		}
	}
	return g
}

// renderHeader writes the version heading with an optional release-tag link.
func renderHeader(s Section, w io.Writer) error {
	date := s.Date.Format("2006-01-02")
	if s.Remote != nil {
		_, err := fmt.Fprintf(w, "## [Version %s](%s) (%s)\n",
			s.Version, s.Remote.ReleaseTagURL(s.Version.Tag()), date)
		return err
	}
	_, err := fmt.Fprintf(w, "## Version %s (%s)\n", s.Version, date)
	return err
}

// renderGroup writes one category heading and its commit bullets.
func renderGroup(heading string, commits []classify.Classified, remote *RemoteInfo, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n### %s\n", heading); err != nil {
		return err
	}
	for _, c := range commits {
		if _, err := io.WriteString(w, commitLine(c, remote)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

var (
	squashedRefPattern = regexp.MustCompile(`\s*\(#\d+\)`)
	trailingRefPattern = regexp.MustCompile(`\s+#\d+$`)
)

// commitLine formats one commit bullet: cleaned title, short-hash reference
// and one reference per issue number, duplicates included, in subject order.
func commitLine(c classify.Classified, remote *RemoteInfo) string {
	var b strings.Builder
	b.WriteString("* ")
	b.WriteString(cleanTitle(c.Commit.Subject))
	b.WriteString(":")

	if remote != nil {
		fmt.Fprintf(&b, " [`%s`](%s)", c.Commit.ShortHash, remote.CommitURL(c.Commit.ShortHash))
	} else {
		fmt.Fprintf(&b, " `%s`", c.Commit.ShortHash)
	}

	for _, ref := range c.Commit.IssueRefs {
		if remote != nil {
			fmt.Fprintf(&b, " ([#%d](%s))", ref, remote.IssueURL(ref))
		} else {
			fmt.Fprintf(&b, " (#%d)", ref)
		}
	}

	b.WriteString("\n")
	return b.String()
}

// cleanTitle strips issue-reference text from a subject since every
// reference is re-emitted as a link after the hash.
func cleanTitle(subject string) string {
	title := squashedRefPattern.ReplaceAllString(subject, "")
	for {
		stripped := trailingRefPattern.ReplaceAllString(title, "")
		if stripped == title {
			return title
		}
		title = stripped
	}
}

// renderTrailer writes the compare link between the previous and new tags.
// Omitted without remote info or when there is no previous release.
func renderTrailer(s Section, w io.Writer) error {
	if s.Remote != nil && !s.Previous.IsZero() {
		_, err := fmt.Fprintf(w, "\n[...full changes](%s)\n",
			s.Remote.CompareURL(s.Previous.Tag(), s.Version.Tag()))
		return err
	}
	return nil
}
