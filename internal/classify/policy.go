package classify

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/ariel-frischer/changelogger/internal/commit"
	apperrors "github.com/ariel-frischer/changelogger/internal/errors"
)

// Policy resolves the category of a commit the prefix table could not
// classify. Implementations may block (interactive prompt) or answer
// immediately (defaults, rule tables).
type Policy interface {
	Resolve(c commit.Parsed) (Category, error)
}

// NonInteractivePolicy resolves every unknown commit to Patch. Used with
// --non-interactive and in CI.
type NonInteractivePolicy struct{}

// Resolve implements Policy.
func (NonInteractivePolicy) Resolve(commit.Parsed) (Category, error) {
	return Patch, nil
}

// RulesPolicy resolves commits through a user-supplied token table before
// delegating to a fallback policy. The table comes from the "rules" section
// of the project config and extends the built-in prefix table.
type RulesPolicy struct {
	Rules    map[string]Category
	Fallback Policy
}

// Resolve implements Policy.
func (p RulesPolicy) Resolve(c commit.Parsed) (Category, error) {
	if cat, ok := p.Rules[strings.ToLower(strings.TrimSpace(c.Type))]; ok {
		return cat, nil
	}
	if p.Fallback == nil {
		return Patch, nil
	}
	return p.Fallback.Resolve(c)
}

// promptChoices are the selectable categories, in prompt order. The first
// entry is the default for an empty answer.
var promptChoices = []Category{Patch, Minor, Major, Ignored}

// InteractivePolicy prompts the operator for each unresolved commit, one at
// a time, showing the short hash and subject. Prompts stay sequential so
// classification order remains deterministic.
type InteractivePolicy struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// NewInteractivePolicy creates a policy prompting on the given streams,
// typically os.Stdin and os.Stdout.
func NewInteractivePolicy(in io.Reader, out io.Writer) *InteractivePolicy {
	return &InteractivePolicy{In: in, Out: out}
}

// Resolve implements Policy. An empty answer selects patch; "q" or end of
// input aborts the run via errors.ErrAborted.
func (p *InteractivePolicy) Resolve(c commit.Parsed) (Category, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}

	hash := color.New(color.FgYellow).SprintFunc()
	subject := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(p.Out, "\n%s %s %s\n", subject("Commit"), hash(c.ShortHash), subject(displaySubject(c)))

	for {
		fmt.Fprintf(p.Out, "Select type [%s]: ", choiceList())

		line, err := p.reader.ReadString('\n')
		if err != nil && line == "" {
			return Unknown, fmt.Errorf("reading classification choice: %w", apperrors.ErrAborted)
		}

		cat, ok, abort := parseChoice(line)
		if abort {
			return Unknown, apperrors.ErrAborted
		}
		if ok {
			return cat, nil
		}

		fmt.Fprintf(p.Out, "Invalid choice %q, enter a number 1-%d, a category name, or q to abort.\n",
			strings.TrimSpace(line), len(promptChoices))
	}
}

// choiceList renders "1=patch 2=minor 3=major 4=ignore".
func choiceList() string {
	parts := make([]string, len(promptChoices))
	for i, c := range promptChoices {
		parts[i] = fmt.Sprintf("%d=%s", i+1, c)
	}
	return strings.Join(parts, " ")
}

// parseChoice interprets one answer line. Empty selects the default (patch).
func parseChoice(line string) (cat Category, ok bool, abort bool) {
	answer := strings.ToLower(strings.TrimSpace(line))
	switch answer {
	case "":
		return promptChoices[0], true, false
	case "q", "quit", "abort":
		return Unknown, false, true
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(promptChoices) {
			return promptChoices[n-1], true, false
		}
		return Unknown, false, false
	}

	if parsed, err := ParseCategory(answer); err == nil {
		return parsed, true, false
	}
	return Unknown, false, false
}

// displaySubject restores the conventional prefix for the prompt so the
// operator sees the subject as it appears in git log.
func displaySubject(c commit.Parsed) string {
	if c.Type == "" {
		return c.Subject
	}
	if c.Scope != "" {
		return fmt.Sprintf("%s(%s): %s", c.Type, c.Scope, c.Subject)
	}
	return fmt.Sprintf("%s: %s", c.Type, c.Subject)
}
