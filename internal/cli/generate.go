package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelogger/internal/changelog"
	"github.com/ariel-frischer/changelogger/internal/classify"
	"github.com/ariel-frischer/changelogger/internal/commit"
	"github.com/ariel-frischer/changelogger/internal/config"
	apperrors "github.com/ariel-frischer/changelogger/internal/errors"
	"github.com/ariel-frischer/changelogger/internal/gitrepo"
	"github.com/ariel-frischer/changelogger/internal/output"
	"github.com/ariel-frischer/changelogger/internal/semver"
)

// runGenerate drives the pipeline: commits -> classification -> version ->
// rendered section -> merged changelog.
func runGenerate(cmd *cobra.Command) error {
	if debugFlag {
		enableDebugLogging()
	}

	cfg, err := config.Load(configFlag)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Configuration,
			"Check the syntax of .changelogger.yml")
	}

	// An unparseable version override fails before any classification work.
	forced, err := parseVersionOverride(newVersionFlag)
	if err != nil {
		return err
	}

	policy, err := buildPolicy(cfg, cmd)
	if err != nil {
		return err
	}

	repo, err := gitrepo.Open(repoFlag)
	if err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime,
			fmt.Sprintf("could not open git repository at %s", repoFlag))
	}
	output.Info(cmd.OutOrStdout(), "opened repository")

	previous, since, err := resolveStartingPoint(repo, cmd)
	if err != nil {
		return err
	}

	if forced != nil && !forced.GreaterThan(previous) {
		return apperrors.NewConfigError(
			fmt.Sprintf("new version %s must be greater than previous version %s", forced, previous))
	}

	commits, err := collectCommits(repo, since)
	if err != nil {
		return err
	}

	parsed := parseCommits(commits)

	classified, err := classify.ClassifyAll(parsed, policy)
	if err != nil {
		if apperrors.IsAborted(err) {
			return err
		}
		return apperrors.Wrap(err, apperrors.Classification)
	}

	if !classify.HasReleasable(classified) && forced == nil {
		return apperrors.NewRuntimeError(
			"no important commits found, nothing to put into changelog",
			"Use --new-version to force an empty release section")
	}

	next := classify.NextVersion(previous, classified)
	if forced != nil {
		next = *forced
	}
	output.VersionBump(cmd.OutOrStdout(), previous.String(), next.String())

	section := changelog.Section{
		Version:  next,
		Previous: previous,
		Date:     time.Now(),
		Commits:  classified,
		Forced:   forced != nil,
	}
	if remote, ok := repo.Remote(); ok {
		section.Remote = &remote
	}

	rendered, err := changelog.RenderString(section)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	if rendered == "" {
		output.Info(cmd.OutOrStdout(), "nothing to render, changelog left untouched")
		return nil
	}

	if dryRunFlag {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s", rendered)
		return nil
	}

	target := outputFlag
	if target == "" {
		target = cfg.Output
	}
	if err := writeChangelog(target, rendered, cfg.Title); err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}

	output.Success(cmd.OutOrStdout(), "updated %s", target)
	return nil
}

// parseVersionOverride validates --new-version. Nil means no override.
func parseVersionOverride(s string) (*semver.Version, error) {
	if s == "" {
		return nil, nil
	}
	v, err := semver.Parse(s)
	if err != nil {
		return nil, apperrors.NewConfigError(
			fmt.Sprintf("provided version %q is not valid semver: %v", s, err),
			"Pass --new-version as X.Y.Z, e.g. --new-version 1.4.0")
	}
	return &v, nil
}

// buildPolicy assembles the classification policy chain: config rules first,
// then the interactive prompt or the non-interactive patch default.
func buildPolicy(cfg *config.Configuration, cmd *cobra.Command) (classify.Policy, error) {
	var base classify.Policy
	if nonInteractiveFlag || cfg.NonInteractive {
		base = classify.NonInteractivePolicy{}
	} else {
		base = classify.NewInteractivePolicy(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	if len(cfg.Rules) == 0 {
		return base, nil
	}

	rules := make(map[string]classify.Category, len(cfg.Rules))
	for token, name := range cfg.Rules {
		cat, err := classify.ParseCategory(name)
		if err != nil {
			return nil, apperrors.NewConfigError(
				fmt.Sprintf("invalid rule for prefix %q: %v", token, err),
				"Valid categories are major, minor, patch and ignore")
		}
		rules[strings.ToLower(strings.TrimSpace(token))] = cat
	}
	return classify.RulesPolicy{Rules: rules, Fallback: base}, nil
}

// resolveStartingPoint determines the previous version and the commit to
// stop the history walk at. With no semver tag the full history is used and
// the previous version defaults to 0.0.0.
func resolveStartingPoint(repo *gitrepo.Repository, cmd *cobra.Command) (semver.Version, *plumbing.Hash, error) {
	if fromTagFlag != "" {
		tag, err := repo.ResolveTag(fromTagFlag)
		if err != nil {
			return semver.Version{}, nil, apperrors.WrapWithMessage(err, apperrors.Runtime,
				fmt.Sprintf("could not find tag %s", fromTagFlag))
		}
		return tag.Version, &tag.Hash, nil
	}

	tag, found, err := repo.LatestVersionTag()
	if err != nil {
		return semver.Version{}, nil, apperrors.Wrap(err, apperrors.Runtime)
	}
	if !found {
		output.Info(cmd.OutOrStdout(), "no semver git tags found, assuming previous version 0.0.0 and using full history")
		return semver.Version{}, nil, nil
	}

	output.Info(cmd.OutOrStdout(), "latest tag is %s (commit %s)", tag.Name, tag.Hash)
	return tag.Version, &tag.Hash, nil
}

// collectCommits walks the history with a spinner on interactive terminals.
func collectCommits(repo *gitrepo.Repository, since *plumbing.Hash) ([]commit.Raw, error) {
	var spin *spinner.Spinner
	if output.IsTerminal() {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		spin.Suffix = " walking commit history..."
		spin.Start()
	}

	commits, err := repo.CommitsSince(since)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Runtime)
	}
	if len(commits) == 0 {
		return nil, apperrors.NewRuntimeError("no commits found since starting point")
	}
	return commits, nil
}

// parseCommits parses raw commits in order, dropping release markers.
func parseCommits(raw []commit.Raw) []commit.Parsed {
	parsed := make([]commit.Parsed, 0, len(raw))
	for _, r := range raw {
		p, ok := commit.Parse(r)
		if !ok {
			continue
		}
		parsed = append(parsed, p)
	}
	return parsed
}
