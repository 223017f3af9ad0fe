package classify

import (
	"github.com/ariel-frischer/changelogger/internal/commit"
	"github.com/ariel-frischer/changelogger/internal/semver"
)

// Classified pairs a parsed commit with its resolved category.
type Classified struct {
	Commit   commit.Parsed
	Category Category
}

// Classify assigns a category to a parsed commit. Recognized type tokens
// resolve through the static prefix table; anything else consults the policy
// exactly once. The input order of commits is the caller's to preserve.
func Classify(parsed commit.Parsed, policy Policy) (Classified, error) {
	cat := Lookup(parsed.Type)
	if cat == Unknown {
		resolved, err := policy.Resolve(parsed)
		if err != nil {
			return Classified{}, err
		}
		cat = resolved
	}
	return Classified{Commit: parsed, Category: cat}, nil
}

// ClassifyAll classifies commits in order, stopping at the first policy
// error so an aborted prompt never yields a partial result.
func ClassifyAll(commits []commit.Parsed, policy Policy) ([]Classified, error) {
	classified := make([]Classified, 0, len(commits))
	for _, c := range commits {
		cc, err := Classify(c, policy)
		if err != nil {
			return nil, err
		}
		classified = append(classified, cc)
	}
	return classified, nil
}

// HasReleasable reports whether any commit was classified Major, Minor or
// Patch. When false, there is nothing to put into a changelog.
func HasReleasable(commits []Classified) bool {
	for _, c := range commits {
		switch c.Category {
		case Major, Minor, Patch:
			return true
		case Ignored, Unknown:
		}
	}
	return false
}

// NextVersion computes the version after prev given the classified commits
// of a run. Precedence is strict: any Major bumps the major component, else
// any Minor bumps minor, else any Patch bumps patch, else prev is returned
// unchanged.
func NextVersion(prev semver.Version, commits []Classified) semver.Version {
	var hasMajor, hasMinor, hasPatch bool
	for _, c := range commits {
		switch c.Category {
		case Major:
			hasMajor = true
		case Minor:
			hasMinor = true
		case Patch:
			hasPatch = true
		case Ignored, Unknown:
		}
	}

	switch {
	case hasMajor:
		return prev.BumpMajor()
	case hasMinor:
		return prev.BumpMinor()
	case hasPatch:
		return prev.BumpPatch()
	default:
		return prev
	}
}
