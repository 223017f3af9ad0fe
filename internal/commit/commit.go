// Package commit defines the commit data model and the conventional-commit
// subject parser. Parsing never fails: a subject that does not follow the
// type(scope): form simply produces a commit without a type token, which the
// classifier later resolves through its policy.
package commit

// Raw is a commit record as supplied by the repository collaborator.
type Raw struct {
	// Hash is the full commit hash.
	Hash string
	// ShortHash is the abbreviated hash used for display and links.
	ShortHash string
	// Subject is the first line of the commit message.
	Subject string
	// Body is the remainder of the commit message, possibly empty.
	Body string
}

// Parsed is the structured form of a commit subject.
type Parsed struct {
	Hash      string
	ShortHash string

	// Type is the conventional-commit type token before the first colon,
	// empty when the subject has no colon. Matched case-insensitively.
	Type string

	// Scope is the parenthesized scope inside the type prefix, if any.
	Scope string

	// Subject is the subject text after the type prefix, or the whole
	// subject line when no prefix is present.
	Subject string

	// IssueRefs holds every "#N" reference found in Subject, in order of
	// appearance. Duplicates are preserved.
	IssueRefs []int
}
