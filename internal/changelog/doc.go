// Package changelog renders classified commits into a markdown release
// section and merges sections into an existing changelog document.
//
// This package implements:
//   - Grouping of classified commits under fixed category headings
//   - Commit, issue, compare and release-tag link generation
//   - Insertion of new sections after a document's title/preamble block
//
// Rendering is pure: nothing here touches the repository or the filesystem.
package changelog
