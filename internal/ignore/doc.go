// Package ignore decides which paths a search should skip, based on
// .gitignore files discovered while the walker descends the tree.
//
// Rules use standard gitignore semantics (wildcards, `!` negation,
// directory-only `foo/`, anchored `/foo`), evaluated last-match-wins
// with deeper files overriding shallower ones. Version-control metadata
// directories are always skipped, independent of any rule file.
package ignore
