// Package walker produces the candidate file list for one search: a
// depth-first traversal under the root, applying ignore rules, the
// extension filter, and the hidden-entry policy as it descends.
//
// Directory symlinks are never followed, so filesystem cycles cannot
// hang a search; a symlink pointing at a regular file is still a
// candidate. An unreadable subdirectory is recorded as a warning and
// skipped rather than aborting the walk.
package walker
