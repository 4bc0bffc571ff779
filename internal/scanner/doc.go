// Package scanner reads one file and reports every line the compiled
// pattern matches. Binary files are detected by a NUL byte in the first
// 8 KiB and skipped with a sentinel error rather than reported as
// matches or failures.
package scanner
