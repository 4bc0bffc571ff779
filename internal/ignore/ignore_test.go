package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRules(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, RuleFileName), []byte(content), 0o644))
}

func TestEmptyFilterMatchesNothing(t *testing.T) {
	f := New()
	assert.False(t, f.Match("main.go", false))
	assert.False(t, f.Match("sub/dir", true))
}

func TestVCSMetaDirsAlwaysSkipped(t *testing.T) {
	f := New()
	assert.True(t, f.Match(".git", true))
	assert.True(t, f.Match(".git/config", false))
	assert.True(t, f.Match("sub/.hg", true))
	assert.True(t, f.Match(".svn", true))
}

func TestBasicGlobRules(t *testing.T) {
	root := t.TempDir()
	writeRules(t, root, "*.log\nbuild/\n")

	f := New()
	f.LoadDir(root, ".")

	assert.True(t, f.Match("debug.log", false))
	assert.True(t, f.Match("sub/deep.log", false))
	assert.True(t, f.Match("build", true))
	assert.False(t, f.Match("main.go", false))
	assert.False(t, f.Match("build.go", false))
}

func TestCommentsAndBlanksIgnored(t *testing.T) {
	root := t.TempDir()
	writeRules(t, root, "# comment\n\n*.tmp\n")

	f := New()
	f.LoadDir(root, ".")

	assert.True(t, f.Match("x.tmp", false))
	assert.False(t, f.Match("# comment", false))
}

func TestNegationInDeeperFileWins(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	writeRules(t, root, "*.log\n")
	writeRules(t, sub, "!important.log\n")

	f := New()
	f.LoadDir(root, ".")
	f.LoadDir(sub, "sub")

	assert.True(t, f.Match("other.log", false))
	assert.True(t, f.Match("sub/other.log", false))
	assert.False(t, f.Match("sub/important.log", false))
}

func TestAnchoredPatternIsRootRelativeToItsFile(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	writeRules(t, sub, "/local.txt\n")

	f := New()
	f.LoadDir(root, ".")
	f.LoadDir(sub, "sub")

	assert.True(t, f.Match("sub/local.txt", false))
	assert.False(t, f.Match("sub/nested/local.txt", false))
	assert.False(t, f.Match("local.txt", false))
}

func TestSubtreeRulesDoNotLeakToSiblings(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	writeRules(t, a, "secret.txt\n")

	f := New()
	f.LoadDir(root, ".")
	f.LoadDir(a, "a")

	assert.True(t, f.Match("a/secret.txt", false))
	assert.False(t, f.Match("b/secret.txt", false))
}

func TestMissingRuleFileIsNoRules(t *testing.T) {
	f := New()
	f.LoadDir(t.TempDir(), ".")
	assert.False(t, f.Match("anything.txt", false))
}
