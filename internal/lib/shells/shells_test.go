package shells

import (
	"testing"

	"github.com/ImSingee/tt"
)

func TestJoin(t *testing.T) {
	tt.AssertEqual(t, "git ls-files -z", Join([]string{"git", "ls-files", "-z"}))
	tt.AssertEqual(t, `git diff -- 'a b.txt'`, Join([]string{"git", "diff", "--", "a b.txt"}))
}

func TestSplit(t *testing.T) {
	args, err := Split(`git -c "core.quotepath=false" diff`)
	tt.AssertEqual(t, nil, err)
	tt.AssertEqual(t, []string{"git", "-c", "core.quotepath=false", "diff"}, args)

	args, err = Split("")
	tt.AssertEqual(t, nil, err)
	tt.AssertEqual(t, 0, len(args))
}
