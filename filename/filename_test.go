package filename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastComponent(t *testing.T) {
	tests := []struct {
		name string
		sx   Syntax
		in   string
		want string
	}{
		{"simple", POSIX, "/usr/lib", "lib"},
		{"trailing slash kept", POSIX, "/usr/lib/", "lib/"},
		{"root", POSIX, "/", ""},
		{"empty", POSIX, "", ""},
		{"relative", POSIX, "usr", "usr"},
		{"redundant slashes", POSIX, "//a//b//", "b//"},
		{"drive root", Windows, `c:\`, ""},
		{"drive path", Windows, `c:\dir\`, `dir\`},
		{"drive only", Windows, "c:", ""},
		{"drive ignored on posix", POSIX, "c:", "c:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sx.LastComponent(tt.in))
		})
	}
}

func TestBaseLen(t *testing.T) {
	tests := []struct {
		name string
		sx   Syntax
		in   string
		want int
	}{
		{"trailing slash ignored", POSIX, "/usr/lib/", 3},
		{"plain", POSIX, "lib", 3},
		{"root", POSIX, "/", 1},
		{"double slash is plain root", POSIX, "//", 1},
		{"double slash is distinct root", Cygwin, "//", 2},
		{"triple slash", Cygwin, "///", 1},
		{"empty", POSIX, "", 0},
		{"component with slashes", POSIX, "a//", 1},
		{"drive root", Windows, `c:\`, 3},
		{"drive only", Windows, "c:", 2},
		{"drive file", Windows, `c:\dir\file.txt`, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sx.BaseLen(tt.in))
		})
	}
}

func TestBase(t *testing.T) {
	tests := []struct {
		name string
		sx   Syntax
		in   string
		want string
	}{
		{"trailing slash", POSIX, "/usr/lib/", "lib"},
		{"root", POSIX, "/", "/"},
		{"collapsed root", POSIX, "///", "/"},
		{"distinct root", Cygwin, "//", "//"},
		{"empty", POSIX, "", ""},
		{"drive file", Windows, `c:\dir\file.txt`, "file.txt"},
		{"drive root", Windows, `c:\`, `c:\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sx.Base(tt.in))
		})
	}
}

func TestDirLen(t *testing.T) {
	tests := []struct {
		name string
		sx   Syntax
		in   string
		want int
	}{
		{"absolute", POSIX, "/usr/lib", 4},
		{"redundant slashes", POSIX, "/usr//lib", 4},
		{"working directory", POSIX, "usr", 0},
		{"root", POSIX, "/", 1},
		{"top level", POSIX, "/usr", 1},
		{"trailing slash", POSIX, "a/b/", 1},
		{"double slash on posix", POSIX, "//a", 1},
		{"double slash root", Cygwin, "//a", 2},
		{"triple slash root", Cygwin, "///a", 1},
		{"drive root", Windows, `c:\foo`, 3},
		{"drive relative", Windows, "c:foo", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sx.DirLen(tt.in))
		})
	}
}

func TestDirName(t *testing.T) {
	tests := []struct {
		name string
		sx   Syntax
		in   string
		want string
	}{
		{"absolute", POSIX, "/usr/lib", "/usr"},
		{"working directory", POSIX, "usr", "."},
		{"root", POSIX, "/", "/"},
		{"collapsed root", POSIX, "///", "/"},
		{"top level with slash", POSIX, "/usr/", "/"},
		{"relative trailing slash", POSIX, "a/b/", "a"},
		{"empty", POSIX, "", "."},
		{"double slash on posix", POSIX, "//a", "/"},
		{"double slash root", Cygwin, "//a", "//"},
		{"bare double slash", Cygwin, "//", "//"},
		{"drive root", Windows, `c:\foo`, `c:\`},
		{"drive relative", Windows, "c:foo", "c:."},
		{"drive only", Windows, "c:", "c:"},
		{"drive root only", Windows, `c:\`, `c:\`},
		{"backslashes", Windows, `c:\a\b\`, `c:\a`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sx.DirName(tt.in)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		name       string
		sx         Syntax
		dir        string
		base       string
		want       string
		wantOffset int
	}{
		{"plain", POSIX, "/a/b", "c", "/a/b/c", 5},
		{"no doubled separator", POSIX, "/a/b/", "c", "/a/b/c", 5},
		{"absolute base", POSIX, "/a", "/c", "/a/c", 2},
		{"many leading slashes", POSIX, "/a", "//c", "/a/c", 2},
		{"root dir", POSIX, "/", "c", "/c", 1},
		{"root dir absolute base", POSIX, "/", "/c", "/c", 0},
		{"empty dir", POSIX, "", "c", "c", 0},
		{"empty dir absolute base", POSIX, "", "/c", "c", 0},
		{"redundant slashes in dir", POSIX, "a//", "b", "a/b", 2},
		{"distinct root", Cygwin, "//", "a", "//a", 2},
		{"drive dir", Windows, `c:\dir`, "f", `c:\dir\f`, 7},
		{"drive relative dir", Windows, "c:", "f", "c:f", 2},
		{"drive prefix stripped", Windows, `c:\a`, `d:\b`, `c:\a\b`, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, offset := tt.sx.Concat(tt.dir, tt.base)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestIsAbs(t *testing.T) {
	assert.True(t, POSIX.IsAbs("/a"))
	assert.False(t, POSIX.IsAbs("a"))
	assert.False(t, POSIX.IsAbs(""))
	assert.False(t, POSIX.IsAbs("c:/a"))
	assert.True(t, Windows.IsAbs(`c:\a`))
	assert.True(t, Windows.IsAbs(`\a`))
	assert.False(t, Windows.IsAbs("c:a"))
	assert.True(t, Cygwin.IsAbs("c:a"))
}

func TestPrefixLen(t *testing.T) {
	assert.Equal(t, 2, Windows.PrefixLen("c:"))
	assert.Equal(t, 2, Windows.PrefixLen("Z:foo"))
	assert.Equal(t, 0, Windows.PrefixLen("1:"))
	assert.Equal(t, 0, Windows.PrefixLen("c"))
	assert.Equal(t, 0, POSIX.PrefixLen("c:"))
}

// Joining DirName and Base must name the original file again.
func TestDirNameBaseRoundTrip(t *testing.T) {
	for _, in := range []string{"/usr/lib", "/usr/lib/", "a/b", "/a", "x"} {
		joined, _ := POSIX.Concat(POSIX.DirName(in), POSIX.Base(in))
		want := in
		for len(want) > 1 && want[len(want)-1] == '/' {
			want = want[:len(want)-1]
		}
		if POSIX.DirLen(in) == 0 {
			want = "./" + want
		}
		assert.Equal(t, want, joined, in)
	}
}
