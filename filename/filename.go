package filename

import "strings"

// lastIndex returns the offset of the last component of name, or len(name)
// if name is a root or empty.
func (sx Syntax) lastIndex(name string) int {
	base := sx.PrefixLen(name)
	for base < len(name) && sx.IsSeparator(name[base]) {
		base++
	}
	sawSep := false
	for p := base; p < len(name); p++ {
		if sx.IsSeparator(name[p]) {
			sawSep = true
		} else if sawSep {
			base = p
			sawSep = false
		}
	}
	return base
}

// baseLen is the length of name without trailing separators. A root keeps
// its separators where they are significant: "//" when it is a distinct
// root, and "X:/" when drive prefixes can be relative.
func (sx Syntax) baseLen(name string) int {
	prefix := sx.PrefixLen(name)
	n := len(name)
	for 1 < n && sx.IsSeparator(name[n-1]) {
		n--
	}
	if sx.DoubleSlashRoot && n == 1 && len(name) == 2 &&
		sx.IsSeparator(name[0]) && sx.IsSeparator(name[1]) {
		return 2
	}
	if sx.DriveRelative && prefix != 0 && n == prefix && sx.IsSeparator(at(name, prefix)) {
		return prefix + 1
	}
	return n
}

// LastComponent returns the last component of name, including any trailing
// separators. It returns "" if name is a root.
func (sx Syntax) LastComponent(name string) string {
	return name[sx.lastIndex(name):]
}

// BaseLen returns the length of the last component of name without
// trailing separators. For a root it returns the length of the root.
func (sx Syntax) BaseLen(name string) int {
	i := sx.lastIndex(name)
	if i == len(name) {
		return sx.baseLen(name)
	}
	return sx.baseLen(name[i:])
}

// Base returns the last component of name without trailing separators.
// A root is its own base.
func (sx Syntax) Base(name string) string {
	i := sx.lastIndex(name)
	if i == len(name) {
		return name[:sx.baseLen(name)]
	}
	return name[i : i+sx.baseLen(name[i:])]
}

// DirLen returns the length of the prefix of name that DirName uses. It is
// zero when name lives in the working directory, even though DirName
// returns "." for it. Trailing separators are ignored.
func (sx Syntax) DirLen(name string) int {
	prefix := sx.PrefixLen(name)
	switch {
	case prefix != 0:
		if sx.DriveRelative && sx.IsSeparator(at(name, prefix)) {
			prefix++
		}
	case sx.IsSeparator(at(name, 0)):
		prefix = 1
		if sx.DoubleSlashRoot && sx.IsSeparator(at(name, 1)) && !sx.IsSeparator(at(name, 2)) {
			prefix = 2
		}
	}

	n := sx.lastIndex(name)
	for ; prefix < n; n-- {
		if !sx.IsSeparator(name[n-1]) {
			break
		}
	}
	return n
}

// DirName returns the directory containing name. The result is never
// empty: "." stands for the working directory, and "X:." for the working
// directory of drive X.
//
// If lstat(name) succeeds, then chdir(DirName(name)) followed by
// lstat(Base(name)) reaches the same file.
func (sx Syntax) DirName(name string) string {
	n := sx.DirLen(name)
	appendDot := n == 0 ||
		(sx.DriveRelative && n == sx.PrefixLen(name) && len(name) > 2 && !sx.IsSeparator(name[2]))
	if appendDot {
		return name[:n] + "."
	}
	return name[:n]
}

// relativeSuffix returns the longest suffix of name that is relative.
func (sx Syntax) relativeSuffix(name string) string {
	i := sx.PrefixLen(name)
	for i < len(name) && sx.IsSeparator(name[i]) {
		i++
	}
	return name[i:]
}

// Concat joins dir and base so that the result names the file that base
// names when looked up from dir. Any prefix and leading separators of base
// are dropped, and a single separator is placed between the two parts
// unless dir already ends in one.
//
// The returned offset is where base starts in the result. If base was
// absolute, the offset points at the separator that precedes it.
func (sx Syntax) Concat(dir, base string) (string, int) {
	i := sx.lastIndex(dir)
	dirBaseLen := sx.baseLen(dir[i:])
	dirLen := i + dirBaseLen
	needSep := dirBaseLen != 0 && !sx.IsSeparator(dir[dirLen-1])
	rel := sx.relativeSuffix(base)

	var b strings.Builder
	b.Grow(dirLen + 1 + len(rel))
	b.WriteString(dir[:dirLen])
	if needSep {
		b.WriteByte(sx.Separator)
	}
	offset := b.Len()
	if offset > 0 && sx.IsAbs(base) {
		offset--
	}
	b.WriteString(rel)
	return b.String(), offset
}

// LastComponent is Native.LastComponent.
func LastComponent(name string) string {
	return Native.LastComponent(name)
}

// BaseLen is Native.BaseLen.
func BaseLen(name string) int {
	return Native.BaseLen(name)
}

// Base is Native.Base.
func Base(name string) string {
	return Native.Base(name)
}

// DirLen is Native.DirLen.
func DirLen(name string) int {
	return Native.DirLen(name)
}

// DirName is Native.DirName.
func DirName(name string) string {
	return Native.DirName(name)
}

// Concat is Native.Concat.
func Concat(dir, base string) (string, int) {
	return Native.Concat(dir, base)
}
