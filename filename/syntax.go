// Package filename splits and joins file names without touching the file
// system. The rules for prefixes and separators are carried by a Syntax so
// that DOS-style names can be handled on any host.
package filename

// Syntax describes how a platform spells file names.
type Syntax struct {
	Drive           bool // "X:" is a file system prefix
	DriveRelative   bool // "X:name" is relative to the drive's working directory
	Backslash       bool // '\\' separates components too
	DoubleSlashRoot bool // "//" is a root distinct from "/"
	Separator       byte // inserted by Concat
}

// Syntaxes of common hosts.
var (
	POSIX   = Syntax{Separator: '/'}
	Windows = Syntax{Drive: true, DriveRelative: true, Backslash: true, Separator: '\\'}
	Cygwin  = Syntax{Drive: true, Backslash: true, DoubleSlashRoot: true, Separator: '/'}
)

// IsSeparator reports whether c separates file name components.
func (sx Syntax) IsSeparator(c byte) bool {
	return c == '/' || (sx.Backslash && c == '\\')
}

// PrefixLen returns the length of the file system prefix of name, which is
// 2 for a drive letter and 0 otherwise.
func (sx Syntax) PrefixLen(name string) int {
	if sx.Drive && len(name) >= 2 && name[1] == ':' && isLetter(name[0]) {
		return 2
	}
	return 0
}

// IsAbs reports whether name is anchored at a root.
func (sx Syntax) IsAbs(name string) bool {
	prefix := sx.PrefixLen(name)
	if sx.DriveRelative {
		return prefix < len(name) && sx.IsSeparator(name[prefix])
	}
	return prefix != 0 || (len(name) > 0 && sx.IsSeparator(name[0]))
}

func at(name string, i int) byte {
	if i < len(name) {
		return name[i]
	}
	return 0
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsSeparator is Native.IsSeparator.
func IsSeparator(c byte) bool {
	return Native.IsSeparator(c)
}

// PrefixLen is Native.PrefixLen.
func PrefixLen(name string) int {
	return Native.PrefixLen(name)
}

// IsAbs is Native.IsAbs.
func IsAbs(name string) bool {
	return Native.IsAbs(name)
}
