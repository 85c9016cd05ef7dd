//go:build windows

package filename

// Native is the syntax of the host.
var Native = Windows
