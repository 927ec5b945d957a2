//go:build linux

package main

import "golang.org/x/sys/unix"

// fadviseSequential hints to the kernel that a key file will be read front
// to back. Best-effort: errors are ignored.
func fadviseSequential(fd int, length int64) {
	_ = unix.Fadvise(fd, 0, length, unix.FADV_SEQUENTIAL)
}
