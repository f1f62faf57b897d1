//go:build linux
// +build linux

package romsig

import (
	"os"

	"golang.org/x/sys/unix"
)

/* Make the rename durable */
func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return os.NewSyscallError("open", err)
	}
	defer unix.Close(fd)

	if err := unix.Fsync(fd); err != nil {
		return os.NewSyscallError("fsync", err)
	}
	return nil
}

func linkCount(path string) int {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0
	}
	return int(st.Nlink)
}
