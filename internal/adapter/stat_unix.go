//go:build !windows

package adapter

import (
	"os"
	"syscall"

	m "linkdup.dev/pkg/linkdup/internal/model"
)

func statFileID(info os.FileInfo) (m.FileID, uint64) {
	if info == nil {
		return m.FileID{}, 0
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return m.FileID{}, 0
	}

	//nolint:unconvert // Dev and Nlink widths differ between platforms.
	return m.FileID{Dev: uint64(stat.Dev), Ino: uint64(stat.Ino)}, uint64(stat.Nlink)
}
