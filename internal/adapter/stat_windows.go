//go:build windows

package adapter

import (
	"os"

	m "linkdup.dev/pkg/linkdup/internal/model"
)

// Windows file indexes require an open handle; records stay anonymous.
func statFileID(_ os.FileInfo) (m.FileID, uint64) {
	return m.FileID{}, 0
}
