//go:build unix

package offline

import (
	"context"

	"golang.org/x/sys/unix"
)

// StatfsMeter reports free space on the filesystem holding Path.
type StatfsMeter struct {
	Path string // Mount point or any path on the target filesystem
}

// AvailableMB implements StorageMeter via statfs.
func (m StatfsMeter) AvailableMB(ctx context.Context) (int, error) {
	path := m.Path
	if path == "" {
		path = "."
	}

	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}

	return int(uint64(st.Bavail) * uint64(st.Bsize) / (1 << 20)), nil
}

var _ StorageMeter = StatfsMeter{}
