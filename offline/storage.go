package offline

import "context"

// StorageMeter reports the device's free storage, used as the download
// precondition.
type StorageMeter interface {
	AvailableMB(ctx context.Context) (int, error)
}

// FixedMeter is a StorageMeter with a constant answer, for tests and for
// platforms where the host app supplies its own storage query.
type FixedMeter int

// AvailableMB implements StorageMeter.
func (m FixedMeter) AvailableMB(ctx context.Context) (int, error) {
	return int(m), nil
}

var _ StorageMeter = FixedMeter(0)
