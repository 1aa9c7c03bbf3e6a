package fbx

// UIDAllocator hands out the monotonically increasing 64-bit object IDs FBX
// uses to link records together through Connections. It is a plain instance
// value -- never package-level state -- so that two exports running in the
// same process (even concurrently) get independent, deterministic UID
// sequences. UID 0 is reserved for the implicit scene root and is never
// produced by Next.
type UIDAllocator struct {
	last uint64
}

// NewUIDAllocator seeds the counter at 999,999 so the first call to Next
// returns 1,000,000.
func NewUIDAllocator() *UIDAllocator {
	return &UIDAllocator{last: 999999}
}

func (a *UIDAllocator) Next() uint64 {
	a.last++
	return a.last
}
