package maybesync

// Version information for the maybe-sync facade.
const (
	// Version is the current version of the facade.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info describes the build configuration the facade was compiled with.
type Info struct {
	// Version is the facade version string.
	Version string

	// Mode is the active build mode, "parallel" or "singlethread".
	Mode string

	// ThreadSafe indicates whether the primitives are backed by real
	// synchronization.
	ThreadSafe bool

	// Deadlock indicates whether the parallel-mode mutex is backed by the
	// deadlock detector (-tags deadlock).
	Deadlock bool

	// Alloc indicates whether the allocating surface (Rc, Future) is part
	// of the build. False under -tags noalloc.
	Alloc bool
}

// GetInfo returns the build configuration of the facade, for inclusion in
// downstream diagnostics.
//
// Example:
//
//	info := maybesync.GetInfo()
//	fmt.Printf("maybe-sync %s (%s mode)\n", info.Version, info.Mode)
func GetInfo() Info {
	return Info{
		Version:    Version,
		Mode:       ModeName,
		ThreadSafe: ThreadSafe,
		Deadlock:   DeadlockEnabled,
		Alloc:      AllocEnabled,
	}
}
