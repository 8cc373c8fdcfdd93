// This file is part of KatOS.
//
// KatOS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// KatOS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with KatOS.  If not, see <https://www.gnu.org/licenses/>.

package surface

import (
	"io/fs"
	"os"

	"github.com/kovidgoyal/go-shm"

	"github.com/katos/katos/curated"
	"github.com/katos/katos/hardware/memory"
)

// the pattern used to name shared memory segments. the asterisk is replaced
// by a random string.
const sharedPattern = "katos-vga-*"

// Shared is a surface in a POSIX shared memory segment. The layout of the
// segment is identical to the physical display memory so a viewer process
// only needs the segment name and the dimensions of the grid.
type Shared struct {
	mmap   shm.MMap
	memory []uint8

	// segments created by NewShared() are removed by Close(). segments
	// opened with OpenShared() belong to another process and are mapped
	// read-only
	owner bool
}

// statter is implemented by mappings that are not backed by a file in the
// filesystem.
type statter interface {
	Stat() (fs.FileInfo, error)
}

// NewShared creates a new shared memory segment of size bytes.
func NewShared(size int) (*Shared, error) {
	mmap, err := shm.CreateTemp(sharedPattern, uint64(size))
	if err != nil {
		return nil, curated.Errorf(SharedError, err)
	}
	return &Shared{
		mmap:   mmap,
		memory: mmap.Slice()[:size],
		owner:  true,
	}, nil
}

// OpenShared maps an existing shared memory segment, created by NewShared()
// in another process. The mapping is read-only and Write() will panic.
//
// The segment must be at least size bytes long.
func OpenShared(name string, size int) (*Shared, error) {
	mmap, err := shm.Open(name, uint64(size))
	if err != nil {
		return nil, curated.Errorf(SharedError, err)
	}

	// the mapping is always the requested size, whatever the size of the
	// segment. reading beyond the end of the segment faults so the segment
	// itself must be checked
	n, err := segmentSize(mmap)
	if err != nil {
		_ = mmap.Close()
		return nil, curated.Errorf(SharedError, err)
	}
	if n < size {
		_ = mmap.Close()
		return nil, curated.Errorf(InvalidSize, n)
	}

	return &Shared{
		mmap:   mmap,
		memory: mmap.Slice()[:size],
	}, nil
}

func segmentSize(mmap shm.MMap) (int, error) {
	var info fs.FileInfo
	var err error

	if st, ok := mmap.(statter); ok {
		info, err = st.Stat()
	} else if mmap.IsFileSystemBacked() {
		info, err = os.Stat(mmap.Name())
	} else {
		return len(mmap.Slice()), nil
	}

	if err != nil {
		return 0, err
	}
	return int(info.Size()), nil
}

// ReadOnly returns true if the segment was opened with OpenShared().
func (sh *Shared) ReadOnly() bool {
	return !sh.owner
}

// Name returns the name of the shared memory segment.
func (sh *Shared) Name() string {
	return sh.mmap.Name()
}

// Size is an implementation of bus.SurfaceBus.
func (sh *Shared) Size() int {
	return len(sh.memory)
}

// Read is an implementation of bus.SurfaceBus.
func (sh *Shared) Read(offset int) uint8 {
	return sh.memory[offset]
}

// Write is an implementation of bus.SurfaceBus. It panics if the segment
// was opened with OpenShared().
func (sh *Shared) Write(offset int, data uint8) {
	if !sh.owner {
		panic(ViewerWrite)
	}
	sh.memory[offset] = data
}

// Snapshot is an implementation of bus.Snapshotter.
func (sh *Shared) Snapshot(dest []uint8) {
	memory.Copy(dest, sh.memory, len(sh.memory))
}

// Close unmaps the shared memory segment. If the segment was created by
// NewShared() it is also removed. The surface must not be used after Close()
// has been called.
func (sh *Shared) Close() error {
	if err := sh.mmap.Close(); err != nil {
		return curated.Errorf(SharedError, err)
	}
	if sh.owner {
		if err := sh.mmap.Unlink(); err != nil {
			return curated.Errorf(SharedError, err)
		}
	}
	sh.memory = nil
	return nil
}
