package heap

import (
	"os"
	"path"
	"syscall"
)

// MmapFile backs a Heap with a memory-mapped file instead of a plain
// in-process slice, so the buffer's bytes live in a file that can be
// inspected with ordinary file tools. New/NewDefault always Init the
// region they are given, so allocations from a previous run are not
// carried over into a new Heap. cmd/heapd uses one when configured
// with a file path; Data is the []byte to hand to New/NewDefault.
type MmapFile struct {
	*os.File
	Data []byte
	size int
}

// Init creates (or truncates) the file at the path formed by elem,
// sized to size bytes, and maps it into Data.
func (mf *MmapFile) Init(size int, elem ...string) (err error) {
	fullPath := path.Join(elem...)
	dir := path.Dir(fullPath)
	_, err = os.Stat(dir)

	if err != nil {
		if !os.IsNotExist(err) {
			return
		}

		err = os.MkdirAll(dir, 0700)
	}

	if err != nil {
		return
	}

	mf.size = size

	f, err := os.OpenFile(fullPath, os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		return
	}

	err = syscall.Ftruncate(int(f.Fd()), int64(mf.size))
	if err != nil {
		return
	}

	data, err := syscall.Mmap(
		int(f.Fd()), 0, mf.size,
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED,
	)

	if err != nil {
		return
	}

	mf.File = f
	mf.Data = data

	return
}

// Close unmaps Data and closes the underlying file.
func (mf *MmapFile) Close() error {
	defer mf.File.Close()
	return syscall.Munmap(mf.Data)
}
