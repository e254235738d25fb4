package batch

import (
	"fmt"
	"os"
)

// Filesystem abstracts the delete operations used by DeletePath, so
// tests can prove what was (or was not) removed.
type Filesystem interface {
	Stat(path string) (os.FileInfo, error)
	Remove(path string) error
	RemoveAll(path string) error
}

type osFS struct{}

var _ Filesystem = osFS{}

func (osFS) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (osFS) Remove(path string) error              { return os.Remove(path) }
func (osFS) RemoveAll(path string) error           { return os.RemoveAll(path) }

// DeletePath removes the file or directory at path. Directories are
// removed recursively. A path that does not exist is a success. An empty
// path is a programming error and panics. Removal failures escalate
// through the object's error policy.
func (o *Object) DeletePath(path string) Status {
	if path == "" {
		panic("batch: DeletePath requires a path")
	}

	info, err := o.fs.Stat(path)
	if err == nil && info.IsDir() {
		if rmErr := o.fs.RemoveAll(path); rmErr != nil {
			return o.Escalate(fmt.Sprintf("batch: could not remove directory %s: %v", path, rmErr))
		}
		return OK
	}

	if err == nil && info.Mode().IsRegular() {
		if !o.closed {
			o.log.Infof("batch: removing file %s", path)
		}
		if rmErr := o.fs.Remove(path); rmErr != nil {
			o.Escalate(fmt.Sprintf("batch: could not unlink %s: %v", path, rmErr))
		}
	}

	if info, err := o.fs.Stat(path); err == nil && info.Mode().IsRegular() {
		return o.Escalate(fmt.Sprintf("batch: could not remove %s", path))
	}
	return OK
}
