package wsyscall

import "syscall"

type Stat_t struct {
	Dev     uint64
	Ino     uint64
	Nlink   uint64
	Mode    uint32
	Uid     uint32
	Gid     uint32
	Rdev    uint64
	Size    int64
	Blksize int64
	Blocks  int64
	Atim    syscall.Timespec
	Mtim    syscall.Timespec
	Ctim    syscall.Timespec
}

func Lstat(path string, statbuf *Stat_t) error {
	return lstat(path, statbuf)
}

// SetBlockDeviceReadOnly will set or clear the read-only flag of the block
// device named by pathname (the BLKROSET ioctl). Subsequent opens for writing
// will fail while the flag is set.
func SetBlockDeviceReadOnly(pathname string, readOnly bool) error {
	return setBlockDeviceReadOnly(pathname, readOnly)
}

func Stat(path string, statbuf *Stat_t) error {
	return stat(path, statbuf)
}

// Unmount will detach the filesystem mounted at target.
func Unmount(target string) error {
	return unmount(target)
}

// Sync commits all file-system caches to disk.
func Sync() {
	sync()
}
