package wsyscall

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

const (
	S_IFBLK = syscall.S_IFBLK
	S_IFDIR = syscall.S_IFDIR
	S_IFLNK = syscall.S_IFLNK
	S_IFMT  = syscall.S_IFMT
	S_IFREG = syscall.S_IFREG
	S_IRGRP = syscall.S_IRGRP
	S_IROTH = syscall.S_IROTH
	S_IRUSR = syscall.S_IRUSR
	S_IRWXU = syscall.S_IRWXU
	S_IWUSR = syscall.S_IWUSR
	S_IXGRP = syscall.S_IXGRP
	S_IXOTH = syscall.S_IXOTH
	S_IXUSR = syscall.S_IXUSR
)

func convertStat(dest *Stat_t, source *unix.Stat_t) {
	dest.Dev = source.Dev
	dest.Ino = source.Ino
	dest.Nlink = uint64(source.Nlink)
	dest.Mode = source.Mode
	dest.Uid = source.Uid
	dest.Gid = source.Gid
	dest.Rdev = source.Rdev
	dest.Size = source.Size
	dest.Blksize = int64(source.Blksize)
	dest.Blocks = source.Blocks
	dest.Atim = syscall.Timespec{Sec: source.Atim.Sec, Nsec: source.Atim.Nsec}
	dest.Mtim = syscall.Timespec{Sec: source.Mtim.Sec, Nsec: source.Mtim.Nsec}
	dest.Ctim = syscall.Timespec{Sec: source.Ctim.Sec, Nsec: source.Ctim.Nsec}
}

func lstat(path string, statbuf *Stat_t) error {
	var rawStatbuf unix.Stat_t
	if err := unix.Lstat(path, &rawStatbuf); err != nil {
		return err
	}
	convertStat(statbuf, &rawStatbuf)
	return nil
}

func setBlockDeviceReadOnly(pathname string, readOnly bool) error {
	file, err := os.Open(pathname)
	if err != nil {
		return err
	}
	defer file.Close()
	var value int
	if readOnly {
		value = 1
	}
	return unix.IoctlSetPointerInt(int(file.Fd()), unix.BLKROSET, value)
}

func stat(path string, statbuf *Stat_t) error {
	var rawStatbuf unix.Stat_t
	if err := unix.Stat(path, &rawStatbuf); err != nil {
		return err
	}
	convertStat(statbuf, &rawStatbuf)
	return nil
}

func sync() {
	unix.Sync()
}

func unmount(target string) error {
	return unix.Unmount(target, 0)
}
