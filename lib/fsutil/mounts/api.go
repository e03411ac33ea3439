package mounts

type MountEntry struct {
	Device     string
	MountPoint string
	Type       string
	Options    string
}

type MountTable struct {
	Entries []*MountEntry
}

// GetMountTable reads the mount table for the running system.
func GetMountTable() (*MountTable, error) {
	return getMountTable(procMounts)
}

// GetMountTableFromFile reads a mount table in /proc/mounts format from
// filename.
func GetMountTableFromFile(filename string) (*MountTable, error) {
	return getMountTable(filename)
}

// FindEntry returns the entry with the longest mount point which is a prefix
// of path, or nil.
func (mt *MountTable) FindEntry(path string) *MountEntry {
	return mt.findEntry(path)
}

// IsMountPoint returns true if path is exactly a mount point in the table.
func (mt *MountTable) IsMountPoint(path string) bool {
	entry := mt.findEntry(path)
	return entry != nil && entry.MountPoint == path
}
