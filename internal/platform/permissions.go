package platform

import "os"

// Permission bits for materialized files. Template permissions are not
// carried over; every copied file gets the same mode.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)
