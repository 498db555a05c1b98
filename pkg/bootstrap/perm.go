package bootstrap

// Permissions for directories the scaffolder creates and templates it writes.
const (
	DIR_PERM  = 0755 // rwxr-xr-x
	FILE_PERM = 0644 // rw-r--r--
)
