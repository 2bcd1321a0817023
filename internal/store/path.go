package store

// PathResolver maps a username to the location of its record file.
//
// The username is appended verbatim: no escaping, no canonicalization and no
// length cap. Callers must only pass validated identifiers.
type PathResolver struct {
	baseDir string
}

// NewPathResolver returns a resolver rooted at baseDir.
func NewPathResolver(baseDir string) PathResolver {
	return PathResolver{baseDir: baseDir}
}

// Resolve returns "<baseDir>/<username>".
func (p PathResolver) Resolve(username string) string {
	return p.baseDir + "/" + username
}

// BaseDir returns the directory all record files live in.
func (p PathResolver) BaseDir() string {
	return p.baseDir
}
