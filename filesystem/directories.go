package filesystem

import "os"

func CreateDirectoryIfNotExists(path string) error {
	return os.MkdirAll(path, 0777)
}
