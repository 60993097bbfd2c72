package fileutil

import (
	"encoding/json"
	"fmt"
	"github.com/bmatcuk/doublestar/v4"
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"
)

// Returns true if the file at path exists, false if not.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	if err != nil && os.IsNotExist(err) {
		return false
	}
	return true
}

// Expands the tilde in a directory path to the current
// user's home directory. For example, on Linux, ~/data
// would expand to something like /home/josie/data
func ExpandTilde(filePath string) (string, error) {
	if strings.Index(filePath, "~") < 0 {
		return filePath, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	homeDir := usr.HomeDir + "/"
	expandedDir := strings.Replace(filePath, "~/", homeDir, 1)
	return expandedDir, nil
}

// ListFiles returns the files in dir whose names match pattern, sorted
// in ascending lexical order. Pattern is a doublestar glob relative to
// dir, so "*.rdf" matches only the top level and "**/*.rdf" descends
// into subdirectories. Directories are never returned. Returns an error
// if dir does not exist or is not a directory.
func ListFiles(dir, pattern string) ([]string, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("Directory '%s' does not exist.", dir)
		}
		return nil, err
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("Path '%s' is not a directory.", dir)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("File pattern '%s' is not valid.", pattern)
	}
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	files := make([]string, len(matches))
	for i, match := range matches {
		files[i] = filepath.Join(dir, filepath.FromSlash(match))
	}
	sort.Strings(files)
	return files, nil
}

// Reads data from the file at absPath (an absolute path)
// and coverts it to an object of whatever type param obj
// is. Returns an error if there's a problem reading the
// file or unmarshalling the data into the type you passed in.
// On success, this returns nil and your object will contain
// the data from the file.
func JsonFileToObject(absPath string, obj interface{}) error {
	data, err := ioutil.ReadFile(absPath)
	if err != nil {
		return err
	}
	err = json.Unmarshal(data, obj)
	if err != nil {
		return err
	}
	return nil
}
