package testhelper

import (
	"github.com/lsulibraries/ldlpost/testdata"
	"io/ioutil"
	"path/filepath"
	"runtime"
)

// ProjectRoot returns the absolute path to the root of this repo.
func ProjectRoot() (string) {
	_, filename, _, _ := runtime.Caller(0)
	dir, _ := filepath.Abs(filepath.Dir(filename))
	return filepath.Join(dir, "..")
}

// ConfigPath returns the absolute path to fileName in the
// config directory. E.g. "test.json".
func ConfigPath(fileName string) (string) {
	return filepath.Join(ProjectRoot(), "config", fileName)
}

// WriteFiles writes each named file into dir with the specified
// contents.
func WriteFiles(dir string, files map[string]string) error {
	for name, contents := range files {
		err := ioutil.WriteFile(filepath.Join(dir, name), []byte(contents), 0644)
		if err != nil {
			return err
		}
	}
	return nil
}

// Collection is a small LDL export: a PDF, a compound object with one
// image child, and the collection that holds them. Objects are listed in identifier order, which is the order
// their RELS-EXT files sort in.
var Collection = []struct {
	Pid       string
	Relations []testdata.Relation
}{
	{"amistad:1", []testdata.Relation{
		testdata.HasModel("info:fedora/islandora:sp_pdf"),
		testdata.MemberOfCollection("amistad:collection"),
	}},
	{"amistad:2", []testdata.Relation{
		testdata.HasModel("info:fedora/islandora:compoundCModel"),
		testdata.MemberOfCollection("amistad:collection"),
	}},
	{"amistad:3", []testdata.Relation{
		testdata.HasModel("info:fedora/islandora:sp_large_image_cmodel"),
		testdata.ConstituentOf("amistad:2"),
		testdata.SequenceNumberOf("amistad:2", "1"),
	}},
	{"amistad:collection", []testdata.Relation{
		testdata.MemberOfCollection("islandora:root"),
		testdata.HasModel("info:fedora/islandora:collectionCModel"),
	}},
}

// WriteCollection writes the RELS-EXT files for Collection into dir
// and returns the PIDs in order.
func WriteCollection(dir string) ([]string, error) {
	pids := make([]string, len(Collection))
	for i, object := range Collection {
		if _, err := testdata.WriteRelsExt(dir, object.Pid, object.Relations...); err != nil {
			return nil, err
		}
		pids[i] = object.Pid
	}
	return pids, nil
}
