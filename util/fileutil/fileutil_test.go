package fileutil_test

import (
	"github.com/lsulibraries/ldlpost/util/fileutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"testing"
)

func makeTempFiles(t *testing.T, names ...string) string {
	dir, err := ioutil.TempDir("", "fileutil_test")
	require.Nil(t, err)
	for _, name := range names {
		absPath := filepath.Join(dir, name)
		require.Nil(t, os.MkdirAll(filepath.Dir(absPath), 0755))
		require.Nil(t, ioutil.WriteFile(absPath, []byte("data"), 0644))
	}
	return dir
}

func TestFileExists(t *testing.T) {
	dir := makeTempFiles(t, "a.rdf")
	defer os.RemoveAll(dir)
	assert.True(t, fileutil.FileExists(filepath.Join(dir, "a.rdf")))
	assert.True(t, fileutil.FileExists(dir))
	assert.False(t, fileutil.FileExists(filepath.Join(dir, "NonExistentFile.xyz")))
}

func TestExpandTilde(t *testing.T) {
	expanded, err := fileutil.ExpandTilde("~/tmp")
	require.Nil(t, err)
	usr, err := user.Current()
	require.Nil(t, err)
	assert.Equal(t, filepath.Join(usr.HomeDir, "tmp"), expanded)

	// Should leave absolute paths unchanged
	expanded, err = fileutil.ExpandTilde("/usr/local/bin")
	require.Nil(t, err)
	assert.Equal(t, "/usr/local/bin", expanded)
}

func TestListFiles(t *testing.T) {
	dir := makeTempFiles(t,
		"amistad_3_RELS-EXT.rdf",
		"amistad_10_RELS-EXT.rdf",
		"amistad_2_RELS-EXT.rdf",
		"amistad_2_MODS.xml",
		"nested/amistad_4_RELS-EXT.rdf")
	defer os.RemoveAll(dir)

	files, err := fileutil.ListFiles(dir, "*.rdf")
	require.Nil(t, err)
	require.Equal(t, 3, len(files))
	// Lexical, not numeric, order.
	assert.Equal(t, "amistad_10_RELS-EXT.rdf", filepath.Base(files[0]))
	assert.Equal(t, "amistad_2_RELS-EXT.rdf", filepath.Base(files[1]))
	assert.Equal(t, "amistad_3_RELS-EXT.rdf", filepath.Base(files[2]))
	for _, file := range files {
		assert.True(t, strings.HasPrefix(file, dir))
	}

	files, err = fileutil.ListFiles(dir, "**/*.rdf")
	require.Nil(t, err)
	assert.Equal(t, 4, len(files))
}

func TestListFilesEmptyDir(t *testing.T) {
	dir := makeTempFiles(t)
	defer os.RemoveAll(dir)
	files, err := fileutil.ListFiles(dir, "*.rdf")
	require.Nil(t, err)
	assert.Empty(t, files)
}

func TestListFilesBadInput(t *testing.T) {
	_, err := fileutil.ListFiles("/no/such/dir/exists", "*.rdf")
	assert.NotNil(t, err)

	dir := makeTempFiles(t, "a.rdf")
	defer os.RemoveAll(dir)
	_, err = fileutil.ListFiles(filepath.Join(dir, "a.rdf"), "*.rdf")
	assert.NotNil(t, err)
	_, err = fileutil.ListFiles(dir, "[*.rdf")
	assert.NotNil(t, err)
}

func TestJsonFileToObject(t *testing.T) {
	dir := makeTempFiles(t)
	defer os.RemoveAll(dir)
	absPath := filepath.Join(dir, "obj.json")
	require.Nil(t, ioutil.WriteFile(absPath, []byte(`{"Name":"amistad"}`), 0644))
	obj := &struct{ Name string }{}
	require.Nil(t, fileutil.JsonFileToObject(absPath, obj))
	assert.Equal(t, "amistad", obj.Name)

	assert.NotNil(t, fileutil.JsonFileToObject(filepath.Join(dir, "missing.json"), obj))
}
