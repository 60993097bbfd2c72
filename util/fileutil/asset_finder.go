package fileutil

import (
	"fmt"
	"github.com/lsulibraries/ldlpost/platform"
	"github.com/lsulibraries/ldlpost/util"
	"io/ioutil"
	"path"
	"path/filepath"
	"strings"
)

// AssetFinder locates the companion file (usually the OBJ datastream
// exported as a PDF) for each object in a files directory. Exported
// assets are named like amistad-pgoudvis_12_PDF.pdf, and Workbench
// wants them referenced as Data/amistad-pgoudvis_12_PDF.pdf.
type AssetFinder struct {
	dir        string
	marker     string
	pathPrefix string
	mimeType   string
	// assets maps file name without extension to extension.
	assets map[string]string
}

// NewAssetFinder indexes the top level of dir. Only files whose names
// contain marker are considered.
func NewAssetFinder(dir, marker, pathPrefix string) (*AssetFinder, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("Cannot read files directory '%s': %v", dir, err)
	}
	finder := &AssetFinder{
		dir:        dir,
		marker:     marker,
		pathPrefix: pathPrefix,
		assets:     make(map[string]string),
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(entry.Name(), marker) {
			continue
		}
		ext := filepath.Ext(entry.Name())
		finder.assets[strings.TrimSuffix(entry.Name(), ext)] = ext
	}
	return finder, nil
}

// RequireMimeType makes Find reject assets whose sniffed mime type
// is not mimeType. This has no effect in nomagic builds.
func (finder *AssetFinder) RequireMimeType(mimeType string) {
	finder.mimeType = mimeType
}

// Count returns the number of indexed assets.
func (finder *AssetFinder) Count() int {
	return len(finder.assets)
}

// AssetName returns the expected file name, minus extension, of the
// asset for pid. For 'amistad-pgoudvis:12' that's
// 'amistad-pgoudvis_12_PDF'.
func (finder *AssetFinder) AssetName(pid string) (string, error) {
	namespace, number, err := util.PidParts(pid)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s_%s", namespace, number, finder.marker), nil
}

// Find returns the Workbench path of the asset for pid, or an empty
// string if there is none. It returns an error if the pid is malformed
// or the asset is not of the required mime type.
func (finder *AssetFinder) Find(pid string) (string, error) {
	name, err := finder.AssetName(pid)
	if err != nil {
		return "", err
	}
	ext, found := finder.assets[name]
	if !found {
		return "", nil
	}
	if finder.mimeType != "" && platform.MimeDetectionEnabled {
		absPath := filepath.Join(finder.dir, name+ext)
		mimeType, err := platform.GuessMimeType(absPath)
		if err != nil {
			return "", err
		}
		if mimeType != finder.mimeType {
			return "", fmt.Errorf("Asset '%s' has mime type %s, expected %s",
				absPath, mimeType, finder.mimeType)
		}
	}
	// Workbench paths always use forward slashes.
	return path.Join(finder.pathPrefix, name+ext), nil
}
