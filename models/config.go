package models

import (
	"encoding/json"
	"fmt"
	"github.com/lsulibraries/ldlpost/constants"
	"github.com/lsulibraries/ldlpost/util/fileutil"
	"github.com/op/go-logging"
	"io/ioutil"
	"os"
	"path/filepath"
)

type Config struct {
	// ActiveConfig is the configuration currently
	// in use.
	ActiveConfig string

	// AssetMarker is the string that identifies companion asset
	// files in the files directory. The asset for PID ns:12 is
	// expected to be named ns_12_<AssetMarker>.<ext>.
	AssetMarker string

	// AssetMimeType is the mime type companion assets must have
	// when VerifyAssetMimeType is true.
	AssetMimeType string

	// AssetPathPrefix is the directory Workbench will find the
	// assets in, relative to its own input directory. This is
	// written into the file column.
	AssetPathPrefix string

	// LogDirectory is where we'll write our log files.
	LogDirectory string

	// LogLevel is defined in github.com/op/go-logging
	// and should be one of the following:
	// 0 - CRITICAL
	// 1 - ERROR
	// 2 - WARNING
	// 3 - NOTICE
	// 4 - INFO
	// 5 - DEBUG
	LogLevel logging.Level

	// If true, processes will log to STDERR in addition
	// to their standard log files.
	LogToStderr bool

	// MultiValueDelimiter joins values when more than one
	// classification or relationship rule fires for a single
	// object. Workbench uses | as its subdelimiter.
	MultiValueDelimiter string

	// RdfPattern selects the RELS-EXT files in the files
	// directory. It's a doublestar glob, relative to that
	// directory.
	RdfPattern string

	// RunHistoryDB is the path to a bolt database that keeps the
	// summary of every run. Leave empty to skip run history.
	RunHistoryDB string

	// UnclassifiedMarker, if set, is written to field_model for
	// objects no content model rule matched, so they can be told
	// apart from objects that have a deliberately empty model.
	UnclassifiedMarker string

	// VerifyAssetMimeType tells the asset finder to sniff each
	// companion asset and reject those whose type isn't
	// AssetMimeType. Requires libmagic.
	VerifyAssetMimeType bool

	// VocabularyFile is an optional YAML file describing the
	// content model vocabulary. If empty, the built-in Islandora
	// vocabulary is used.
	VocabularyFile string
}

// NewConfig returns a config with defaults for everything
// except the log directory.
func NewConfig() *Config {
	config := &Config{
		LogLevel: logging.INFO,
	}
	config.SetDefaults()
	return config
}

// This returns the configuration that the user requested,
// which is specified in the --config option when we run a
// program from the command line. A relative VocabularyFile
// is relative to the config file.
func LoadConfigFile(pathToConfigFile string) (*Config, error) {
	file, err := ioutil.ReadFile(pathToConfigFile)
	if err != nil {
		detailedError := fmt.Errorf("Error reading config file '%s': %v\n",
			pathToConfigFile, err)
		return nil, detailedError
	}
	config := &Config{}
	err = json.Unmarshal(file, config)
	if err != nil {
		detailedError := fmt.Errorf("Error parsing JSON from config file '%s': %v",
			pathToConfigFile, err)
		return nil, detailedError
	}
	config.ActiveConfig = pathToConfigFile
	config.ExpandFilePaths()
	if config.VocabularyFile != "" && !filepath.IsAbs(config.VocabularyFile) {
		config.VocabularyFile = filepath.Join(filepath.Dir(pathToConfigFile),
			config.VocabularyFile)
	}
	config.SetDefaults()
	return config, nil
}

// SetDefaults fills in empty optional settings.
func (config *Config) SetDefaults() {
	if config.AssetMarker == "" {
		config.AssetMarker = constants.DefaultAssetMarker
	}
	if config.AssetMimeType == "" {
		config.AssetMimeType = constants.DefaultAssetMimeType
	}
	if config.AssetPathPrefix == "" {
		config.AssetPathPrefix = constants.DefaultAssetPathPrefix
	}
	if config.MultiValueDelimiter == "" {
		config.MultiValueDelimiter = constants.DefaultMultiValueDelimiter
	}
	if config.RdfPattern == "" {
		config.RdfPattern = constants.DefaultRdfPattern
	}
}

// Ensures that the logging directory exists, creating it if necessary.
// Returns the absolute path the logging directory.
func (config *Config) EnsureLogDirectory() (string, error) {
	config.ExpandFilePaths()
	if config.LogDirectory == "" {
		return "", fmt.Errorf("You must define config.LogDirectory")
	}
	if !fileutil.FileExists(config.LogDirectory) {
		err := os.MkdirAll(config.LogDirectory, 0755)
		if err != nil {
			return "", err
		}
	}
	return config.AbsLogDirectory(), nil
}

func (config *Config) AbsLogDirectory() string {
	absLogDir, err := filepath.Abs(config.LogDirectory)
	if err != nil {
		msg := fmt.Sprintf("Cannot get absolute path to log directory. "+
			"config.LogDirectory is set to '%s'", config.LogDirectory)
		panic(msg)
	}
	return absLogDir
}

// Expands ~ file paths to absolute paths.
func (config *Config) ExpandFilePaths() {
	expanded, err := fileutil.ExpandTilde(config.LogDirectory)
	if err == nil {
		config.LogDirectory = expanded
	}
	expanded, err = fileutil.ExpandTilde(config.RunHistoryDB)
	if err == nil {
		config.RunHistoryDB = expanded
	}
	expanded, err = fileutil.ExpandTilde(config.VocabularyFile)
	if err == nil {
		config.VocabularyFile = expanded
	}
}

// LoadVocabulary returns the content model vocabulary named in
// VocabularyFile, or the built-in vocabulary if none is named.
func (config *Config) LoadVocabulary() (*Vocabulary, error) {
	if config.VocabularyFile == "" {
		return DefaultVocabulary(), nil
	}
	return LoadVocabularyFile(config.VocabularyFile)
}
