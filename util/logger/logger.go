package logger

import (
	"fmt"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/op/go-logging"
	"io/ioutil"
	stdlog "log"
	"os"
	"path"
	"path/filepath"
)

/*
InitLogger creates and returns a logger suitable for logging
human-readable messages, along with the path to its log file.
The file is named after the running program and lives in
config.LogDirectory, which is created if necessary.
*/
func InitLogger(config *models.Config) (*logging.Logger, string, error) {
	processName := path.Base(os.Args[0])
	logDir, err := config.EnsureLogDirectory()
	if err != nil {
		return nil, "", err
	}
	filename := filepath.Join(logDir, fmt.Sprintf("%s.log", processName))
	writer, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, "", fmt.Errorf("Cannot open log file '%s': %v", filename, err)
	}

	log := logging.MustGetLogger(processName)
	format := logging.MustStringFormatter("%{time} [%{level}] %{message}")
	logging.SetFormatter(format)

	logBackend := logging.NewLogBackend(writer, "", 0)
	if config.LogToStderr {
		// Log to BOTH file and stderr
		stderrBackend := logging.NewLogBackend(os.Stderr, "", stdlog.LstdFlags)
		stderrBackend.Color = true
		logging.SetBackend(logBackend, stderrBackend)
	} else {
		// Log to file only
		logging.SetBackend(logBackend)
	}
	// SetBackend resets levels, so this has to come after.
	logging.SetLevel(config.LogLevel, processName)

	return log, filename, nil
}

/*
InitJsonLogger creates and returns a logger suitable for logging JSON
data, along with the path to its log file. The post processor writes
one block per object, the object's derived fields as JSON between
BEGIN and END marker lines, so the log can be searched by PID.
*/
func InitJsonLogger(config *models.Config) (*stdlog.Logger, string, error) {
	processName := path.Base(os.Args[0])
	logDir, err := config.EnsureLogDirectory()
	if err != nil {
		return nil, "", err
	}
	filename := filepath.Join(logDir, fmt.Sprintf("%s.json", processName))
	writer, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, "", fmt.Errorf("Cannot open log file '%s': %v", filename, err)
	}
	return stdlog.New(writer, "", 0), filename, nil
}

/*
Discard logger returns a logger that writes to dev/null.
Suitable for use in testing.
*/
func DiscardLogger(module string) *logging.Logger {
	log := logging.MustGetLogger(module)
	devnull := logging.NewLogBackend(ioutil.Discard, "", 0)
	logging.SetBackend(devnull)
	logging.SetLevel(logging.INFO, module)
	return log
}

/*
DiscardJsonLogger returns a JSON logger that writes to dev/null.
*/
func DiscardJsonLogger() *stdlog.Logger {
	return stdlog.New(ioutil.Discard, "", 0)
}
