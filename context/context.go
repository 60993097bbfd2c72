package context

import (
	"fmt"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/lsulibraries/ldlpost/util/logger"
	"github.com/lsulibraries/ldlpost/util/storage"
	"github.com/op/go-logging"
	stdlog "log"
	"sync/atomic"
)

/*
Context holds the items every post-processing run needs: the config,
the message and JSON logs, and the run-history DB if one is
configured. It also counts objects as they're processed.
*/
type Context struct {
	Config        *models.Config
	MessageLog    *logging.Logger
	JsonLog       *stdlog.Logger
	RunHistory    *storage.RunHistory
	pathToLogFile string
	pathToJsonLog string
	succeeded     int64
	failed        int64
}

/*
Creates and returns a new Context object. Returns an error if the
logs can't be opened, or if config.RunHistoryDB is set and the
database can't be opened.
*/
func NewContext(config *models.Config) (context *Context, err error) {
	context = &Context{
		Config:    config,
		succeeded: int64(0),
		failed:    int64(0),
	}
	context.MessageLog, context.pathToLogFile, err = logger.InitLogger(config)
	if err != nil {
		return nil, err
	}
	context.JsonLog, context.pathToJsonLog, err = logger.InitJsonLogger(config)
	if err != nil {
		return nil, err
	}
	if config.RunHistoryDB != "" {
		context.RunHistory, err = storage.NewRunHistory(config.RunHistoryDB)
		if err != nil {
			return nil, fmt.Errorf("Cannot open run history DB '%s': %v",
				config.RunHistoryDB, err)
		}
	}
	return context, nil
}

/*
NewDiscardContext returns a Context whose logs go nowhere and that
has no run history. Suitable for use in testing.
*/
func NewDiscardContext(config *models.Config) *Context {
	return &Context{
		Config:     config,
		MessageLog: logger.DiscardLogger("ldlpost_test"),
		JsonLog:    logger.DiscardJsonLogger(),
	}
}

// Close closes the run-history DB, if it's open.
func (context *Context) Close() {
	if context.RunHistory != nil {
		context.RunHistory.Close()
		context.RunHistory = nil
	}
}

// Returns the number of objects that were classified and related.
func (context *Context) Succeeded() int64 {
	return atomic.LoadInt64(&context.succeeded)
}

// Returns the number of objects that need review because they were
// unclassified, unrelated or matched more than one rule.
func (context *Context) Failed() int64 {
	return atomic.LoadInt64(&context.failed)
}

// Increases the count of cleanly processed objects by one.
func (context *Context) IncrementSucceeded() int64 {
	return atomic.AddInt64(&context.succeeded, 1)
}

// Increases the count of objects needing review by one.
func (context *Context) IncrementFailed() int64 {
	return atomic.AddInt64(&context.failed, 1)
}

// Returns the path to this process' log file
func (context *Context) PathToLogFile() string {
	return context.pathToLogFile
}

// Returns the path to this process' JSON log file
func (context *Context) PathToJsonLog() string {
	return context.pathToJsonLog
}

// Logs info about the number of objects that have succeeded and failed.
func (context *Context) LogStats() {
	context.MessageLog.Info("**STATS** Succeeded: %d, Failed: %d",
		context.Succeeded(), context.Failed())
}
