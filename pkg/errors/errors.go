package errors

import "errors"

// ErrFilesNeedUpdate is returned in check mode when at least one file would be rewritten
var ErrFilesNeedUpdate = errors.New("files need import updates")

// Error message constants for the visual-editor-imports application
const (
	// File processing errors
	ErrMsgFailedToReadFile       = "failed to read file"
	ErrMsgFailedToWriteFile      = "failed to write file"
	ErrMsgFailedToResolveModule  = "failed to resolve bindings module"
	ErrMsgFailedToRenderDiff     = "failed to render diff"
	ErrMsgFailedToFindFiles      = "failed to find source files in directory"
	ErrMsgFailedToGetWorkingDir  = "failed to get current working directory"
	ErrMsgFailedToLoadConfig     = "failed to load config"
	ErrMsgInvalidHelper          = "helper must be a valid identifier"
	ErrMsgEmptyBindingsModule    = "bindings module must not be empty"
	ErrMsgFailedToBindFlag       = "failed to bind flag"
	ErrMsgFailedToReadConfigFile = "failed to read config file"

	// Log messages
	LogMsgSkipped     = "helper not used, skipping"
	LogMsgProcessed   = "processed file"
	LogMsgNeedsUpdate = "file needs import update"
	LogMsgFoundFiles  = "found source files"
	LogMsgSummary     = "run complete"
)
