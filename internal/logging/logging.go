// Package logging builds the *zap.SugaredLogger the CLI commands use for
// optional diagnostic tracing. The library packages take no logger.
package logging

import "go.uber.org/zap"

// New builds a development logger (human-readable, debug level) when
// verbose is set, or a production logger (JSON, info level) otherwise.
func New(verbose bool) (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
