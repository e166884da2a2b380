// Package logging builds the zap logger shared by the frisbee
// subcommands.
package logging

import "go.uber.org/zap"

func New() *zap.SugaredLogger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
