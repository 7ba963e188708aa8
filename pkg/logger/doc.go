// Package logger builds configured *slog.Logger values for the save
// pipeline's structured logging.
//
// New applies functional options over production-safe defaults (JSON
// encoding, info level, stdout) and returns a standard slog logger, so
// nothing else in the module depends on this package: the model layer
// accepts any *slog.Logger.
//
//	log := logger.New(logger.WithDevelopment(), logger.WithAttr(slog.String("app", "catalog")))
//	m := model.New(sch, store, model.WithLogger(log))
package logger
