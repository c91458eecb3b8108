// Package logger builds log/slog loggers for the otec CLI.
//
// New applies functional options over a production default (JSON, info
// level, stderr) and wraps the handler so attributes can be pulled from the
// context of every record:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "otec"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "import finished", logger.Component("importer"), logger.Count(42))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
