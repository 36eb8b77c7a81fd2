// Package logger builds *slog.Logger values for gymnexus.
//
// New takes functional options for format, level and output, plus
// ContextExtractor callbacks that append request-scoped attributes (gym id,
// admin id, request id) to every record logged with a context:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//		logger.WithContextExtractors(
//			tenant.LoggerExtractor(),
//			admin.LoggerExtractor(),
//		),
//	)
//
//	log.InfoContext(ctx, "suspension sweep finished",
//		logger.Component("sweeper"),
//		logger.Duration(time.Since(start)),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Error returns an empty attribute for nil errors so it can be passed
// unconditionally.
package logger
