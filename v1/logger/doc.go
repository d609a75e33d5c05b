// Package logger provides structured logging functionality for the vectorstore
// packages.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: the contract other packages depend on
//   - LoggerClient struct: Zap-backed implementation of Logger
//   - NewLoggerClient constructor: returns *LoggerClient
//   - FX module: provides both *LoggerClient and Logger
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		ServiceName:   "vectorstore",
//		EnableTracing: true,
//	})
//
//	log.Info("Index bound", nil, map[string]interface{}{
//		"index": "vectorstore",
//	})
//
//	// trace_id and span_id are added when ctx carries an active span
//	log.DebugWithContext(ctx, "Query issued", nil, map[string]interface{}{
//		"namespace": "docs",
//		"top_k":     4,
//	})
//
// Tests can wrap their own Zap logger:
//
//	core, logs := observer.New(zap.DebugLevel)
//	log := logger.NewFromZap(zap.New(core), false)
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_SERVICE_NAME=vectorstore # value of the "service" field
//	LOGGER_ENABLE_TRACING=true      # add trace_id/span_id to *WithContext entries
//
// # Thread Safety
//
// All methods on LoggerClient are safe for concurrent use.
package logger
