// Package logger provides structured logging for apiruntime clients using
// zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. Loggers enriched with a
// context pick up the OpenTelemetry trace and span IDs of the active span.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("client")
//	log.Debug("request performed", logger.Fields("endpoint", "getPet", "status", 200))
package logger
