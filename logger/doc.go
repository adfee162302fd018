// Package logger provides structured logging for seqkit programs using
// zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers carrying structured fields. Field keys used by
// the sequence adaptors in package observe are defined here.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
// Init registers a logger for each of the config, plan and observe
// components. Get returns it, or a fresh component logger for other names.
//
//	log := logger.Get(logger.ComponentPlan)
//	log.Info("evaluated", logger.Fields(logger.FieldPlan, "evens", logger.FieldElements, 3))
package logger
