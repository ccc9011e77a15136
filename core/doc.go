// Package core defines the severity levels shared by every other
// package in fastlog.
//
// Level is deliberately small: DEBUG, INFO, ERROR, FATAL, in that
// order. There is no WARN or PANIC here — this is the hard core of an
// async logging pipeline, not a general-purpose structured-logging
// framework, and the level set matches exactly what the producer/
// consumer wire format needs to distinguish.
package core
