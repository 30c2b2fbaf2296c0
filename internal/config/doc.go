// Package config loads textsubject settings from TOML.
//
// A configuration file looks like:
//
//	[logging]
//	level = "debug"
//
//	[subjects]
//	default = "subword"
//
//	[subjects.bracket]
//	inclusive = false
//
//	[subjects.word]
//	separators = '[\s,;:]+'
//	jump_phases = "dual"
//
// Every key is optional; missing keys keep the values of Default. A missing
// file is not an error. Environment variables override the file:
//
//   - TEXTSUBJECT_LOG_LEVEL sets logging.level
//   - TEXTSUBJECT_SUBJECT sets subjects.default
//
// Load validates the result: unknown keys, unknown subject names, log
// levels, jump phase types and separator patterns that do not compile are
// all reported before anything is built from the configuration.
package config
