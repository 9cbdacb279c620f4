// Package config loads taml-html settings from built-in defaults, the user
// configuration file, an explicit file and TAML_* environment variables.
package config
