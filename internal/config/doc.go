// Package config loads htmlscrub configuration from local and global YAML
// files. It is internal; CLI code applies flag > local > global precedence and
// maps the result into engine configuration.
package config
