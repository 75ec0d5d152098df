// Package config manages user-level settings stored at ~/.pagegen/config.yaml.
// It provides functions to load, read, and write configuration keys such as the
// project root the navigator starts from and the sentinel folder name used to
// compute markdown reference paths.
package config
