// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file, a .env file and the process
// environment, validated per section and handed to the rest of the
// application as a single RestConfig value.
package config
