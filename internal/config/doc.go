// Package config loads the blackivy runtime configuration.
//
// Configuration comes from a YAML file (blackivy.yaml, searched from the
// working directory upwards), an optional .env file, and BLACKIVY_*
// environment variables, in increasing order of precedence. The result
// selects the submission backend, the HTTP listen address and the metrics
// output.
package config
