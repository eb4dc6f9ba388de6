// Package config loads the analyser's run configuration from YAML: the
// sentinel operator name that marks a graph input, and the diagnostic log
// level, using the same gopkg.in/yaml.v3 decoding style the rest of the
// retrieved pack reaches for over hand-rolled parsing.
package config
