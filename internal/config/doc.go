// Package config loads layered YAML configuration for dbgvis: built-in
// defaults, then ~/.config/dbgvis/config.yaml, then ./.dbgvis/config.yaml,
// later layers overriding earlier ones field by field.
package config
