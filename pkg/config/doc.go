// Package config loads pattern files (YAML or JSON) describing initial grids.
package config
