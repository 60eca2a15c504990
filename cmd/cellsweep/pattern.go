package main

import (
	"fmt"

	"github.com/aretw0/cellsweep/pkg/config"
	"github.com/aretw0/cellsweep/pkg/registry"
)

// resolvePattern picks the pattern file when given, else the named built-in.
func resolvePattern(reg *registry.Registry, name, file string) (config.Pattern, error) {
	if file != "" {
		p, err := config.LoadPattern(file)
		if err != nil {
			return config.Pattern{}, fmt.Errorf("load %s: %w", file, err)
		}
		return p, nil
	}
	return reg.Get(name)
}
