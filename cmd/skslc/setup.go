package main

import (
	"github.com/vs-ude/skslc/internal/backends/backend"
	"github.com/vs-ude/skslc/internal/backends/standalone"
)

func setupToolchain() backend.Toolchain {
	conf := &standalone.Config{}
	conf.Default()
	if flagToolchainConf != "" {
		backend.LoadConfig(flagToolchainConf, conf)
	}
	return standalone.NewToolchain(conf)
}
