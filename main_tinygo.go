//go:build tinygo

package main

import (
	"cubespin/app"
	"cubespin/hal"
	"cubespin/internal/config"
)

func main() {
	h := hal.New()
	cfg := config.Default()
	appCfg, err := app.ConfigFrom(cfg)
	if err != nil {
		h.Logger().WriteLineString("cubespin: " + err.Error())
		select {}
	}
	app.Run(h, appCfg, cfg.Render.Hz)
}
