package main

import (
	"fxdash/internal/app"
	"os"

	"github.com/sirupsen/logrus"
)

// @title fxdash API
// @version 1.0
// @description Historical exchange-rate series shaped for the dashboard chart, grid and CSV export.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
