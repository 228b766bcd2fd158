package main

import (
	"fxwidget/internal/app"

	"github.com/sirupsen/logrus"
)

//go:generate swag init --dir .,../internal --generalInfo main.go --output ../docs --parseDependency

// @title fxwidget API
// @version 1.0
// @description Currency conversion widget backend: live rates, conversion, historical rate and favorite pairs.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application stopped")
	}
}
