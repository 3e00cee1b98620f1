package main

import (
	"github.com/lokesh74503/Hospital-management-system/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewPatientService()
	if err != nil {
		logrus.Fatalf("Failed to initialize patient service: %v", err)
	}

	app.Run()
}
