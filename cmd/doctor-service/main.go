package main

import (
	"github.com/lokesh74503/Hospital-management-system/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewDoctorService()
	if err != nil {
		logrus.Fatalf("Failed to initialize doctor service: %v", err)
	}

	app.Run()
}
