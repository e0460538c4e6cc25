package main

import (
	"medical-scheduling-api/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := bootstrap.NewRootCommand().Execute(); err != nil {
		logrus.Fatalf("Command failed: %v", err)
	}
}
