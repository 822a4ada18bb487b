package main

import (
	"github.com/sirupsen/logrus"

	"github.com/cldprgm/Network-vibe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
