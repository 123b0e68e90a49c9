// Package main is the entry point for guidctl.
package main

import (
	_ "go.uber.org/automaxprocs/maxprocs"

	"github.com/VitamPoc/VitamCommon/internal/guidctl"
)

func main() {
	guidctl.NewApp().Run()
}
