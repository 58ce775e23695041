package main

import (
	"os"

	"github.com/yashsurani047/workmanagement1-sub000/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
