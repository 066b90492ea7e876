package main

import (
	"os"

	"github.com/skillsift/skillsift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
