package main

import (
	"log"
	"os"
)

func main() {
	s := loadSettings()

	if err := newCLI(s).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
