package main

import (
	"log"

	"github.com/Muneeb10/AK-Fashion/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
