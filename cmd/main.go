package main

import (
	"bankbot-actions/app"
)

func main() {
	app.Run()
}
