package main

import "github.com/jorgeortega123/megamobilier-test-frontend/internal/app"

func main() {
	app.Run()
}
