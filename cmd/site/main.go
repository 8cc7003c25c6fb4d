package main

import (
	"os"
)

// @title           Ping's Lab Site API
// @version         1.0
// @description     Contact and product-notify submissions for the Ping's Lab website.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
