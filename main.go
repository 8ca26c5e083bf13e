package main

import (
	"net/http"

	"github.com/mcvglass/mcv/cmd"
	"github.com/mcvglass/mcv/internals/ownhttp"
)

func main() {
	// every plain http.Get in the codebase should send our user agent
	http.DefaultClient = ownhttp.New()

	cmd.Execute()
}
