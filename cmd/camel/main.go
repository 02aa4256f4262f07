// Command camel runs a routing context and serves its REST service registry
package main

import (
	"os"

	"github.com/dhananjayvscot/camel/logger"
)

var version = "latest"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
