// cmd/seqwin/main.go
package main

import (
	"seqwin/internal/app"
	"seqwin/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
