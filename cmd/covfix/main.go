// cmd/covfix/main.go
package main

import (
	"covfix/internal/app"
	"covfix/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
