package main

import (
	"github.com/wixkit/wixkit/cmd"
	"github.com/wixkit/wixkit/internal/config"
)

func main() {
	config.LoadConfig()
	cmd.Execute()
}
