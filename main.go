package main

import (
	"github.com/mj1618/ymsp/cmd"
	_ "github.com/mj1618/ymsp/internal/platform/yabai"
)

func main() {
	cmd.Execute()
}
