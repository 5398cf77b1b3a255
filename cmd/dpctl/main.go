package main

import (
	"github.com/danmuck/dpctl/cmd/dpctl/cmd"
)

func main() {
	cmd.Execute()
}
