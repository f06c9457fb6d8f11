package main

import (
	"hartlog/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
