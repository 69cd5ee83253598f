package main

import (
	"github.com/Hari-Shankar-Karthik/masklasso/cmd/masklasso/cmd"
)

func main() {
	cmd.Execute()
}
