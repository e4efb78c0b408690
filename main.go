package main

import "github.com/astraclean/offerte_backend/cmd"

func main() {
	cmd.Execute()
}
