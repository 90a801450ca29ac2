package main

import "github.com/bornholm/cocomo/internal/command"

func main() {
	command.Execute()
}
