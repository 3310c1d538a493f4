package main

import "github.com/DCTR-QUASAR/Hytale-Playtime/cmd/hytale-playtime/commands"

func main() {
	commands.Execute()
}
