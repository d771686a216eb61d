package main

import "github.com/EgemenErin/Muscledia/cmd/muscledia/root"

func main() {
	root.Execute()
}
