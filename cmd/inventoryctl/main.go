package main

import "go-inventory-kardex/cmd/inventoryctl/commands"

func main() {
	commands.Execute()
}
