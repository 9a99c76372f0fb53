package main

import "github.com/papapumpkin/mealbook/cmd"

func main() {
	cmd.Execute()
}
