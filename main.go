package main

import "ticket-desk.com/ticket-desk/cmd"

func main() {
	cmd.Execute()
}
