package main

import "timesheet/cmd"

func main() {
	cmd.Execute()
}
