package main

import "github.com/vesotel/worklog-management/cmd"

func main() {
	cmd.Execute()
}
