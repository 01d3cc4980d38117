package main

import "kurs/cmd"

func main() {
	cmd.Execute()
}
