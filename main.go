package main

import "github.com/kursuslab/kursus/cmd"

func main() {
	cmd.Execute()
}
