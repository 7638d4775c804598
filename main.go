package main

import "thaitanloi365/go-face-focus/cmd"

func main() {
	cmd.Execute()
}
