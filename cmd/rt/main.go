package main

import "github.com/jubams/ramadan-tracker/cmd/rt/root"

func main() {
	root.Execute()
}
