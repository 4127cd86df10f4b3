package main

import "github.com/KaramelBytes/invsearch/cmd"

func main() {
	cmd.Execute()
}
