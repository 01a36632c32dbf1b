package main

import "blogapi/app/cli"

func main() {
	cli.Execute()
}
