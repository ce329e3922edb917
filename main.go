package main

import "github.com/vietdv277/vpcfinder/cmd"

func main() {
	cmd.Execute()
}
