package main

import "github.com/zhubert/chatview/cmd"

func main() {
	cmd.Execute()
}
