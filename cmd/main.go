package main

import cmd "github.com/kerbaras/perusahaan/cmd/perusahaan"

func main() {
	cmd.Execute()
}
