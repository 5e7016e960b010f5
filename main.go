package main

import "github.com/saifuldipak/eoffice/cmd"

func main() {
	cmd.Execute()
}
