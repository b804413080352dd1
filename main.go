package main

import "github.com/frahmantamala/ops-dashboard/cmd"

func main() {
	cmd.Execute()
}
