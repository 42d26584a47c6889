/*
Copyright © 2026 The Cosmos Authors
*/
package main

import "github.com/phukemrunal322-hue/cosmos-sub003/cmd"

func main() {
	cmd.Execute()
}
