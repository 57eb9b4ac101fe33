// Command tnguide is the Tamil Nadu travel guide.
package main

import "github.com/papapumpkin/tnguide/cmd"

func main() {
	cmd.Execute()
}
