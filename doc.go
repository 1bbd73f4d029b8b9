/*
Package carve is a content aware image resize library: it rescales the source
image to a smaller target size by repeatedly removing connected paths of low
importance pixels (seams), preserving the visually relevant regions better
than uniform scaling would.

The package provides a command line interface, supporting various flags for different types of rescaling operations.
To check the supported commands type:

	$ carve --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"

		"github.com/contentaware/carve"
	)

	func main() {
		p := &carve.Processor{
			NewWidth:  800,
			NewHeight: 600,
			Strategy:  carve.Optimal,
		}

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error rescaling image: %s", err.Error())
		}
	}
*/
package carve
