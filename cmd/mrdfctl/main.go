// mrdfctl inspects and edits MRDF record files from the command line.
package main

func main() {
	execute()
}
