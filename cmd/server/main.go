package main

import "hradmin/internal/app/server"

func main() {
	server.Run()
}
