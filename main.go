package main

import "ormcheatsheet/cmd"

// @title           ormcheatsheet
// @version         1.0
// @description     ORM query cheatsheet over a sample insurance policies and claims dataset

// @BasePath  /api

func main() {
	cmd.Execute()
}
