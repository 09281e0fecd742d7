/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/mdelaunay/wigorview/cmd"

func main() {
	cmd.Execute()
}
