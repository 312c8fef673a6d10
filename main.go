package main

import "github.com/htmlscrub/htmlscrub/cmd/htmlscrub"

func main() { htmlscrub.Execute() }
