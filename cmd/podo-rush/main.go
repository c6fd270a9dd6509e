package main

import "github.com/appengine-ltd/podo-rush/cmd/podo-rush/root"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root.Execute(root.BuildInfo{Version: version, Commit: commit, Date: date})
}
