package main

import (
	"fmt"

	scrivhttp "github.com/scrivtools/scriv/http"
)

// WebCmd is the "web" subcommand.
type WebCmd struct {
	Host string `default:"127.0.0.1" help:"Host to bind"`
	Port int    `default:"8080" help:"Port to bind"`
}

// Run executes the web command.
func (c *WebCmd) Run(deps *Dependencies) error {
	api := scrivhttp.NewAPI(deps.Open, deps.Finder, deps.Catalog, scrivhttp.ChatterFunc(deps.Chatter), deps.Config, deps.ConfigPath)
	srv := scrivhttp.NewServer(api, deps.Logger)

	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	fmt.Fprintf(deps.Stdout, "Serving the web API at http://%s\n", addr)
	return srv.Run(addr)
}
