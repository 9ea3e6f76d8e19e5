// main.go - advopt-example shows how to declare an option catalog and
// drive the three-phase parse for a small URL-fetching tool.
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-advopt/advopt"
	"github.com/go-advopt/advopt/pkg/catalog"
)

const version = "0.1.0"

func main() {
	env := &advopt.Environment{
		ProjectName:             "advopt-example",
		EnvironmentVariableName: "ADVOPT_EXAMPLE_OPTS",
		ConfigurationFilename:   "advopt-example.conf",
		ConfigurationDirectories: []string{
			"/etc/advopt-example",
		},
		Flags:      catalog.SystemOptions,
		HelpHeader: "advopt-example: fetch one or more URLs\n\nusage: advopt-example [options] URL ...",
		Version:    version,
		Options: []catalog.OptionInfo{
			{
				Name:  "cacert",
				Flags: catalog.AllSources | catalog.Required,
				Help:  "path to the CA certificate bundle",
			},
			{
				Name:      "cookiejar",
				ShortName: 'c',
				Flags:     catalog.AllSources | catalog.Required,
				Help:      "path of the file containing cookie data",
			},
			{
				Name:      "verbose",
				ShortName: 'v',
				Flags:     catalog.AllSources | catalog.Flag,
				Help:      "run in verbose mode",
			},
			{
				Name:  catalog.DefaultOptionName,
				Flags: catalog.CommandLine | catalog.Multiple | catalog.Required | catalog.DefaultOption,
				Help:  "the URL(s) to fetch",
			},
		},
	}

	g, err := advopt.NewAndParse(env, os.Args, advopt.WithErrorHandling(advopt.ExitOnError))
	var exitReq *advopt.ExitRequest
	if errors.As(err, &exitReq) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if g.IsDefined("cacert") {
		cacert, _ := g.GetString("cacert", 0)
		fmt.Printf("cacert: %s\n", cacert)
	}
	if g.IsDefined("cookiejar") {
		cookiejar, _ := g.GetString("cookiejar", 0)
		fmt.Printf("cookiejar: %s\n", cookiejar)
	}
	fmt.Printf("verbose: %v\n", g.IsDefined("verbose"))

	urls := make([]string, g.Size(catalog.DefaultOptionName))
	for i := range urls {
		urls[i], _ = g.GetString(catalog.DefaultOptionName, i)
	}
	fmt.Printf("%v\n", urls)
}
