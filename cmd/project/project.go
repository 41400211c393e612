/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project loads the token store the CLI commands work on.
package project

import (
	"context"

	"github.com/spf13/viper"

	"bennypowers.dev/mond/config"
	"bennypowers.dev/mond/load"
	"bennypowers.dev/mond/token"
)

// Project is a loaded token store with its effective prefix.
type Project struct {
	*load.Result

	// Prefix is the --prefix flag, else the configured prefix.
	Prefix string
}

// Options builds load options from the root command's bound flags.
func Options() load.Options {
	var files []config.FileSpec
	for _, path := range viper.GetStringSlice("tokens") {
		files = append(files, config.FileSpec{Path: path})
	}
	return load.Options{
		Root:       viper.GetString("root"),
		Files:      files,
		NoDefaults: viper.GetBool("no-defaults"),
		Fetcher:    load.NewHTTPFetcher(load.DefaultMaxSize),
	}
}

// Load loads the project selected by the bound flags.
func Load(ctx context.Context) (*Project, error) {
	result, err := load.Load(ctx, Options())
	if err != nil {
		return nil, err
	}

	prefix := viper.GetString("prefix")
	if prefix == "" {
		prefix = result.Config.Prefix
	}
	if prefix == "" {
		prefix = token.DefaultPrefix
	}
	return &Project{Result: result, Prefix: prefix}, nil
}
