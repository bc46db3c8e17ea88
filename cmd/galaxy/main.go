// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command galaxy shows a portfolio as an interactive 3D galaxy of
// topics, each orbited by its items.
package main

//go:generate core generate -add-types -add-funcs

import (
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"github.com/orbitfolio/galaxy/content"
	"github.com/orbitfolio/galaxy/galaxy"
)

// Config is the configuration information for the galaxy command.
type Config struct {

	// Catalog is the TOML or YAML file with the topics and items to show.
	// If it is empty, the built-in catalog is shown.
	Catalog string `posarg:"0" required:"-"`

	// Watch reloads the catalog whenever its file changes.
	Watch bool `flag:"w,watch"`

	// NoIntro skips the greeting intro.
	NoIntro bool `flag:"no-intro"`

	// Seed seeds the star field.
	Seed int64 `default:"1"`

	// Stars is the number of stars in the background.
	Stars int `default:"400"`

	// Rate is the smoothing rate of the camera, in 1/s.
	// Higher values make the camera arrive sooner.
	Rate float32 `default:"2.5"`

	// Step is the hold time of each greeting in the intro, in milliseconds.
	Step int `default:"400"`

	// Dump writes the catalog to the given TOML or YAML file and exits
	// without showing the galaxy. It converts catalogs between formats.
	Dump string `flag:"dump"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("galaxy", "An interactive 3D portfolio galaxy.")
	opts.DefaultFiles = []string{"galaxy.toml"}
	cli.Run(opts, &Config{}, Run)
}

// Run shows the galaxy for the configured catalog.
func Run(c *Config) error { //cli:cmd -root
	cat := content.Default()
	if c.Catalog != "" {
		var err error
		cat, err = content.Open(c.Catalog)
		if err != nil {
			return err
		}
	}
	if c.Dump != "" {
		return content.Save(cat, c.Dump)
	}
	w, err := galaxy.NewWorld(cat, options(c))
	if err != nil {
		return err
	}
	a := galaxy.NewApp(w)
	a.Intro = !c.NoIntro
	if c.Step > 0 {
		a.Step = time.Duration(c.Step) * time.Millisecond
	}
	b := core.NewBody("galaxy").SetTitle(cat.Name)
	a.Build(b)
	if c.Watch && c.Catalog != "" {
		if err := a.WatchCatalog(c.Catalog); err != nil {
			return err
		}
	}
	b.RunMainWindow()
	return nil
}

// options returns the world options for the given config.
func options(c *Config) galaxy.Options {
	opts := galaxy.DefaultOptions()
	opts.Seed = c.Seed
	if c.Stars >= 0 {
		opts.Stars = c.Stars
	}
	if c.Rate > 0 {
		opts.Rate = c.Rate
	}
	return opts
}
