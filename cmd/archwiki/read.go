package main

import (
	"fmt"

	"github.com/fwojciec/archwiki"
	"github.com/fwojciec/archwiki/reader"
)

// Run executes the read-page command.
func (c *ReadPageCmd) Run(deps *Dependencies) error {
	format, err := archwiki.ParsePageFormat(c.Format)
	if err != nil {
		return err
	}

	opts := archwiki.ConvertOptions{ShowURLs: c.ShowURLs}
	if format == archwiki.PlainText {
		opts.StyleURL = deps.Highlight
	}

	content, err := deps.Reader.ReadPage(deps.Ctx, reader.Request{
		Page:        c.Page,
		Format:      format,
		Options:     opts,
		IgnoreCache: c.IgnoreCache,
	})
	if err != nil && content == "" {
		return err
	}

	fmt.Fprintln(deps.Stdout, content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: page was not cached: %s\n", archwiki.ErrorMessage(err))
	}
	return nil
}
