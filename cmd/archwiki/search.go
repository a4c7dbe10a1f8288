package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/archwiki"
	"github.com/fwojciec/archwiki/goquery"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	lang := c.Lang
	if lang == "" {
		lang = deps.Config.Lang
	}

	if c.Text {
		return c.textSearch(deps, lang)
	}

	resp, err := deps.Search.OpenSearch(deps.Ctx, c.Query, lang, c.Limit)
	if err != nil {
		return err
	}
	results, err := archwiki.ParseOpenSearch(resp)
	if err != nil {
		return err
	}

	if c.JSON || c.JSONRaw {
		return c.printJSON(deps, results)
	}
	fmt.Fprintln(deps.Stdout, archwiki.FormatOpenSearchTable(results))
	return nil
}

func (c *SearchCmd) textSearch(deps *Dependencies, lang string) error {
	items, err := deps.Search.TextSearch(deps.Ctx, c.Query, lang, c.Limit)
	if err != nil {
		return err
	}

	var style func(string) string
	if !c.JSON && !c.JSONRaw {
		style = deps.Highlight
	}
	items, err = goquery.PrettifySnippets(items, c.Query, style)
	if err != nil {
		return err
	}

	if c.JSON || c.JSONRaw {
		return c.printJSON(deps, items)
	}
	fmt.Fprintln(deps.Stdout, archwiki.FormatTextSearchTable(items))
	return nil
}

func (c *SearchCmd) printJSON(deps *Dependencies, v any) error {
	var data []byte
	var err error
	if c.JSONRaw {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return archwiki.Errorf(archwiki.ESERIALIZE, "encode results: %v", err)
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}
