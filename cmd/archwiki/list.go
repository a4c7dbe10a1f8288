package main

import (
	"fmt"
	"slices"

	"github.com/fwojciec/archwiki"
)

const emptyCatalogueHint = "No pages found. Run 'archwiki sync-wiki' to download the catalogue."

// Run executes the list-pages command.
func (c *ListPagesCmd) Run(deps *Dependencies) error {
	catalogue, err := deps.Catalogue.Load(deps.Ctx)
	if err != nil {
		return err
	}
	if len(catalogue) == 0 {
		fmt.Fprintln(deps.Stdout, emptyCatalogueHint)
		return nil
	}
	if len(c.Categories) > 0 {
		catalogue = catalogue.Filter(c.Categories)
	}

	if c.Flatten {
		for _, title := range uniqueSorted(catalogue.Titles()) {
			fmt.Fprintln(deps.Stdout, title)
		}
		return nil
	}

	for _, name := range catalogue.Categories() {
		fmt.Fprintf(deps.Stdout, "%s:\n", name)
		for _, title := range catalogue[name] {
			fmt.Fprintf(deps.Stdout, "  %s\n", title)
		}
	}
	return nil
}

// Run executes the list-categories command.
func (c *ListCategoriesCmd) Run(deps *Dependencies) error {
	catalogue, err := deps.Catalogue.Load(deps.Ctx)
	if err != nil {
		return err
	}
	if len(catalogue) == 0 {
		fmt.Fprintln(deps.Stdout, emptyCatalogueHint)
		return nil
	}
	for _, name := range catalogue.Categories() {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}

// Run executes the list-languages command.
func (c *ListLanguagesCmd) Run(deps *Dependencies) error {
	langs, err := deps.Languages.Languages(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, archwiki.FormatLanguageTable(langs))
	return nil
}

func uniqueSorted(titles []string) []string {
	sorted := slices.Clone(titles)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
