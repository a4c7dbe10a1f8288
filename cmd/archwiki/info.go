package main

import (
	"fmt"
	"time"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	syncedAt, err := deps.Catalogue.SyncedAt(deps.Ctx)
	if err != nil {
		return err
	}

	last := "never"
	if !syncedAt.IsZero() {
		last = syncedAt.Local().Format(time.RFC1123)
	}

	fmt.Fprintf(deps.Stdout, "Cache directory:   %s\n", deps.Config.CacheDir)
	fmt.Fprintf(deps.Stdout, "Data directory:    %s\n", deps.Config.DataDir)
	fmt.Fprintf(deps.Stdout, "Catalogue:         %s (%s)\n", deps.Config.CataloguePath(), deps.Config.CatalogueBackend)
	fmt.Fprintf(deps.Stdout, "Last synced:       %s\n", last)
	return nil
}
