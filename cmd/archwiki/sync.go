package main

import (
	"fmt"

	"github.com/fwojciec/archwiki"
	"github.com/fwojciec/archwiki/crawl"
	"gopkg.in/yaml.v2"
)

// Run executes the sync-wiki command.
func (c *SyncWikiCmd) Run(deps *Dependencies) error {
	if c.Workers > 0 {
		deps.Syncer.Concurrency = c.Workers
	}

	progress := func(event crawl.ProgressEvent) {
		if c.HideProgress {
			return
		}
		fmt.Fprintln(deps.Stderr, crawl.FormatProgress(event))
	}

	result, err := deps.Syncer.Sync(deps.Ctx, progress)
	if err != nil {
		return err
	}

	for _, name := range result.Failed {
		fmt.Fprintf(deps.Stderr, "  failed: %s\n", name)
	}

	if c.Print {
		data, err := yaml.Marshal(result.Catalogue)
		if err != nil {
			return archwiki.Errorf(archwiki.ESERIALIZE, "encode catalogue: %v", err)
		}
		fmt.Fprint(deps.Stdout, string(data))
		return nil
	}

	if err := deps.Catalogue.Save(deps.Ctx, result.Catalogue); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Synced %s\n", crawl.FormatSummary(result))
	return nil
}
