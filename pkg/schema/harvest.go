package schema

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
)

// ErrNoElements signals that a run extracted nothing at all, which
// almost always means the schema format changed under us.
var ErrNoElements = errors.New("no elements extracted from schema")

// HarvestOptions control how extracted descriptors are reconciled
// with the descriptor directory. None of them alter parsing itself.
type HarvestOptions struct {
	// Force merges extractions into existing descriptors instead of
	// skipping them.
	Force bool
	// DryRun computes everything but writes nothing.
	DryRun bool
	// Offline restricts fetching to already cached schema files.
	Offline bool
}

// HarvestSummary counts the outcome per descriptor.
type HarvestSummary struct {
	Created int
	Updated int
	Skipped int
}

// Harvester drives the full extraction pipeline: fetch, parse,
// relationship resolution and the merge-with-existing write pass.
type Harvester struct {
	parser  *Parser
	fetcher *Fetcher
	store   *DescriptorStore
	opts    HarvestOptions

	elements map[string]*Element
}

// NewHarvester wires a harvester from its collaborators.
func NewHarvester(parser *Parser, fetcher *Fetcher, store *DescriptorStore, opts HarvestOptions) *Harvester {
	return &Harvester{
		parser:   parser,
		fetcher:  fetcher,
		store:    store,
		opts:     opts,
		elements: make(map[string]*Element),
	}
}

// HarvestURLs fetches and parses each namespace's schema. A namespace
// whose fetch fails (after the fallback, if configured) is skipped
// with a warning; degraded output beats no output. Parse failures on
// fetched documents are fatal.
func (h *Harvester) HarvestURLs(urls map[string]string, fallbacks map[string]string) error {
	namespaces := make([]string, 0, len(urls))
	for namespace := range urls {
		namespaces = append(namespaces, namespace)
	}
	sort.Strings(namespaces)

	for _, namespace := range namespaces {
		url := urls[namespace]
		var path string
		if h.opts.Offline {
			path = h.fetcher.CachedPath(url)
			if _, err := os.Stat(path); err != nil {
				log.Warn().Str("namespace", namespace).Msg("Skipping namespace, schema not cached")
				continue
			}
		} else {
			var err error
			path, err = h.fetcher.FetchWithFallback(url, fallbacks[namespace])
			if err != nil {
				log.Warn().Err(err).Str("namespace", namespace).Msg("Skipping namespace, schema could not be fetched")
				continue
			}
		}

		if err := h.HarvestFile(path, namespace); err != nil {
			return err
		}
	}
	return nil
}

// HarvestFile parses one local schema file into the running element
// set. A document that fails to parse aborts the run.
func (h *Harvester) HarvestFile(path string, namespace string) error {
	result, err := h.parser.ParseFile(path, namespace)
	if err != nil {
		return fmt.Errorf("schema %s: %w", path, err)
	}
	log.Debug().Str("namespace", namespace).Int("elements", len(result.Elements)).Msg("Parsed schema")
	for name, element := range result.Elements {
		h.elements[name] = element
	}
	return nil
}

// Elements returns the extracted descriptors collected so far.
func (h *Harvester) Elements() map[string]*Element {
	return h.elements
}

// Reconcile resolves relationships and writes every descriptor,
// merging with existing files per the HarvestOptions. Returns
// ErrNoElements when nothing was extracted.
func (h *Harvester) Reconcile() (HarvestSummary, error) {
	var summary HarvestSummary
	if len(h.elements) == 0 {
		return summary, ErrNoElements
	}

	ResolveRelationships(h.elements)

	names := make([]string, 0, len(h.elements))
	for name := range h.elements {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		element := *h.elements[name]

		existing, ok := h.store.LoadExisting(name)
		if ok {
			if !h.opts.Force {
				summary.Skipped++
				log.Debug().Str("element", name).Msg("Skipped existing descriptor")
				continue
			}
			merged := Merge(existing, element)
			if !h.opts.DryRun {
				if err := h.store.Write(merged); err != nil {
					return summary, err
				}
			}
			summary.Updated++
			log.Debug().Str("element", name).Msg("Updated descriptor")
			continue
		}

		if !h.opts.DryRun {
			if err := h.store.Write(element); err != nil {
				return summary, err
			}
		}
		summary.Created++
		log.Debug().Str("element", name).Msg("Created descriptor")
	}

	return summary, nil
}
