// Package report renders the output of a pipeline run.
//
// Three renderers share the same ordering contract: audit entries within an
// inventory appear in resolution order, and inventories appear in marker
// order. The renderers never decide anything - they present what the
// pipeline already decided.
//
//   - [WriteText] produces the plain three-section report (processing log,
//     item list, storage summary), suitable for files and pipes.
//   - [WriteStyled] produces the same report with terminal colors.
//   - [WriteJSON] produces a machine-readable document.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/stowage-dev/stowage/pkg/pipeline"
)

// WriteText writes the plain text report to w.
func WriteText(w io.Writer, result *pipeline.Result) error {
	fmt.Fprintln(w, "Processing Log:")
	for _, filled := range result.Inventories {
		for _, entry := range filled.Log {
			fmt.Fprintln(w, entry)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Item List:")
	for _, item := range result.Catalog.Items() {
		fmt.Fprintf(w, "  %2d %s\n", item.ID, item.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Storage Summary:")
	for _, filled := range result.Inventories {
		fmt.Fprintln(w, filled.Inventory)
	}
	return nil
}

// jsonReport is the machine-readable report layout.
type jsonReport struct {
	RunID       string          `json:"run_id"`
	Items       []jsonItem      `json:"items"`
	Inventories []jsonInventory `json:"inventories"`
}

type jsonItem struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight,omitempty"`
}

type jsonInventory struct {
	Capacity int              `json:"capacity"`
	Occupied int              `json:"occupied"`
	Log      []pipeline.Entry `json:"log"`
	Stacks   []jsonStack      `json:"stacks"`
}

type jsonStack struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Size     int    `json:"size"`
}

// WriteJSON writes the machine-readable report to w.
func WriteJSON(w io.Writer, result *pipeline.Result) error {
	doc := jsonReport{
		RunID:       result.RunID,
		Items:       []jsonItem{},
		Inventories: []jsonInventory{},
	}
	for _, item := range result.Catalog.Items() {
		doc.Items = append(doc.Items, jsonItem{ID: item.ID, Name: item.Name, Weight: item.Weight})
	}
	for _, filled := range result.Inventories {
		inv := jsonInventory{
			Capacity: filled.Inventory.Capacity(),
			Occupied: filled.Inventory.Occupied(),
			Log:      filled.Log,
			Stacks:   []jsonStack{},
		}
		if inv.Log == nil {
			inv.Log = []pipeline.Entry{}
		}
		for _, s := range filled.Inventory.Stacks() {
			inv.Stacks = append(inv.Stacks, jsonStack{
				ItemID:   s.Item.ID,
				Name:     s.Item.Name,
				Quantity: s.Quantity,
				Size:     s.Size(),
			})
		}
		doc.Inventories = append(doc.Inventories, inv)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
