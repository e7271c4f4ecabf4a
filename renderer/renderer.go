// Package renderer renders inventory records as text and markdown.
package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/inventory"
)

// Card is a single record along with its ordinal in the store.
type Card struct {
	Ordinal int
	inventory.Record
}

// Inventory is the content of a store, in file order.
type Inventory struct {
	File  string
	Cards []Card
}

// Count returns the number of records.
func (inv *Inventory) Count() int { return len(inv.Cards) }

// Units returns the total quantity on hand.
func (inv *Inventory) Units() int64 {
	var total int64
	for _, c := range inv.Cards {
		total += c.Quantity
	}
	return total
}

// StockValue returns the retail value of all quantities on hand.
func (inv *Inventory) StockValue(currency string) inventory.Money {
	total := inventory.M(0, currency)
	for _, c := range inv.Cards {
		total = total.Add(c.StockValue())
	}
	return total
}

// RenderRecord renders a record card the way the console displays it.
func RenderRecord(c Card) string {
	return renderTemplate("record", "record.md", nil, c)
}

// RenderInventory renders the whole inventory to a markdown string.
func RenderInventory(inv *Inventory, currency string) string {
	partials := map[string]string{
		"inventory_title":  "inventory_title.md",
		"inventory_rows":   "inventory_rows.md",
		"inventory_totals": "inventory_totals.md",
	}
	data := struct {
		*Inventory
		Currency string
	}{inv, currency}
	return renderTemplate("inventory", "inventory.md", partials, data)
}

// cell escapes a value so that it fits in a markdown table cell.
func cell(v any) string {
	s := fmt.Sprint(v)
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "|", `\|`)
}

var funcs = template.FuncMap{
	"cell": cell,
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
