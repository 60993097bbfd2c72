package rdf

import (
	"github.com/lsulibraries/ldlpost/constants"
	"github.com/lsulibraries/ldlpost/models"
)

// GroupItems splits the flat statement sequence into one Item per
// digital object. Each RELS-EXT document starts with an RDF element,
// so an RDF statement starts a new Item whenever the Item being built
// already holds more than one statement. The RDF statement that closes
// an Item is also kept as that Item's last statement, and the
// positional rules that count from the end of an Item rely on that.
// Statements after the last RDF delimiter still make a final Item.
// Empty input yields no Items.
func GroupItems(statements []*models.Statement) []*models.Item {
	items := make([]*models.Item, 0)
	group := make([]*models.Statement, 0)
	for _, statement := range statements {
		group = append(group, statement)
		if statement.Name == constants.RelRDF && len(group) > 1 {
			items = append(items, &models.Item{
				Index:      len(items),
				Statements: group,
			})
			group = []*models.Statement{statement}
		}
	}
	if len(group) > 0 {
		items = append(items, &models.Item{
			Index:      len(items),
			Statements: group,
		})
	}
	return items
}
