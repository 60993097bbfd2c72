package rdf

import (
	"github.com/lsulibraries/ldlpost/constants"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/lsulibraries/ldlpost/util"
)

// Link is one parent and sequence weight found for an Item. Either
// may be empty. An empty parent on a top-level collection is
// deliberate.
type Link struct {
	ParentId string `json:"parent_id"`
	Weight   string `json:"weight"`
}

// Relationship is the result of resolving one Item's parent. Links
// holds every link a pattern produced, in the order the patterns were
// checked. The first link is the one that wins. An Item that matched
// no pattern has no links.
type Relationship struct {
	Links []Link
}

// IsRelated returns true if at least one pattern matched.
func (relationship *Relationship) IsRelated() bool {
	return len(relationship.Links) > 0
}

// IsAmbiguous returns true if more than one pattern matched.
func (relationship *Relationship) IsAmbiguous() bool {
	return len(relationship.Links) > 1
}

// ParentIds returns the parent of each link.
func (relationship *Relationship) ParentIds() []string {
	parents := make([]string, len(relationship.Links))
	for i, link := range relationship.Links {
		parents[i] = link.ParentId
	}
	return parents
}

// Weights returns the weight of each link.
func (relationship *Relationship) Weights() []string {
	weights := make([]string, len(relationship.Links))
	for i, link := range relationship.Links {
		weights[i] = link.Weight
	}
	return weights
}

func (relationship *Relationship) add(parentId, weight string) {
	relationship.Links = append(relationship.Links, Link{ParentId: parentId, Weight: weight})
}

// parentFromUri returns the PID in a relation's URI, except for the
// root collection, which is never a parent.
func parentFromUri(uri string) string {
	pid := util.PidFromUri(uri)
	if pid == constants.RootCollectionPid {
		return ""
	}
	return pid
}

// Resolve recovers the Item's parent and weight from the shape of its
// first few statements. These are the shapes Islandora 7 writes for
// newspaper issues, book pages, compound children and collection
// members. Every pattern is checked, in this order:
//
//   - 4th statement isMemberOf: parent from its value.
//   - 3rd statement isMemberOf: parent from its value.
//   - 3rd statement isMemberOfCollection of the root collection:
//     no parent, no weight.
//   - 3rd statement isMemberOfCollection of anything else: see
//     resolveCollectionMember.
//   - 4th statement isMemberOfCollection: parent from its value,
//     or none if it's the root collection.
//   - 4th statement isConstituentOf: parent from its value, weight
//     from the 5th statement.
//   - 4th statement deferDerivatives: parent from the 5th statement's
//     value.
func Resolve(item *models.Item) *Relationship {
	relationship := &Relationship{
		Links: make([]Link, 0),
	}
	directName := item.NameAt(directPosition)
	directValue := item.ValueAt(directPosition)
	relationName := item.NameAt(relationPosition)
	relationValue := item.ValueAt(relationPosition)

	if relationName == constants.RelIsMemberOf {
		relationship.add(util.PidFromUri(relationValue), "")
	}
	if directName == constants.RelIsMemberOf {
		relationship.add(util.PidFromUri(directValue), "")
	}
	if directName == constants.RelIsMemberOfCollection {
		if util.PidFromUri(directValue) == constants.RootCollectionPid {
			relationship.add("", "")
		} else {
			resolveCollectionMember(item, relationship)
		}
	}
	if relationName == constants.RelIsMemberOfCollection {
		relationship.add(parentFromUri(relationValue), "")
	}
	if relationName == constants.RelIsConstituentOf {
		relationship.add(util.PidFromUri(relationValue), item.WeightAt(relationPosition+1))
	}
	if relationName == constants.RelDeferDerivatives {
		relationship.add(util.PidFromUri(item.ValueAt(relationPosition+1)), "")
	}
	return relationship
}

// resolveCollectionMember handles an Item whose 3rd statement makes
// it a member of a collection other than the root. Short records (up
// to five statements) take the collection as parent. Longer records
// carry their real parent further down, at a position that depends on
// the record's length:
//
//   - more than 7 statements: parent from the 6th statement, weight
//     from the 7th.
//   - 5th statement isConstituentOf: parent from it, weight from
//     the 6th.
//   - exactly 6 statements otherwise: the collection is the parent.
//
// A 7 statement record with no constituent relation gets nothing.
func resolveCollectionMember(item *models.Item, relationship *Relationship) {
	if item.Len() <= 5 {
		relationship.add(util.PidFromUri(item.ValueAt(directPosition)), "")
		return
	}
	if item.Len() > 7 {
		relationship.add(util.PidFromUri(item.ValueAt(5)), item.WeightAt(6))
	}
	if item.NameAt(4) == constants.RelIsConstituentOf {
		relationship.add(util.PidFromUri(item.ValueAt(4)), item.WeightAt(5))
	} else if item.Len() == 6 {
		relationship.add(util.PidFromUri(item.ValueAt(directPosition)), "")
	}
}
