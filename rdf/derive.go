package rdf

import (
	"github.com/lsulibraries/ldlpost/models"
	"strings"
)

// Deriver runs the classifier, resolver and date extractor over Items
// and flattens their results into DerivedFields.
type Deriver struct {
	Classifier *Classifier

	// Delimiter joins the values of Items for which more than one
	// rule fired.
	Delimiter string

	// UnclassifiedMarker is written as the model of Items no
	// classification rule matched. It may be empty.
	UnclassifiedMarker string
}

func NewDeriver(vocabulary *models.Vocabulary, delimiter string) *Deriver {
	return &Deriver{
		Classifier: NewClassifier(vocabulary),
		Delimiter:  delimiter,
	}
}

// Derive returns the derived fields for one Item.
func (deriver *Deriver) Derive(item *models.Item) *models.DerivedFields {
	classification := deriver.Classifier.Classify(item)
	relationship := Resolve(item)
	fields := &models.DerivedFields{
		ItemIndex:      item.Index,
		Subject:        item.Subject(),
		SourceFile:     item.SourceFile(),
		ParentId:       strings.Join(relationship.ParentIds(), deriver.Delimiter),
		Weight:         strings.Join(relationship.Weights(), deriver.Delimiter),
		Model:          strings.Join(classification.ContentTypes(), deriver.Delimiter),
		ViewerOverride: strings.Join(classification.Viewers(), deriver.Delimiter),
		DateIssued:     ExtractDateIssued(item),
		Classified:     classification.IsClassified(),
		Related:        relationship.IsRelated(),
		LabelCount:     len(classification.Labels),
		LinkCount:      len(relationship.Links),
	}
	if !fields.Classified {
		fields.Model = deriver.UnclassifiedMarker
	}
	return fields
}

// DeriveAll returns the derived fields for each Item, in Item order.
func (deriver *Deriver) DeriveAll(items []*models.Item) []*models.DerivedFields {
	derived := make([]*models.DerivedFields, len(items))
	for i, item := range items {
		derived[i] = deriver.Derive(item)
	}
	return derived
}
