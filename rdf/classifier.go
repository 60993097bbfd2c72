package rdf

import (
	"github.com/lsulibraries/ldlpost/constants"
	"github.com/lsulibraries/ldlpost/models"
)

// Positions, within an Item, of the statements the classifier and
// resolver look at. Position 0 is the RDF root and position 1 is the
// Description, so these are the first two relations in the record.
const (
	directPosition   = 2
	relationPosition = 3
)

// Classification is the result of classifying one Item. Labels holds
// every label that a rule produced, in the order the rules fired. An
// Item that no rule matched has no labels.
type Classification struct {
	Labels []models.Label
}

// IsClassified returns true if at least one rule matched.
func (classification *Classification) IsClassified() bool {
	return len(classification.Labels) > 0
}

// IsAmbiguous returns true if more than one rule matched.
func (classification *Classification) IsAmbiguous() bool {
	return len(classification.Labels) > 1
}

// ContentTypes returns the content type of each label.
func (classification *Classification) ContentTypes() []string {
	types := make([]string, len(classification.Labels))
	for i, label := range classification.Labels {
		types[i] = label.ContentType
	}
	return types
}

// Viewers returns the viewer of each label. Labels without a viewer
// contribute an empty string, so this lines up with ContentTypes.
func (classification *Classification) Viewers() []string {
	viewers := make([]string, len(classification.Labels))
	for i, label := range classification.Labels {
		viewers[i] = label.Viewer
	}
	return viewers
}

// Classifier assigns content types and viewers to Items.
type Classifier struct {
	Vocabulary *models.Vocabulary
}

func NewClassifier(vocabulary *models.Vocabulary) *Classifier {
	return &Classifier{Vocabulary: vocabulary}
}

// Classify checks the Item's third and fourth statements against the
// vocabulary. The rules are not exclusive. For each rule, in
// vocabulary order, a Direct label is added when the third statement's
// value is the rule's model, and a Related label is added when the
// fourth statement's value is the model and the fourth statement is
// not deferDerivatives. Then, if the fourth statement is a hasModel
// relation, HasModel labels are added in vocabulary order.
func (classifier *Classifier) Classify(item *models.Item) *Classification {
	classification := &Classification{
		Labels: make([]models.Label, 0),
	}
	directValue := item.ValueAt(directPosition)
	relationName := item.NameAt(relationPosition)
	relationValue := item.ValueAt(relationPosition)
	for _, rule := range classifier.Vocabulary.Rules {
		if rule.Direct != nil && directValue == rule.Model {
			classification.Labels = append(classification.Labels, *rule.Direct)
		}
		if rule.Related != nil && relationName != constants.RelDeferDerivatives &&
			relationValue == rule.Model {
			classification.Labels = append(classification.Labels, *rule.Related)
		}
	}
	if relationName == constants.RelHasModel {
		for _, rule := range classifier.Vocabulary.Rules {
			if rule.HasModel != nil && relationValue == rule.Model {
				classification.Labels = append(classification.Labels, *rule.HasModel)
			}
		}
	}
	return classification
}
