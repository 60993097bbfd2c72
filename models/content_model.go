package models

import (
	"fmt"
	"github.com/lsulibraries/ldlpost/constants"
	"gopkg.in/yaml.v3"
	"io/ioutil"
	"strings"
)

// Label is a content type and the viewer that should render it.
// Viewer may be empty.
type Label struct {
	ContentType string `yaml:"type" json:"type"`
	Viewer      string `yaml:"viewer,omitempty" json:"viewer,omitempty"`
}

// ContentModelRule maps one Fedora content model URI to the labels
// Islandora 2 uses for it. The same URI can be labeled differently
// depending on where it appears in the RELS-EXT record:
//
// Direct applies when the URI is the value of the item's third
// statement, whatever that statement is called.
//
// HasModel applies when the item's fourth statement is a hasModel
// relation whose value is the URI.
//
// Related applies when the URI is the value of the item's fourth
// statement and that statement is anything but deferDerivatives.
//
// A nil label means the rule doesn't apply in that position.
type ContentModelRule struct {
	Model    string `yaml:"model"`
	Direct   *Label `yaml:"direct,omitempty"`
	HasModel *Label `yaml:"hasModel,omitempty"`
	Related  *Label `yaml:"related,omitempty"`
}

// Vocabulary is the ordered list of content model rules. Order matters:
// when several rules fire for one item, their labels are recorded in
// vocabulary order.
type Vocabulary struct {
	Rules []*ContentModelRule `yaml:"models"`
}

// DefaultVocabulary returns the Islandora 7 content model vocabulary
// used by LDL.
func DefaultVocabulary() *Vocabulary {
	pdfJs := func(contentType string) *Label {
		return &Label{ContentType: contentType, Viewer: constants.ViewerPDFjs}
	}
	noViewer := func(contentType string) *Label {
		return &Label{ContentType: contentType}
	}
	image := &Label{ContentType: constants.TypeImage, Viewer: constants.ViewerOpenSeadragon}
	return &Vocabulary{
		Rules: []*ContentModelRule{
			{
				Model:    constants.ModelBook,
				Direct:   pdfJs(constants.TypeDocument),
				HasModel: &Label{ContentType: constants.TypePagedContent, Viewer: constants.ViewerMirador},
			},
			{Model: constants.ModelLargeImage, Direct: image, HasModel: image},
			{Model: constants.ModelAudio, Direct: noViewer(constants.TypeAudio), HasModel: noViewer(constants.TypeAudio)},
			{Model: constants.ModelVideo, Direct: noViewer(constants.TypeVideo), HasModel: noViewer(constants.TypeVideo)},
			{Model: constants.ModelCollection, Related: noViewer(constants.TypeCollection)},
			{Model: constants.ModelNewspaper, Direct: noViewer(constants.TypeNewspaper), HasModel: noViewer(constants.TypeNewspaper)},
			{
				Model:    constants.ModelNewspaperIssue,
				Direct:   pdfJs(constants.TypePublicationIssue),
				HasModel: pdfJs(constants.TypePublicationIssue),
			},
			{Model: constants.ModelPDF, Direct: pdfJs(constants.TypeDocument), HasModel: pdfJs(constants.TypeDocument)},
			{
				Model:    constants.ModelCompound,
				Direct:   noViewer(constants.TypeCompoundObject),
				HasModel: noViewer(constants.TypeCompoundObject),
			},
		},
	}
}

// LoadVocabularyFile reads a vocabulary from a YAML file like this:
//
//   models:
//     - model: info:fedora/islandora:bookCModel
//       direct: {type: Document, viewer: PDF.js}
//       hasModel: {type: Paged Content, viewer: Mirador}
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Error reading vocabulary file '%s': %v", path, err)
	}
	vocabulary := &Vocabulary{}
	if err := yaml.Unmarshal(data, vocabulary); err != nil {
		return nil, fmt.Errorf("Error parsing YAML from vocabulary file '%s': %v", path, err)
	}
	if err := vocabulary.Validate(); err != nil {
		return nil, fmt.Errorf("Vocabulary file '%s' is not valid: %v", path, err)
	}
	return vocabulary, nil
}

// Validate returns an error if any rule is missing its model URI or
// has no labels, or if a model URI appears twice.
func (vocabulary *Vocabulary) Validate() error {
	if len(vocabulary.Rules) == 0 {
		return fmt.Errorf("vocabulary has no models")
	}
	seen := make(map[string]bool)
	for i, rule := range vocabulary.Rules {
		if rule == nil || rule.Model == "" {
			return fmt.Errorf("model #%d has no URI", i+1)
		}
		if !strings.HasPrefix(rule.Model, constants.FedoraUriPrefix) {
			return fmt.Errorf("model '%s' should start with %s", rule.Model, constants.FedoraUriPrefix)
		}
		if seen[rule.Model] {
			return fmt.Errorf("model '%s' is listed more than once", rule.Model)
		}
		seen[rule.Model] = true
		if rule.Direct == nil && rule.HasModel == nil && rule.Related == nil {
			return fmt.Errorf("model '%s' has no labels", rule.Model)
		}
	}
	return nil
}

// Rule returns the rule for model, or nil.
func (vocabulary *Vocabulary) Rule(model string) *ContentModelRule {
	for _, rule := range vocabulary.Rules {
		if rule.Model == model {
			return rule
		}
	}
	return nil
}
