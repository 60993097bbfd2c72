package rdf_test

import (
	"github.com/lsulibraries/ldlpost/constants"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/lsulibraries/ldlpost/rdf"
	"github.com/lsulibraries/ldlpost/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func weight(name, text string) *models.Statement {
	return models.NewStatement(name, nil, text, true)
}

func TestResolveRelationIsMemberOf(t *testing.T) {
	item := testdata.MakeItem("lsu-news:7",
		stmt("hasModel", constants.ModelNewspaperIssue),
		stmt("isMemberOf", "info:fedora/lsu-news:1"))
	relationship := rdf.Resolve(item)
	require.Equal(t, 1, len(relationship.Links))
	assert.Equal(t, rdf.Link{ParentId: "lsu-news:1", Weight: ""}, relationship.Links[0])
}

func TestResolveDirectIsMemberOf(t *testing.T) {
	item := testdata.MakeItem("lsu-news:7",
		stmt("isMemberOf", "info:fedora/lsu-news:1"),
		stmt("hasModel", constants.ModelNewspaperIssue))
	relationship := rdf.Resolve(item)
	assert.Equal(t, []string{"lsu-news:1"}, relationship.ParentIds())
	assert.Equal(t, []string{""}, relationship.Weights())
}

func TestResolveRootCollectionMember(t *testing.T) {
	item := testdata.MakeItem("amistad:collection",
		stmt("isMemberOfCollection", "info:fedora/islandora:root"),
		stmt("hasModel", constants.ModelCollection))
	relationship := rdf.Resolve(item)
	// Related, with a deliberately empty parent.
	require.True(t, relationship.IsRelated())
	assert.Equal(t, []rdf.Link{{}}, relationship.Links)
}

func TestResolveRelationRootCollection(t *testing.T) {
	item := testdata.MakeItem("amistad:collection",
		stmt("hasModel", constants.ModelCollection),
		stmt("isMemberOfCollection", "info:fedora/islandora:root"))
	relationship := rdf.Resolve(item)
	require.Equal(t, 1, len(relationship.Links))
	assert.Equal(t, "", relationship.Links[0].ParentId)
	assert.Equal(t, "", relationship.Links[0].Weight)
}

func TestResolveRelationCollection(t *testing.T) {
	item := testdata.MakeItem("amistad:1",
		stmt("hasModel", constants.ModelPDF),
		stmt("isMemberOfCollection", "info:fedora/amistad:collection"))
	assert.Equal(t, []string{"amistad:collection"}, rdf.Resolve(item).ParentIds())
}

func TestResolveRelationConstituent(t *testing.T) {
	item := testdata.MakeItem("amistad:43",
		stmt("hasModel", constants.ModelLargeImage),
		stmt("isConstituentOf", "info:fedora/amistad:42"),
		weight("isSequenceNumberOfamistad_42", "3"))
	relationship := rdf.Resolve(item)
	require.Equal(t, 1, len(relationship.Links))
	assert.Equal(t, "amistad:42", relationship.Links[0].ParentId)
	assert.Equal(t, "3", relationship.Links[0].Weight)
}

func TestResolveRelationDeferDerivatives(t *testing.T) {
	item := testdata.MakeItem("lsu-news:8",
		stmt("hasModel", constants.ModelNewspaperIssue),
		stmt("deferDerivatives", ""),
		stmt("isMemberOf", "info:fedora/lsu-news:1"))
	assert.Equal(t, []string{"lsu-news:1"}, rdf.Resolve(item).ParentIds())
}

func TestResolveCollectionMemberShort(t *testing.T) {
	// Five statements or fewer: the collection is the parent.
	item := testdata.MakeItem("amistad:1",
		stmt("isMemberOfCollection", "info:fedora/amistad:collection"),
		stmt("hasModel", constants.ModelPDF),
		stmt("RDF", ""))
	require.Equal(t, 5, item.Len())
	relationship := rdf.Resolve(item)
	assert.Equal(t, []string{"amistad:collection"}, relationship.ParentIds())
	assert.Equal(t, []string{""}, relationship.Weights())
}

func TestResolveCollectionMemberSix(t *testing.T) {
	item := testdata.MakeItem("amistad:1",
		stmt("isMemberOfCollection", "info:fedora/amistad:collection"),
		stmt("hasModel", constants.ModelPDF),
		stmt("generate_ocr", ""),
		stmt("RDF", ""))
	require.Equal(t, 6, item.Len())
	assert.Equal(t, []string{"amistad:collection"}, rdf.Resolve(item).ParentIds())
}

func TestResolveCollectionMemberSixConstituent(t *testing.T) {
	item := testdata.MakeItem("amistad:43",
		stmt("isMemberOfCollection", "info:fedora/amistad:collection"),
		stmt("hasModel", constants.ModelLargeImage),
		stmt("isConstituentOf", "info:fedora/amistad:42"),
		weight("isSequenceNumberOfamistad_42", "7"))
	require.Equal(t, 6, item.Len())
	relationship := rdf.Resolve(item)
	require.Equal(t, 1, len(relationship.Links))
	assert.Equal(t, rdf.Link{ParentId: "amistad:42", Weight: "7"}, relationship.Links[0])
}

// Seven statements and no constituent relation: no pattern applies.
func TestResolveCollectionMemberSevenUnrelated(t *testing.T) {
	item := testdata.MakeItem("amistad:1",
		stmt("isMemberOfCollection", "info:fedora/amistad:collection"),
		stmt("hasModel", constants.ModelPDF),
		stmt("generate_ocr", ""),
		stmt("generate_hocr", ""),
		stmt("RDF", ""))
	require.Equal(t, 7, item.Len())
	assert.False(t, rdf.Resolve(item).IsRelated())
}

func TestResolveCollectionMemberLong(t *testing.T) {
	item := testdata.MakeItem("amistad:44",
		stmt("isMemberOfCollection", "info:fedora/amistad:collection"),
		stmt("hasModel", constants.ModelPDF),
		stmt("isSection", ""),
		stmt("isPageOf", "info:fedora/amistad:40"),
		weight("isSequenceNumberOfamistad_40", "12"),
		stmt("RDF", ""))
	require.Equal(t, 8, item.Len())
	relationship := rdf.Resolve(item)
	require.Equal(t, 1, len(relationship.Links))
	assert.Equal(t, rdf.Link{ParentId: "amistad:40", Weight: "12"}, relationship.Links[0])
}

// A long record with a constituent relation gets two links: the
// positional one and the constituent one. Both are kept.
func TestResolveCollectionMemberLongConstituent(t *testing.T) {
	item := testdata.MakeItem("amistad:45",
		stmt("isMemberOfCollection", "info:fedora/amistad:collection"),
		stmt("hasModel", constants.ModelLargeImage),
		stmt("isConstituentOf", "info:fedora/amistad:42"),
		weight("isSequenceNumberOfamistad_42", "2"),
		weight("isSequenceNumberOfamistad_42", "9"),
		stmt("RDF", ""))
	require.Equal(t, 8, item.Len())
	relationship := rdf.Resolve(item)
	require.True(t, relationship.IsAmbiguous())
	assert.Equal(t, []string{"", "amistad:42"}, relationship.ParentIds())
	assert.Equal(t, []string{"9", "2"}, relationship.Weights())
}

func TestResolveMultiplePatterns(t *testing.T) {
	item := testdata.MakeItem("lsu-news:7",
		stmt("isMemberOf", "info:fedora/lsu-news:1"),
		stmt("isMemberOf", "info:fedora/lsu-news:2"))
	relationship := rdf.Resolve(item)
	// The fourth statement is checked first.
	assert.Equal(t, []string{"lsu-news:2", "lsu-news:1"}, relationship.ParentIds())
}

func TestResolveUnrelated(t *testing.T) {
	item := testdata.MakeItem("amistad:1", stmt("hasModel", constants.ModelPDF))
	relationship := rdf.Resolve(item)
	assert.False(t, relationship.IsRelated())
	assert.Empty(t, relationship.ParentIds())

	empty := &models.Item{}
	assert.False(t, rdf.Resolve(empty).IsRelated())
}

func TestResolveMalformedUri(t *testing.T) {
	item := testdata.MakeItem("amistad:1",
		stmt("hasModel", constants.ModelPDF),
		stmt("isMemberOf", "amistad:7"))
	assert.Equal(t, []string{""}, rdf.Resolve(item).ParentIds())
}
