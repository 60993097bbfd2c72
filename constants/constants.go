// Common vars and constants, shared by many parts of the ldlpost library.
package constants

import (
	"regexp"
)

// All Fedora object and content model URIs begin with this.
const FedoraUriPrefix = "info:fedora/"

// RootCollectionPid is the Islandora root collection. Objects that are
// members of it are top-level collections and get no parent_id.
const RootCollectionPid = "islandora:root"

// Content model URIs from the Islandora 7 controlled vocabulary.
const (
	ModelBook           = "info:fedora/islandora:bookCModel"
	ModelLargeImage     = "info:fedora/islandora:sp_large_image_cmodel"
	ModelAudio          = "info:fedora/islandora:sp-audioCModel"
	ModelVideo          = "info:fedora/islandora:sp_videoCModel"
	ModelCollection     = "info:fedora/islandora:collectionCModel"
	ModelNewspaper      = "info:fedora/islandora:newspaperCModel"
	ModelNewspaperIssue = "info:fedora/islandora:newspaperIssueCModel"
	ModelPDF            = "info:fedora/islandora:sp_pdf"
	ModelCompound       = "info:fedora/islandora:compoundCModel"
)

var ContentModels []string = []string{
	ModelBook,
	ModelLargeImage,
	ModelAudio,
	ModelVideo,
	ModelCollection,
	ModelNewspaper,
	ModelNewspaperIssue,
	ModelPDF,
	ModelCompound,
}

// Content type labels, as Islandora 2 names them in field_model.
const (
	TypePagedContent     = "Paged Content"
	TypeDocument         = "Document"
	TypeImage            = "Image"
	TypeAudio            = "Audio"
	TypeVideo            = "Video"
	TypeCollection       = "Collection"
	TypeNewspaper        = "Newspaper"
	TypePublicationIssue = "Publication Issue"
	TypeCompoundObject   = "Compound Object"
)

// Viewer labels for field_viewer_override.
const (
	ViewerMirador       = "Mirador"
	ViewerPDFjs         = "PDF.js"
	ViewerOpenSeadragon = "OpenSeadragon"
)

// Local names of the RELS-EXT statements the resolver looks at.
const (
	RelRDF                  = "RDF"
	RelHasModel             = "hasModel"
	RelIsMemberOf           = "isMemberOf"
	RelIsMemberOfCollection = "isMemberOfCollection"
	RelIsConstituentOf      = "isConstituentOf"
	RelDeferDerivatives     = "deferDerivatives"
	RelDateIssued           = "dateIssued"
	RelIsSequenceNumberOf   = "isSequenceNumberOf"
)

// Columns of the base metadata table and the Workbench output.
const (
	ColPID                  = "PID"
	ColId                   = "id"
	ColFieldIdentifier      = "field_identifier"
	ColFile                 = "file"
	ColParentId             = "parent_id"
	ColFieldWeight          = "field_weight"
	ColFieldMemberOf        = "field_member_of"
	ColFieldModel           = "field_model"
	ColFieldAccessTerms     = "field_access_terms"
	ColFieldResourceType    = "field_resource_type"
	ColFieldViewerOverride  = "field_viewer_override"
	ColFieldEdtfDateIssued  = "field_edtf_date_issued"
	ColFieldEdtfDateCreated = "field_edtf_date_created"
	ColFieldLinkedAgent     = "field_linked_agent"
)

// PreparedColumns are added to the base table, in this order, before
// the RDF is read.
var PreparedColumns []string = []string{
	ColFile,
	ColParentId,
	ColFieldWeight,
	ColFieldMemberOf,
	ColFieldModel,
	ColFieldAccessTerms,
	ColFieldResourceType,
}

// DerivedColumns are filled in from the RELS-EXT records.
var DerivedColumns []string = []string{
	ColParentId,
	ColFieldWeight,
	ColFieldModel,
	ColFieldViewerOverride,
	ColFieldEdtfDateIssued,
}

// PlaceholderColumns are always empty. They're reserved for manual
// enrichment after the Workbench CSV is produced.
var PlaceholderColumns []string = []string{
	ColFieldEdtfDateCreated,
	ColFieldLinkedAgent,
}

// DroppedColumns come out of the xml-to-csv step but Workbench
// can't use them.
var DroppedColumns []string = []string{
	"field_date_captured",
	"field_is_preceded_by",
	"field_is_succeeded_by",
	"field_form_URI",
	"field_form_authURI",
	"field_rights_statement",
	"rights_statement_uri",
	"nan",
}

// AccessTerms maps the namespace prefix of a PID (the part before the
// first dash) to the LDL access group that owns the object.
var AccessTerms map[string]string = map[string]string{
	"amistad":             "Amistad",
	"apl":                 "APL",
	"cppl":                "CPPL",
	"dcc":                 "DCC",
	"ebrpl":               "EBRPL",
	"fpoc":                "FPOC",
	"hicks":               "Hicks",
	"hnoc":                "HNOC",
	"lsa":                 "LSA",
	"lasc":                "LASC",
	"lsm":                 "LSM",
	"lsu":                 "LSU",
	"lsua":                "LSUA",
	"lsus":                "LSUS",
	"lsuhsc":              "LSUHSC",
	"lsuhscs":             "LSUSHCS",
	"latech":              "LATECH",
	"loyno":               "LOYNO",
	"louisiananewspapers": "LouisianaNewspapers",
	"mcneese":             "McNeese",
	"nojh":                "NOJH",
	"nicholls":            "Nicholls",
	"nsu":                 "NSU",
	"oplib":               "OPLIB",
	"slu":                 "SLU",
	"subr":                "SUBR",
	"sowela":              "SOWELA",
	"state":               "State",
	"tahil":               "TAHIL",
	"tulane":              "Tulane",
	"ull":                 "ULL",
	"ulm":                 "ULM",
	"uno":                 "UNO",
}

// Defaults for optional config settings.
const (
	DefaultRdfPattern          = "*.rdf"
	DefaultAssetMarker         = "PDF"
	DefaultAssetPathPrefix     = "Data"
	DefaultAssetMimeType       = "application/pdf"
	DefaultMultiValueDelimiter = "|"
)

// PidPattern matches a Fedora PID like "amistad-pgoudvis:12".
var PidPattern = regexp.MustCompile(`^[A-Za-z0-9\-_\.]+:[A-Za-z0-9\-_\.~%]+$`)
