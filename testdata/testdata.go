package testdata

import (
	"bytes"
	"fmt"
	"github.com/icrowley/fake"
	"github.com/lsulibraries/ldlpost/constants"
	"github.com/lsulibraries/ldlpost/models"
	"io/ioutil"
	"math"
	"math/rand"
	"path/filepath"
	"strings"
)

const relsExtOpen = `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" ` +
	`xmlns:fedora="info:fedora/fedora-system:def/relations-external#" ` +
	`xmlns:fedora-model="info:fedora/fedora-system:def/model#" ` +
	`xmlns:islandora="http://islandora.ca/ontology/relsext#">`

// Relation is one statement inside a RELS-EXT rdf:Description.
// Name is the qualified element name, e.g. "fedora:isMemberOf".
type Relation struct {
	Name     string
	Resource string
	Text     string
}

// HasModel returns a fedora-model:hasModel relation.
func HasModel(model string) Relation {
	return Relation{Name: "fedora-model:hasModel", Resource: model}
}

// MemberOf returns a fedora:isMemberOf relation to pid.
func MemberOf(pid string) Relation {
	return Relation{Name: "fedora:isMemberOf", Resource: constants.FedoraUriPrefix + pid}
}

// MemberOfCollection returns a fedora:isMemberOfCollection relation
// to pid.
func MemberOfCollection(pid string) Relation {
	return Relation{Name: "fedora:isMemberOfCollection", Resource: constants.FedoraUriPrefix + pid}
}

// ConstituentOf returns a fedora:isConstituentOf relation to pid.
func ConstituentOf(pid string) Relation {
	return Relation{Name: "fedora:isConstituentOf", Resource: constants.FedoraUriPrefix + pid}
}

// SequenceNumberOf returns the islandora sequence number statement
// that Islandora writes for compound children and pages. The parent
// PID is folded into the element name, e.g.
// islandora:isSequenceNumberOfamistad_42.
func SequenceNumberOf(pid string, weight string) Relation {
	name := "islandora:isSequenceNumberOf" + strings.Replace(pid, ":", "_", 1)
	return Relation{Name: name, Text: weight}
}

// DeferDerivatives returns the islandora:deferDerivatives flag.
func DeferDerivatives() Relation {
	return Relation{Name: "islandora:deferDerivatives", Text: "true"}
}

// DateIssued returns an islandora:dateIssued statement.
func DateIssued(date string) Relation {
	return Relation{Name: "islandora:dateIssued", Text: date}
}

// MakeRelsExt returns a RELS-EXT document describing pid.
func MakeRelsExt(pid string, relations ...Relation) string {
	buf := bytes.NewBufferString(relsExtOpen)
	buf.WriteString("\n  ")
	fmt.Fprintf(buf, `<rdf:Description rdf:about="info:fedora/%s">`, pid)
	for _, relation := range relations {
		buf.WriteString("\n    <")
		buf.WriteString(relation.Name)
		if relation.Resource != "" {
			fmt.Fprintf(buf, ` rdf:resource="%s"`, relation.Resource)
		}
		fmt.Fprintf(buf, ">%s</%s>", relation.Text, relation.Name)
	}
	buf.WriteString("\n  </rdf:Description>\n</rdf:RDF>\n")
	return buf.String()
}

// WriteRelsExt writes a RELS-EXT document for pid into dir, named the
// way the LDL export names them, and returns its path.
func WriteRelsExt(dir, pid string, relations ...Relation) (string, error) {
	name := fmt.Sprintf("%s_RELS-EXT.rdf", strings.Replace(pid, ":", "_", 1))
	absPath := filepath.Join(dir, name)
	err := ioutil.WriteFile(absPath, []byte(MakeRelsExt(pid, relations...)), 0644)
	return absPath, err
}

// MakeStatement returns a statement with a single attribute value.
func MakeStatement(name, value string) *models.Statement {
	values := make([]string, 0)
	if value != "" {
		values = append(values, value)
	}
	return models.NewStatement(name, values, "", false)
}

// MakeTextStatement returns a statement with text and no attributes.
func MakeTextStatement(name, text string) *models.Statement {
	return models.NewStatement(name, nil, text, true)
}

// MakeItem returns an Item that starts with an RDF root and a
// Description of pid, followed by statements.
func MakeItem(pid string, statements ...*models.Statement) *models.Item {
	all := []*models.Statement{
		MakeStatement(constants.RelRDF, ""),
		MakeStatement("Description", constants.FedoraUriPrefix+pid),
	}
	all = append(all, statements...)
	for i, statement := range all {
		statement.Position = i
	}
	return &models.Item{Statements: all}
}

// MakeRecord returns a base table record for pid with random
// descriptive metadata.
func MakeRecord(pid string) *models.MetadataRecord {
	record := models.NewMetadataRecord()
	record.Set(constants.ColPID, pid)
	record.Set(constants.ColFieldIdentifier, pid)
	record.Set("title", fake.Sentence())
	record.Set("field_description", fake.Paragraph())
	record.Set("field_subject", fake.Words())
	record.Set("field_creator", fake.FullName())
	record.Set("field_rights_statement", fake.Sentence())
	return record
}

// MakeBaseTable returns a table shaped like the xml-to-csv output,
// with one random record per pid.
func MakeBaseTable(pids ...string) *models.MetadataTable {
	table := models.NewMetadataTable([]string{
		constants.ColPID,
		constants.ColFieldIdentifier,
		"title",
		"field_description",
		"field_subject",
		"field_creator",
		"field_rights_statement",
	})
	for _, pid := range pids {
		table.Records = append(table.Records, MakeRecord(pid))
	}
	return table
}

// RandomPid returns a PID in one of the LDL namespaces.
func RandomPid() string {
	prefixes := make([]string, 0, len(constants.AccessTerms))
	for prefix := range constants.AccessTerms {
		prefixes = append(prefixes, prefix)
	}
	collection := strings.ToLower(strings.Replace(fake.Word(), " ", "", -1))
	return fmt.Sprintf("%s-%s:%d", RandomFromList(prefixes), collection, rand.Intn(5000)+1)
}

func RandomFromList(items []string) (string) {
	i := int(math.Mod(float64(rand.Intn(200)), float64(len(items))))
	return items[i]
}
