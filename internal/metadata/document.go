package metadata

import (
	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

// SensitiveContent is the sensitive_content field: boolean false when the
// input has no Sensitive Content column, otherwise the column's raw text.
type SensitiveContent struct {
	Value   string
	Present bool
}

// CollectionAttribute is one {type, value} pair of the collection sub-document.
type CollectionAttribute struct {
	Type  string
	Value string
}

// Collection is the collection sub-document shared by every ticket of a run,
// except for ID which comes from the row.
type Collection struct {
	Name       string
	ID         string
	Attributes []CollectionAttribute
}

// Document is a CHIP-0007 metadata document for one ticket.
// Field order here is the serialization order.
type Document struct {
	Format           string
	Name             string
	Description      string
	MintingTool      string
	SensitiveContent SensitiveContent
	SeriesNumber     string
	SeriesTotal      int
	Attributes       Attributes
	Collection       Collection
}

// Builder maps rows to documents. The zero value is not useful; use NewBuilder.
type Builder struct {
	format     string
	collection chiphash.Collection
}

// NewBuilder returns a Builder stamping format and collection into every document.
func NewBuilder(format string, collection chiphash.Collection) Builder {
	return Builder{format: format, collection: collection}
}

// Build assembles the document for rec. The team column must already hold
// the carried-forward team name.
func (b Builder) Build(rec chiphash.Record, seriesTotal int) Document {
	sensitive, present := rec.Lookup(chiphash.ColumnSensitiveContent)

	return Document{
		Format:           b.format,
		Name:             rec.Get(chiphash.ColumnName),
		Description:      rec.Get(chiphash.ColumnDescription),
		MintingTool:      rec.Get(chiphash.ColumnTeam),
		SensitiveContent: SensitiveContent{Value: sensitive, Present: present},
		SeriesNumber:     rec.Get(chiphash.ColumnSeriesNumber),
		SeriesTotal:      seriesTotal,
		Attributes:       ParseAttributes(rec.Get(chiphash.ColumnAttributes), rec.Get(chiphash.ColumnGender)),
		Collection: Collection{
			Name: b.collection.Name,
			ID:   rec.Get(chiphash.ColumnUUID),
			Attributes: []CollectionAttribute{
				{Type: "description", Value: b.collection.Description},
			},
		},
	}
}
