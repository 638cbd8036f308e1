package metadata

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuri-tickets/chiphash/internal/checksum"
	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

// Expected bytes and digests were produced by the previous release of the
// tool for the same rows; they must never change.
func TestEncode_MatchesHistoricalOutput(t *testing.T) {
	fallback := chiphash.Record{
		chiphash.ColumnTeam:         "Team Bevel",
		chiphash.ColumnSeriesNumber: "2",
		chiphash.ColumnFilename:     "ticket-2",
		chiphash.ColumnName:         "Ticket Two",
		chiphash.ColumnDescription:  "Second ticket",
		chiphash.ColumnGender:       "female",
		chiphash.ColumnAttributes:   "color-blue;size:large",
		chiphash.ColumnUUID:         "9a0fbaf1-6f0f-4d36-9a3e-9a3c1c53c1aa",
	}

	escaped := ticketOne()
	escaped[chiphash.ColumnDescription] = "Café \"quoted\" \\ tab\t\U0001F600 <b>&"
	escaped[chiphash.ColumnSensitiveContent] = "TRUE"

	tests := []struct {
		name        string
		rec         chiphash.Record
		seriesTotal int
		wantJSON    string
		wantDigest  string
	}{
		{
			name:        "parsed attributes",
			rec:         ticketOne(),
			seriesTotal: 2,
			wantJSON:    `{"format": "CHIP-0007", "name": "Ticket One", "description": "First, ticket", "miniting_tool": "Team Bevel", "sensitive_content": false, "series_number": "1", "series_total": 2, "attributes": [{"trait_type": "gender", "value": "male"}, {"trait_type": "hair", "value": "black"}, {"trait_type": "eyes", "value": "blue"}], "collection": {"name": "Zuri NFT Tickets for Free Lunch", "id": "0b9c6a3e-6c2b-4b34-9f59-2a4c1f4bc1f3", "attributes": [{"type": "description", "value": "Rewards for accomplishments during HNGi9."}]}}`,
			wantDigest:  "b885061a9cbf62c788e48b839277ffd8813a7d44c25190dec02fe811bf2c05f8",
		},
		{
			name:        "fallback attributes",
			rec:         fallback,
			seriesTotal: 2,
			wantJSON:    `{"format": "CHIP-0007", "name": "Ticket Two", "description": "Second ticket", "miniting_tool": "Team Bevel", "sensitive_content": false, "series_number": "2", "series_total": 2, "attributes": ["color-blue;size:large"], "collection": {"name": "Zuri NFT Tickets for Free Lunch", "id": "9a0fbaf1-6f0f-4d36-9a3e-9a3c1c53c1aa", "attributes": [{"type": "description", "value": "Rewards for accomplishments during HNGi9."}]}}`,
			wantDigest:  "5f785ef2129556b150ae9547dd29478e30d735781b5b955a42009eb76525dd24",
		},
		{
			name:        "escapes and sensitive content string",
			rec:         escaped,
			seriesTotal: 7,
			wantJSON:    `{"format": "CHIP-0007", "name": "Ticket One", "description": "Caf\u00e9 \"quoted\" \\ tab\t\ud83d\ude00 <b>&", "miniting_tool": "Team Bevel", "sensitive_content": "TRUE", "series_number": "1", "series_total": 7, "attributes": [{"trait_type": "gender", "value": "male"}, {"trait_type": "hair", "value": "black"}, {"trait_type": "eyes", "value": "blue"}], "collection": {"name": "Zuri NFT Tickets for Free Lunch", "id": "0b9c6a3e-6c2b-4b34-9f59-2a4c1f4bc1f3", "attributes": [{"type": "description", "value": "Rewards for accomplishments during HNGi9."}]}}`,
			wantDigest:  "9573fedd96673c8c67cd4ea12bb999617f857e51ec84e405b84fe54f4f037831",
		},
	}

	calc := checksum.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := Encode(defaultBuilder().Build(tt.rec, tt.seriesTotal))
			assert.Equal(t, tt.wantJSON, string(encoded))
			assert.Equal(t, tt.wantDigest, calc.Calculate(encoded))
		})
	}
}

func TestEncode_ControlCharacters(t *testing.T) {
	var e encoder
	var buf bytes.Buffer
	e.buf = &buf

	e.string("a\x00\x1f\x7f\b\f\n\r")
	assert.Equal(t, `"a\u0000\u001f\u007f\b\f\n\r"`, buf.String())
}

func TestEncode_Deterministic(t *testing.T) {
	doc := defaultBuilder().Build(ticketOne(), 3)
	first := Encode(doc)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Encode(doc))
	}
}

func TestEncode_AnyFieldChangesBytes(t *testing.T) {
	base := Encode(defaultBuilder().Build(ticketOne(), 2))

	for _, col := range []string{
		chiphash.ColumnTeam,
		chiphash.ColumnSeriesNumber,
		chiphash.ColumnName,
		chiphash.ColumnDescription,
		chiphash.ColumnGender,
		chiphash.ColumnAttributes,
		chiphash.ColumnUUID,
	} {
		rec := ticketOne()
		rec[col] += "x"
		assert.NotEqual(t, base, Encode(defaultBuilder().Build(rec, 2)), "changing %s must change the encoding", col)
	}

	assert.NotEqual(t, base, Encode(defaultBuilder().Build(ticketOne(), 3)), "series total is part of the document")
}

func TestEncode_FilenameIsNotHashed(t *testing.T) {
	rec := ticketOne()
	rec[chiphash.ColumnFilename] = "renamed"

	assert.Equal(t, Encode(defaultBuilder().Build(ticketOne(), 2)), Encode(defaultBuilder().Build(rec, 2)))
}

func TestDocument_WriteTo(t *testing.T) {
	doc := defaultBuilder().Build(ticketOne(), 2)

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, Encode(doc), buf.Bytes())
}
