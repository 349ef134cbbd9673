package flatfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	domainErrors "github.com/grocermart/partnersync/internal/domain/errors"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec()
	records := []Record{
		{"code": "TX1", "name": "Standard", "rate": "0.10"},
		{"code": "TX2", "name": "Reduced", "rate": "0.05"},
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, Taxes, records); err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := codec.Decode(&buf, Taxes)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(decoded))
	}
	for i, record := range records {
		for field, want := range record {
			if got := decoded[i][field]; got != want {
				t.Errorf("record %d field %s: expected %q, got %q", i, field, want, got)
			}
		}
	}
}

func TestCodecRoundTripWithEmbeddedDelimiters(t *testing.T) {
	codec := NewCodec()
	records := []Record{
		{"email": "ana@example.com", "name": `Souza, Ana "Banana"`},
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, Users, records); err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := codec.Decode(&buf, Users)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 record, got %d", len(decoded))
	}
	if decoded[0]["name"] != records[0]["name"] {
		t.Errorf("expected name %q, got %q", records[0]["name"], decoded[0]["name"])
	}
}

func TestCodecDecodeHeaderOnly(t *testing.T) {
	codec := NewCodec()
	decoded, err := codec.Decode(strings.NewReader("code,name\n"), DeliveryCenters)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected no records, got %d", len(decoded))
	}
}

func TestCodecDecodeEmptyInput(t *testing.T) {
	codec := NewCodec()
	decoded, err := codec.Decode(strings.NewReader(""), DeliveryCenters)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected no records, got %d", len(decoded))
	}
}

func TestCodecDecodeMalformed(t *testing.T) {
	codec := NewCodec()

	cases := []struct {
		name  string
		input string
	}{
		{"wrong header", "id,label\nDC1,North\n"},
		{"short row", "code,name\nDC1\n"},
		{"long row", "code,name\nDC1,North,extra\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := codec.Decode(strings.NewReader(tc.input), DeliveryCenters); !errors.Is(err, domainErrors.ErrMalformedFile) {
				t.Fatalf("expected malformed file error, got %v", err)
			}
		})
	}
}

func TestCodecEncodeMissingFieldsAsEmpty(t *testing.T) {
	codec := NewCodec()
	var buf bytes.Buffer
	if err := codec.Encode(&buf, Stores, []Record{{"code": "S1"}}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := codec.Decode(&buf, Stores)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded[0]["name"] != "" || decoded[0]["delivery_center_code"] != "" {
		t.Errorf("expected empty values for missing fields, got %v", decoded[0])
	}
}

func TestByEntity(t *testing.T) {
	layout, ok := ByEntity("stores")
	if !ok || layout.KeyField != "code" {
		t.Fatalf("expected stores layout keyed by code, got %v ok=%v", layout, ok)
	}
	if _, ok := ByEntity("unknown"); ok {
		t.Fatal("expected unknown entity to miss")
	}
	if len(Entities()) != 5 {
		t.Fatalf("expected 5 declared entities, got %d", len(Entities()))
	}
}

func TestRecordKey(t *testing.T) {
	record := Record{"ean": "7891", "title": "Rice"}
	if record.Key(Products) != "7891" {
		t.Fatalf("expected key 7891, got %q", record.Key(Products))
	}
}
