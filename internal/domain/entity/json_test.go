package entity

import (
	"testing"
)

func TestJSONValueAndScan(t *testing.T) {
	original := JSON{"entity": "patient_record", "entity_id": "abc"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var scanned JSON
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if scanned["entity"] != "patient_record" || scanned["entity_id"] != "abc" {
		t.Errorf("round trip mismatch: %+v", scanned)
	}
}

func TestJSONEmptyValueIsNull(t *testing.T) {
	var empty JSON
	value, err := empty.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if value != nil {
		t.Errorf("expected NULL for empty map, got %v", value)
	}
}

func TestJSONScanNil(t *testing.T) {
	j := JSON{"stale": true}
	if err := j.Scan(nil); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if j != nil {
		t.Errorf("expected nil map after scanning NULL, got %+v", j)
	}
}

func TestJSONScanRejectsUnknownType(t *testing.T) {
	var j JSON
	if err := j.Scan(42); err == nil {
		t.Error("expected an error for a non-bytes value")
	}
}

func TestStringListValueAndScan(t *testing.T) {
	original := StringList{"08:00", "20:00"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var scanned StringList
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(scanned) != 2 || scanned[0] != "08:00" || scanned[1] != "20:00" {
		t.Errorf("round trip mismatch: %+v", scanned)
	}
}

func TestStringListScanString(t *testing.T) {
	var l StringList
	if err := l.Scan(`["09:30"]`); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(l) != 1 || l[0] != "09:30" {
		t.Errorf("unexpected list %+v", l)
	}
}
