package patch

import (
	"encoding/json"
	"testing"
)

type testPayload struct {
	Name   Field[string]  `json:"name"`
	Amount Field[float64] `json:"amount"`
}

func TestFieldAbsent(t *testing.T) {
	var p testPayload
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if p.Name.Present {
		t.Error("expected absent field to stay not-present")
	}
}

func TestFieldExplicitNull(t *testing.T) {
	var p testPayload
	if err := json.Unmarshal([]byte(`{"name": null}`), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !p.Name.Present {
		t.Error("expected null field to be present")
	}
	if p.Name.Valid {
		t.Error("expected null field to be invalid")
	}
}

func TestFieldValue(t *testing.T) {
	var p testPayload
	if err := json.Unmarshal([]byte(`{"name": "Ava", "amount": 120.5}`), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !p.Name.Present || !p.Name.Valid || p.Name.Value != "Ava" {
		t.Errorf("unexpected name field: %+v", p.Name)
	}
	if !p.Amount.Present || !p.Amount.Valid || p.Amount.Value != 120.5 {
		t.Errorf("unexpected amount field: %+v", p.Amount)
	}
}

func TestFieldZeroValueDistinctFromNull(t *testing.T) {
	var p testPayload
	if err := json.Unmarshal([]byte(`{"amount": 0}`), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	// A literal zero is a real value, not a clear.
	if !p.Amount.Present || !p.Amount.Valid || p.Amount.Value != 0 {
		t.Errorf("expected explicit zero to be a valid value, got %+v", p.Amount)
	}
}

func TestFieldMarshal(t *testing.T) {
	out, err := json.Marshal(testPayload{Name: Set("Ava"), Amount: Null[float64]()})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"name":"Ava","amount":null}`
	if string(out) != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestFieldRejectsWrongType(t *testing.T) {
	var p testPayload
	if err := json.Unmarshal([]byte(`{"amount": "not a number"}`), &p); err == nil {
		t.Error("expected type mismatch to error")
	}
}
