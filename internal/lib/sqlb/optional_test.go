package sqlb

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

type patch struct {
	Salary Optional[int]    `json:"salary"`
	Logo   Optional[string] `json:"logo"`
}

func TestOptionalUnmarshal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantSalary Optional[int]
		wantLogo   Optional[string]
	}{
		{"absent", `{}`, Optional[int]{}, Optional[string]{}},
		{"null", `{"salary": null}`, Null[int](), Optional[string]{}},
		{"value", `{"salary": 10, "logo": "x"}`, Some(10), Some("x")},
		{"mixed", `{"salary": 0, "logo": null}`, Some(0), Null[string]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patch
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(p.Salary, tt.wantSalary) || !reflect.DeepEqual(p.Logo, tt.wantLogo) {
				t.Errorf("got %s", spew.Sdump(p))
			}
		})
	}
}

func TestOptionalUnmarshalWrongType(t *testing.T) {
	var p patch
	err := json.Unmarshal([]byte(`{"salary": "ten"}`), &p)

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("err = %v, want *json.UnmarshalTypeError", err)
	}
}

func TestOptionalAssign(t *testing.T) {
	var out []Assignment
	out = Optional[int]{}.Assign(out, "skipped")
	out = Null[string]().Assign(out, "logo")
	out = Some(5).Assign(out, "salary")

	want := []Assignment{{Field: "logo", Value: nil}, {Field: "salary", Value: 5}}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %s", spew.Sdump(out))
	}
}
