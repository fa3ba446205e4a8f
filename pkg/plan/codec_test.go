package plan

import (
	"reflect"
	"testing"
)

func sampleBundle() *Bundle {
	return &Bundle{
		Numeric: Numeric{
			"area":  Binarize,
			"age":   Skip,
			"price": Log,
			"sqft":  YeoJohnson,
		},
		Target: &Target{Variable: "price", Decision: Log},
		Missing: Missing{
			"junk": DropColumn(),
			"city": FillCategory("la"),
			"pool": FillCategory(UnknownCategory),
			"age":  FillNumber(20.5),
		},
		Encoding: Encoding{"color": {"red": 0, "blue": 1}},
	}
}

func TestBundleRoundTrip(t *testing.T) {
	for _, f := range []Format{JSON, YAML, TOML} {
		in := sampleBundle()
		data, err := Marshal(in, f)
		if err != nil {
			t.Fatalf("%s marshal: %v", f, err)
		}
		out, err := Unmarshal(data, f)
		if err != nil {
			t.Fatalf("%s unmarshal: %v", f, err)
		}
		if !reflect.DeepEqual(in, out) {
			t.Fatalf("%s round trip changed the bundle:\nin:  %+v\nout: %+v", f, in, out)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := Marshal(sampleBundle(), Format("xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := Unmarshal([]byte("{}"), Format("xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json"), JSON); err == nil {
		t.Fatal("expected decode error")
	}
}
