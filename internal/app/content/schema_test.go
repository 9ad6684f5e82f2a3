package content

import "testing"

func TestFieldKeysAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, section := range Sections {
		if len(section.Fields) == 0 {
			t.Errorf("section %q declares no fields", section.ID)
		}
		for _, field := range section.Fields {
			if field.Key == "" {
				t.Errorf("section %q contains a field with an empty key", section.ID)
				continue
			}
			if prev, dup := seen[field.Key]; dup {
				t.Errorf("field key %q declared in both %q and %q", field.Key, prev, section.ID)
			}
			seen[field.Key] = section.ID

			if field.InputType != InputText && field.InputType != InputTextarea {
				t.Errorf("field %q has invalid input type %q", field.Key, field.InputType)
			}
			if field.Format != FormatPlain && field.Format != FormatMarkdown {
				t.Errorf("field %q has invalid format %q", field.Key, field.Format)
			}
		}
	}
}

func TestFieldByKey(t *testing.T) {
	f, ok := FieldByKey("nav_brand_title")
	if !ok {
		t.Fatal("nav_brand_title missing from index")
	}
	if f.Default != "University Church" {
		t.Fatalf("nav_brand_title default = %q", f.Default)
	}

	if _, ok := FieldByKey("no_such_key"); ok {
		t.Fatal("unknown key resolved from index")
	}
}

func TestResolveMergesStoredValues(t *testing.T) {
	stored := map[string]string{
		"nav_brand_title": "New Name",
		"stray_key":       "ignored",
	}

	resolved := Resolve(stored)
	if len(resolved) != len(Sections) {
		t.Fatalf("resolved %d sections, want %d", len(resolved), len(Sections))
	}

	for _, section := range resolved {
		for _, field := range section.Fields {
			switch field.Key {
			case "nav_brand_title":
				if field.Value != "New Name" {
					t.Fatalf("stored value not applied: %q", field.Value)
				}
			default:
				if field.Value != field.Default {
					t.Fatalf("field %q value = %q, want default %q", field.Key, field.Value, field.Default)
				}
			}
		}
	}
}

func TestDefaultsCoversEveryField(t *testing.T) {
	defaults := Defaults()
	total := 0
	for _, section := range Sections {
		total += len(section.Fields)
		for _, field := range section.Fields {
			if _, ok := defaults[field.Key]; !ok {
				t.Errorf("defaults missing key %q", field.Key)
			}
		}
	}
	if len(defaults) != total {
		t.Fatalf("defaults has %d entries, want %d", len(defaults), total)
	}
}
