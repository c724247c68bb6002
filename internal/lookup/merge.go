package lookup

type mergePolicy int

const (
	// fillIfEmpty only writes when the accumulated value is still empty.
	fillIfEmpty mergePolicy = iota
	// overwrite always replaces the accumulated value.
	overwrite
)

type fieldRule struct {
	name   string
	policy mergePolicy
	field  func(*Fields) *string
}

type ruleTable []fieldRule

func (t ruleTable) apply(dst *Fields, src Fields) {
	for _, rule := range t {
		d := rule.field(dst)
		s := *rule.field(&src)
		switch rule.policy {
		case fillIfEmpty:
			if *d == "" {
				*d = s
			}
		case overwrite:
			*d = s
		}
	}
}

func title(f *Fields) *string     { return &f.Title }
func author(f *Fields) *string    { return &f.Author }
func publisher(f *Fields) *string { return &f.Publisher }
func coverURL(f *Fields) *string  { return &f.CoverURL }

// openBD runs first, so it seeds every field.
var primaryRules = ruleTable{
	{name: "title", policy: overwrite, field: title},
	{name: "author", policy: overwrite, field: author},
	{name: "publisher", policy: overwrite, field: publisher},
	{name: "cover_url", policy: overwrite, field: coverURL},
}

// Google Books only backfills text fields. The cover is replaced outright, which is
// safe because this stage only runs while the cover is still empty.
var fallbackRules = ruleTable{
	{name: "title", policy: fillIfEmpty, field: title},
	{name: "author", policy: fillIfEmpty, field: author},
	{name: "publisher", policy: fillIfEmpty, field: publisher},
	{name: "cover_url", policy: overwrite, field: coverURL},
}
