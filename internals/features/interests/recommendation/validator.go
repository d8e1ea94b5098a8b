package recommendation

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/text/unicode/norm"
)

const resultSchema = `{
  "type": "object",
  "required": ["recommendations"],
  "properties": {
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "type", "reason"],
        "properties": {
          "name":   {"type": "string", "minLength": 1},
          "type":   {"type": "string"},
          "reason": {"type": "string"}
        }
      }
    }
  }
}`

var resultSchemaLoader = gojsonschema.NewStringLoader(resultSchema)

// ValidateResponse mem-parse teks dari model, mengecek strukturnya, lalu
// memastikan setiap nama ada di katalog yang dipakai untuk request ini.
// Entri dikembalikan apa adanya.
func ValidateResponse(raw string, catalog []string) (*Result, error) {
	body := strings.TrimSpace(raw)
	if body == "" {
		return nil, &FormatError{Detail: "respon kosong", Raw: raw}
	}

	res, err := gojsonschema.Validate(resultSchemaLoader, gojsonschema.NewStringLoader(body))
	if err != nil {
		return nil, &FormatError{Detail: "JSON tidak valid: " + err.Error(), Raw: raw}
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, &FormatError{Detail: "skema tidak cocok: " + strings.Join(msgs, "; "), Raw: raw}
	}

	var out Result
	if err := sonic.UnmarshalString(body, &out); err != nil {
		return nil, &FormatError{Detail: "JSON tidak valid: " + err.Error(), Raw: raw}
	}
	if out.Recommendations == nil {
		out.Recommendations = []Recommendation{}
	}

	if unknown := outsideCatalog(out.Recommendations, catalog); len(unknown) > 0 {
		return nil, &FormatError{
			Detail: fmt.Sprintf("mata kuliah di luar katalog: %s", strings.Join(unknown, ", ")),
			Raw:    raw,
		}
	}
	return &out, nil
}

func outsideCatalog(recs []Recommendation, catalog []string) []string {
	known := make(map[string]struct{}, len(catalog))
	for _, c := range catalog {
		known[normalizeName(c)] = struct{}{}
	}
	var unknown []string
	for _, r := range recs {
		if _, ok := known[normalizeName(r.Name)]; !ok {
			unknown = append(unknown, r.Name)
		}
	}
	return unknown
}

func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
