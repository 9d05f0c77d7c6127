package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocRenders(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var spec struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("rendered swagger doc is not valid JSON: %v", err)
	}

	if spec.Info.Title != "Personal Agent API" {
		t.Errorf("title = %q, want Personal Agent API", spec.Info.Title)
	}
	for _, path := range []string{
		"/api/v1/assistant/route",
		"/api/v1/assistant/chat",
		"/api/v1/assistant/runs",
	} {
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}
}
