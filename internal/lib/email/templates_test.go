package email

import (
	"strings"
	"testing"
)

func TestRenderPreviewData(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			html, err := Render(name, data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if !strings.Contains(html, data["UserFirstName"]) {
				t.Errorf("rendered %s does not mention the first name", name)
			}
		})
	}
}

func TestRenderEscapesInput(t *testing.T) {
	html, err := Render(TemplateWelcome, map[string]string{"UserFirstName": "<script>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("template output was not escaped")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := Render(Template("missing"), nil); err == nil {
		t.Error("expected an error for an unknown template")
	}
}
