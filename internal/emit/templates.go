package emit

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/android/*
var androidFS embed.FS

// androidData carries the resolved values interpolated into the Android
// platform templates. All values must already be in their final, escaped
// form.
type androidData struct {
	// AppName is the display name, XML-PCDATA escaped.
	AppName string

	// IDSymbol is the symbolized application id, safe inside Groovy
	// string literals.
	IDSymbol string

	// Namespace is the Java package of the application sources.
	Namespace string

	// SDKPath is the local path to the Android SDK installation.
	SDKPath string
}

// escapeXMLPCData escapes data for verbatim use in XML PCDATA positions.
func escapeXMLPCData(data string) string {
	data = strings.ReplaceAll(data, "&", "&amp;")
	data = strings.ReplaceAll(data, "<", "&lt;")
	return data
}

// renderAndroid renders a single embedded Android template to a byte
// buffer, ready for a content-diffed write.
func renderAndroid(name string, data androidData) ([]byte, error) {
	content, err := androidFS.ReadFile("templates/android/" + name + ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
