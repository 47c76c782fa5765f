package document

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-quotegen/pkg/templates"
)

//go:embed assets/*.html assets/*.js
var embeddedAssets embed.FS

const (
	summaryTemplateName = "summary.html"
	detailTemplateName  = "detail.html"
	actionBarName       = "actionbar.html"
	actionScriptName    = "actions.js"
)

// AssetsFS exposes the embedded default bundle (templates, action bar,
// script) so callers can serve or override individual pieces.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// Should never happen, but fall back to raw FS so assets remain usable.
		return embeddedAssets
	}
	return sub
}

// DefaultTemplates returns the embedded summary/detail pair as a ready Set.
func DefaultTemplates() templates.Set {
	return templates.Set{
		Summary: readAsset(summaryTemplateName),
		Detail:  readAsset(detailTemplateName),
	}
}

func actionBarFragment() string {
	return readAsset(actionBarName)
}

func actionScriptFragment() string {
	return readAsset(actionScriptName)
}

func readAsset(name string) string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+name)
	if err != nil {
		return ""
	}
	return string(data)
}
