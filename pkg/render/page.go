package render

import (
	"fmt"
	"io"

	"github.com/calyx-ui/calyx/pkg/dom"
	"github.com/calyx-ui/calyx/pkg/runtime"
	"github.com/calyx-ui/calyx/pkg/vdom"
)

// Page contains the data needed to render a complete HTML document whose
// mount root is prepared for client-side hydration.
type Page struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element. Defaults to "en".
	Lang string

	// MountID is the id of the mount root element. Defaults to "app".
	MountID string

	// Cloaked adds the pre-mount cloak attribute to the mount root so the
	// page can hide unmounted content; the hydrating mount removes it.
	Cloaked bool

	// StyleSheets are hrefs of external stylesheets.
	StyleSheets []string

	// Scripts are srcs of deferred script tags appended to the body.
	Scripts []string
}

// CloakAttr is the pre-mount cloak marker attribute stamped on mount roots.
// The runtime removes it when a client-side mount succeeds.
const CloakAttr = runtime.AttrCloak

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	mountID := page.MountID
	if mountID == "" {
		mountID = "app"
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<html lang=\"%s\">\n<head>\n", dom.EscapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<meta charset="utf-8">`+"\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", dom.EscapeText(page.Title)); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, "<link rel=\"stylesheet\" href=\"%s\">\n", dom.EscapeAttr(href)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
		return err
	}

	cloak := ""
	if page.Cloaked {
		cloak = " " + CloakAttr + `=""`
	}
	if _, err := fmt.Fprintf(w, "<div id=\"%s\"%s>", dom.EscapeAttr(mountID), cloak); err != nil {
		return err
	}
	if err := r.ToWriter(w, page.Body); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</div>\n"); err != nil {
		return err
	}

	for _, src := range page.Scripts {
		if _, err := fmt.Fprintf(w, "<script src=\"%s\" defer></script>\n", dom.EscapeAttr(src)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
