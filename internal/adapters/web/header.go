package web

import (
	"net/url"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"sitelang/internal/application"
	"sitelang/internal/domain"
	"sitelang/internal/domain/entities"
	"sitelang/internal/ports/output"
)

const (
	headerID       = "site-header"
	navID          = "site-nav"
	switchID       = "language-switch"
	switchEndpoint = "/switch-language"
	toggleClass    = "site-header__toggle"
	navOpenClass   = "is-open"
)

// toggleScript opens and closes the navigation on small screens.
const toggleScript = `(function () {
  var nav = document.getElementById("` + navID + `");
  var button = document.querySelector("#` + headerID + ` .` + toggleClass + `");
  if (!nav || !button) return;
  button.addEventListener("click", function () {
    var open = button.getAttribute("aria-expanded") !== "true";
    button.setAttribute("aria-expanded", open ? "true" : "false");
    nav.classList.toggle("` + navOpenClass + `", open);
  });
})();`

type navLink struct {
	Label  string
	Href   string
	Active bool
}

// headerView is everything the header markup needs, already localized.
type headerView struct {
	Code        string
	Brand       string
	HomeHref    string
	MenuLabel   string
	Links       []navLink
	SwitchHref  string
	SwitchLang  string
	SwitchLabel string
	SwitchTitle string
}

// buildHeaderView localizes the navigation for the page at loc. The switch
// link goes through switchEndpoint so the target is resolved when clicked.
func buildHeaderView(site entities.Site, loc entities.Location, catalog *entities.Catalog, tr output.Translator) headerView {
	lang := application.DetectLanguage(site, loc.LangAttr, loc.Path)
	conv := application.ConventionOf(site, loc.Path)
	code := site.Code(lang)
	current := site.BareSlug(application.ExtractSlug(site, loc.Path))

	v := headerView{
		Code:        code,
		Brand:       tr.T(code, "header.brand", nil),
		HomeHref:    site.Path(conv, lang, site.HomeSlug),
		MenuLabel:   tr.T(code, "header.menu_toggle", nil),
		SwitchLang:  site.Code(lang.Other()),
		SwitchLabel: tr.T(code, "header.switch_label", nil),
		SwitchTitle: tr.T(code, "header.switch_title", nil),
	}

	q := url.Values{}
	q.Set("from", loc.Path)
	q.Set("lang", code)
	v.SwitchHref = switchEndpoint + "?" + q.Encode()

	if catalog == nil {
		return v
	}
	for _, item := range catalog.Navigation {
		slug := catalog.NavSlug(item, lang, site.HomeSlug)
		v.Links = append(v.Links, navLink{
			Label:  tr.T(code, "nav."+item.Key, nil),
			Href:   site.Path(conv, lang, slug),
			Active: slug == current,
		})
	}
	return v
}

// injectHeader inserts the header as the first child of <body>. A document
// that already carries a header is left untouched.
func injectHeader(doc *html.Node, v headerView) error {
	if findByID(doc, headerID) != nil {
		return domain.ErrHeaderAlreadyInPage
	}
	body := findElement(doc, atom.Body)
	if body == nil {
		return domain.ErrPageWithoutBody
	}
	body.InsertBefore(renderHeader(v), body.FirstChild)
	return nil
}

func renderHeader(v headerView) *html.Node {
	header := element(atom.Header,
		attr("id", headerID),
		attr("class", "site-header"),
		attr("data-lang", v.Code),
	)

	brand := element(atom.A, attr("class", "site-header__brand"), attr("href", v.HomeHref))
	brand.AppendChild(text(v.Brand))
	header.AppendChild(brand)

	toggle := element(atom.Button,
		attr("type", "button"),
		attr("class", toggleClass),
		attr("aria-controls", navID),
		attr("aria-expanded", "false"),
	)
	toggle.AppendChild(text(v.MenuLabel))
	header.AppendChild(toggle)

	nav := element(atom.Nav, attr("id", navID), attr("class", "site-header__nav"))
	list := element(atom.Ul)
	for _, l := range v.Links {
		a := element(atom.A, attr("href", l.Href))
		if l.Active {
			a.Attr = append(a.Attr, attr("aria-current", "page"))
		}
		a.AppendChild(text(l.Label))
		li := element(atom.Li)
		li.AppendChild(a)
		list.AppendChild(li)
	}
	nav.AppendChild(list)
	header.AppendChild(nav)

	sw := element(atom.A,
		attr("id", switchID),
		attr("class", "site-header__lang-switch"),
		attr("href", v.SwitchHref),
		attr("hreflang", v.SwitchLang),
		attr("lang", v.SwitchLang),
		attr("title", v.SwitchTitle),
	)
	sw.AppendChild(text(v.SwitchLabel))
	header.AppendChild(sw)

	script := element(atom.Script)
	script.AppendChild(text(toggleScript))
	header.AppendChild(script)

	return header
}

// documentLang returns the lang attribute of <html>, "" when absent.
func documentLang(doc *html.Node) string {
	root := findElement(doc, atom.Html)
	if root == nil {
		return ""
	}
	return getAttr(root, "lang")
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && getAttr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
