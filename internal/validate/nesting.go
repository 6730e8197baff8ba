package validate

import (
	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

// requiredAncestors maps an element name to the set of tag names at
// least one of which must appear among its ancestors; violating this is
// a content-model error the HTML parser itself would silently accept
// but the DOM then renders nonsensically (a <tr> with no <table>).
var requiredAncestors = map[string][]string{
	"tr":       {"table", "thead", "tbody", "tfoot"},
	"td":       {"tr"},
	"th":       {"tr"},
	"thead":    {"table"},
	"tbody":    {"table"},
	"tfoot":    {"table"},
	"colgroup": {"table"},
	"col":      {"colgroup"},
	"caption":  {"table"},
	"li":       {"ul", "ol", "menu"},
	"dt":       {"dl"},
	"dd":       {"dl"},
	"option":   {"select", "optgroup", "datalist"},
	"optgroup": {"select"},
	"legend":   {"fieldset"},
	"figcaption": {"figure"},
	"summary":  {"details"},
	"rt":       {"ruby"},
	"rp":       {"ruby"},
	"track":    {"audio", "video"},
	"source":   {"audio", "video", "picture"},
	"area":     {"map"},
}

// interactiveContent is the WHATWG interactive-content category:
// nesting one inside another produces invalid, unparseable markup.
var interactiveContent = map[string]bool{
	"a": true, "button": true, "details": true, "embed": true,
	"iframe": true, "label": true, "select": true, "textarea": true,
	"audio": true, "video": true, "input": true,
}

// elementNestingError reports to sink each content-model violation of el,
// given the stack of ancestor tag names (innermost last) and the nearest
// interactive-content ancestor.
func elementNestingError(el *tmpl.Node, tag string, ancestors []string, interactiveAncestor string, sink RuneSink) {
	if required, ok := requiredAncestors[tag]; ok {
		if !anyAncestorIn(ancestors, required) {
			sink.AppendError(&loc.ErrorWithRange{
				Code: loc.ERROR_NESTING_INVALID_PLACEMENT,
				Text: "<" + tag + "> must be a descendant of " + joinOr(required),
				Range: loc.Range{Loc: loc.Loc{Start: el.Span.Start}, Len: el.Span.End - el.Span.Start},
			})
		}
	}
	if interactiveContent[tag] && interactiveAncestor != "" {
		sink.AppendError(&loc.ErrorWithRange{
			Code: loc.ERROR_NESTING_INVALID_PLACEMENT,
			Text: "<" + tag + "> cannot be nested inside interactive content <" + interactiveAncestor + ">",
			Range: loc.Range{Loc: loc.Loc{Start: el.Span.Start}, Len: el.Span.End - el.Span.Start},
		})
	}
}

func anyAncestorIn(ancestors []string, allowed []string) bool {
	allowedSet := map[string]bool{}
	for _, a := range allowed {
		allowedSet[a] = true
	}
	for _, a := range ancestors {
		if allowedSet[a] {
			return true
		}
	}
	return false
}

func joinOr(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			if i == len(names)-1 {
				out += " or "
			} else {
				out += ", "
			}
		}
		out += "<" + n + ">"
	}
	return out
}

// walkNesting recurses over the fragment tree, tracking the ancestor
// tag-name stack and the nearest interactive-content ancestor (if any),
// reporting a violation at each regular element via sink.
func walkNesting(n *tmpl.Node, ancestors []string, interactiveAncestor string, sink RuneSink) {
	if n == nil {
		return
	}

	nextAncestors := ancestors
	nextInteractive := interactiveAncestor

	if n.Type == tmpl.ElementNode && n.ElementKind == tmpl.RegularElementKind {
		tag := n.Data
		elementNestingError(n, tag, ancestors, interactiveAncestor, sink)
		nextAncestors = append(append([]string{}, ancestors...), tag)
		if interactiveContent[tag] {
			nextInteractive = tag
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkNesting(c, nextAncestors, nextInteractive, sink)
	}

	if n.IfConsequent != nil {
		walkNesting(n.IfConsequent, nextAncestors, nextInteractive, sink)
	}
	if n.IfAlternate != nil {
		walkNesting(n.IfAlternate, nextAncestors, nextInteractive, sink)
	}
	if n.Fallback != nil {
		walkNesting(n.Fallback, nextAncestors, nextInteractive, sink)
	}
	if n.AwaitPending != nil {
		walkNesting(n.AwaitPending, nextAncestors, nextInteractive, sink)
	}
	if n.AwaitThen != nil {
		walkNesting(n.AwaitThen, nextAncestors, nextInteractive, sink)
	}
	if n.AwaitCatch != nil {
		walkNesting(n.AwaitCatch, nextAncestors, nextInteractive, sink)
	}
}

// ValidateNesting walks a parsed fragment reporting content-model
// violations (an element used outside its required ancestor, or
// interactive content nested inside interactive content).
func ValidateNesting(fragment *tmpl.Node, sink RuneSink) {
	walkNesting(fragment, nil, "", sink)
}
