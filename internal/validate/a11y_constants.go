package validate

// ariaAttributes lists valid ARIA attribute suffixes (without the
// "aria-" prefix).
var ariaAttributes = map[string]bool{
	"activedescendant": true, "atomic": true, "autocomplete": true, "busy": true, "checked": true,
	"colcount": true, "colindex": true, "colspan": true, "controls": true, "current": true,
	"describedby": true, "description": true, "details": true, "disabled": true, "dropeffect": true,
	"errormessage": true, "expanded": true, "flowto": true, "grabbed": true, "haspopup": true,
	"hidden": true, "invalid": true, "keyshortcuts": true, "label": true, "labelledby": true,
	"level": true, "live": true, "modal": true, "multiline": true, "multiselectable": true,
	"orientation": true, "owns": true, "placeholder": true, "posinset": true, "pressed": true,
	"readonly": true, "relevant": true, "required": true, "roledescription": true, "rowcount": true,
	"rowindex": true, "rowspan": true, "selected": true, "setsize": true, "sort": true,
	"valuemax": true, "valuemin": true, "valuenow": true, "valuetext": true,
}

// a11yRequiredAttributes maps an element name to the attributes at
// least one of which must be present.
var a11yRequiredAttributes = map[string][]string{
	"a":      {"href"},
	"area":   {"alt", "aria-label", "aria-labelledby"},
	"html":   {"lang"},
	"iframe": {"title"},
	"img":    {"alt"},
	"object": {"title", "aria-label", "aria-labelledby"},
}

var a11yDistractingElements = map[string]bool{
	"blink": true, "marquee": true,
}

var a11yRequiredContent = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var a11yLabelable = map[string]bool{
	"button": true, "input": true, "keygen": true, "meter": true,
	"output": true, "progress": true, "select": true, "textarea": true,
}

var a11yInteractiveHandlers = map[string]bool{
	"keypress": true, "keydown": true, "keyup": true,
	"click": true, "contextmenu": true, "dblclick": true,
	"drag": true, "dragend": true, "dragenter": true, "dragexit": true,
	"dragleave": true, "dragover": true, "dragstart": true, "drop": true,
	"mousedown": true, "mouseenter": true, "mouseleave": true,
	"mousemove": true, "mouseout": true, "mouseover": true, "mouseup": true,
}

var a11yRecommendedInteractiveHandlers = map[string]bool{
	"click": true, "mousedown": true, "mouseup": true,
	"keypress": true, "keydown": true, "keyup": true,
}

// a11yNestedImplicitSemantics maps an element to the role it takes on
// when nested inside <section>/<article>.
var a11yNestedImplicitSemantics = map[string]string{
	"header": "banner",
	"footer": "contentinfo",
}

var a11yImplicitSemantics = map[string]string{
	"a": "link", "area": "link", "article": "article", "aside": "complementary",
	"body": "document", "button": "button", "datalist": "listbox", "dd": "definition",
	"dfn": "term", "dialog": "dialog", "details": "group", "dt": "term",
	"fieldset": "group", "figure": "figure", "form": "form",
	"h1": "heading", "h2": "heading", "h3": "heading", "h4": "heading", "h5": "heading", "h6": "heading",
	"hr": "separator", "img": "img", "li": "listitem", "link": "link", "main": "main",
	"menu": "list", "meter": "progressbar", "nav": "navigation", "ol": "list",
	"option": "option", "optgroup": "group", "output": "status", "progress": "progressbar",
	"section": "region", "summary": "button", "table": "table", "tbody": "rowgroup",
	"textarea": "textbox", "tfoot": "rowgroup", "thead": "rowgroup", "tr": "row", "ul": "list",
}

var menuitemTypeToImplicitRole = map[string]string{
	"command": "menuitem", "checkbox": "menuitemcheckbox", "radio": "menuitemradio",
}

var inputTypeToImplicitRole = map[string]string{
	"button": "button", "image": "button", "reset": "button", "submit": "button",
	"checkbox": "checkbox", "radio": "radio", "range": "slider", "number": "spinbutton",
	"email": "textbox", "search": "searchbox", "tel": "textbox", "text": "textbox", "url": "textbox",
}

var a11yNonInteractiveElementToInteractiveRoleExceptions = map[string][]string{
	"ul":       {"listbox", "menu", "menubar", "radiogroup", "tablist", "tree", "treegrid"},
	"ol":       {"listbox", "menu", "menubar", "radiogroup", "tablist", "tree", "treegrid"},
	"li":       {"menuitem", "option", "row", "tab", "treeitem"},
	"table":    {"grid"},
	"td":       {"gridcell"},
	"fieldset": {"radiogroup", "presentation"},
}

var comboboxIfList = map[string]bool{
	"email": true, "search": true, "tel": true, "text": true, "url": true,
}

var addressTypeTokens = map[string]bool{
	"shipping": true, "billing": true,
}

var autofillFieldNameTokens = map[string]bool{
	"": true, "on": true, "off": true, "name": true, "honorific-prefix": true, "given-name": true,
	"additional-name": true, "family-name": true, "honorific-suffix": true, "nickname": true,
	"username": true, "new-password": true, "current-password": true, "one-time-code": true,
	"organization-title": true, "organization": true, "street-address": true,
	"address-line1": true, "address-line2": true, "address-line3": true,
	"address-level4": true, "address-level3": true, "address-level2": true, "address-level1": true,
	"country": true, "country-name": true, "postal-code": true,
	"cc-name": true, "cc-given-name": true, "cc-additional-name": true, "cc-family-name": true,
	"cc-number": true, "cc-exp": true, "cc-exp-month": true, "cc-exp-year": true, "cc-csc": true, "cc-type": true,
	"transaction-currency": true, "transaction-amount": true, "language": true,
	"bday": true, "bday-day": true, "bday-month": true, "bday-year": true, "sex": true, "url": true, "photo": true,
}

var contactTypeTokens = map[string]bool{
	"home": true, "work": true, "mobile": true, "fax": true, "pager": true,
}

var autofillContactFieldNameTokens = map[string]bool{
	"tel": true, "tel-country-code": true, "tel-national": true, "tel-area-code": true,
	"tel-local": true, "tel-local-prefix": true, "tel-local-suffix": true, "tel-extension": true,
	"email": true, "impp": true,
}

// elementInteractivity classifies an element for the
// interactive-handlers-need-an-interactive-role family of checks.
type elementInteractivity int

const (
	interactiveElement elementInteractivity = iota
	nonInteractiveElement
	staticElement
)

var invisibleElements = map[string]bool{
	"meta": true, "html": true, "script": true, "style": true,
}

var presentationRoles = map[string]bool{
	"presentation": true, "none": true,
}

var abstractRoles = map[string]bool{
	"command": true, "composite": true, "input": true, "landmark": true, "range": true,
	"roletype": true, "section": true, "sectionhead": true, "select": true, "structure": true,
	"widget": true, "window": true,
}

var ariaRoles = map[string]bool{
	"button": true, "checkbox": true, "gridcell": true, "link": true, "menuitem": true,
	"menuitemcheckbox": true, "menuitemradio": true, "option": true, "progressbar": true,
	"radio": true, "scrollbar": true, "searchbox": true, "separator": true, "slider": true,
	"spinbutton": true, "switch": true, "tab": true, "tabpanel": true, "textbox": true, "treeitem": true,
	"combobox": true, "grid": true, "listbox": true, "menu": true, "menubar": true, "radiogroup": true,
	"tablist": true, "tree": true, "treegrid": true,
	"application": true, "article": true, "blockquote": true, "caption": true, "cell": true,
	"columnheader": true, "definition": true, "deletion": true, "directory": true, "document": true,
	"emphasis": true, "feed": true, "figure": true, "generic": true, "group": true, "heading": true,
	"img": true, "insertion": true, "list": true, "listitem": true, "math": true, "meter": true, "none": true,
	"note": true, "paragraph": true, "presentation": true, "row": true, "rowgroup": true, "rowheader": true,
	"strong": true, "subscript": true, "superscript": true, "table": true, "term": true,
	"time": true, "toolbar": true, "tooltip": true,
	"banner": true, "complementary": true, "contentinfo": true, "form": true, "main": true,
	"navigation": true, "region": true, "search": true,
	"alert": true, "log": true, "marquee": true, "status": true, "timer": true,
	"alertdialog": true, "dialog": true,
}

// abstractRoles are included in ariaRoles for validation purposes (they
// are syntactically valid role values) even though they should never be
// used directly in markup.
func init() {
	for role := range abstractRoles {
		ariaRoles[role] = true
	}
}

var nonInteractiveRoles = map[string]bool{
	"article": true, "banner": true, "blockquote": true, "caption": true, "cell": true,
	"columnheader": true, "complementary": true, "contentinfo": true, "definition": true,
	"deletion": true, "directory": true, "document": true, "emphasis": true, "feed": true,
	"figure": true, "form": true, "group": true, "heading": true, "img": true, "insertion": true,
	"list": true, "listitem": true, "log": true, "main": true, "marquee": true, "math": true,
	"meter": true, "navigation": true, "none": true, "note": true, "paragraph": true,
	"presentation": true, "region": true, "row": true, "rowgroup": true, "rowheader": true,
	"search": true, "status": true, "strong": true, "subscript": true, "superscript": true,
	"table": true, "term": true, "time": true, "timer": true, "tooltip": true,
	"progressbar": true,
}

var interactiveRoles = map[string]bool{
	"alert": true, "alertdialog": true, "application": true, "button": true, "checkbox": true,
	"combobox": true, "dialog": true, "grid": true, "gridcell": true, "link": true, "listbox": true,
	"menu": true, "menubar": true, "menuitem": true, "menuitemcheckbox": true, "menuitemradio": true,
	"option": true, "radio": true, "radiogroup": true, "scrollbar": true, "searchbox": true,
	"separator": true, "slider": true, "spinbutton": true, "switch": true, "tab": true, "tablist": true,
	"tabpanel": true, "textbox": true, "toolbar": true, "tree": true, "treegrid": true, "treeitem": true,
	"cell": true,
}
