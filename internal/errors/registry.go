package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	"E000": {
		Message: "Unexpected error",
	},

	// ============================================
	// Mount Errors (E100-E109)
	// ============================================

	"E100": {
		Category:   CategoryMount,
		Message:    "Invalid element kind",
		Detail:     "Every element needs a kind: a host tag name such as \"div\" or a component reference. Tag names start with a letter and contain only letters, digits, '-', '_', ':' and '.'.",
		Suggestion: "Set kind (or type) to a tag name like \"a\" or \"button\".",
	},
	"E101": {
		Category:   CategoryMount,
		Message:    "Unsupported element kind",
		Detail:     "The renderer only creates host elements. Component references are not executed, and a strict host rejects tags it does not know.",
		Suggestion: "Replace the component with the host elements it renders, or use a custom element name containing a dash.",
	},
	"E102": {
		Category:   CategoryMount,
		Message:    "Invalid child",
		Detail:     "A child must be text, a number or an element. Lists may appear once as the children of an element but not inside another list.",
		Suggestion: "Flatten nested lists before mounting.",
	},
	"E103": {
		Category:   CategoryMount,
		Message:    "Invalid property",
		Detail:     "Keys starting with \"on\" bind event handlers and never become attributes. Handlers cannot be used under other keys. Attribute names cannot contain whitespace, quotes or any of <>/=.",
		Suggestion: "Give event keys a registered handler name, and plain keys a string, number or boolean.",
	},

	// ============================================
	// Decode Errors (E110-E119)
	// ============================================

	"E110": {
		Category:   CategoryDecode,
		Message:    "Malformed document",
		Detail:     "A document is a mapping with kind (or type), props, children and key. Other fields are rejected.",
		Suggestion: "Check the field names and the JSON or YAML syntax. HTML input needs exactly one root element.",
	},
	"E111": {
		Category:   CategoryDecode,
		Message:    "Unknown event handler",
		Detail:     "Event props name a handler registered with the renderer.",
		Suggestion: "Use a built-in handler (log, noop) or pass the name with --handlers.",
	},
	"E112": {
		Category:   CategoryDecode,
		Message:    "Missing element kind",
		Detail:     "Each document mapping needs kind, type or component.",
		Suggestion: "Add `kind: div` (or the tag you want).",
	},
	"E113": {
		Category:   CategoryDecode,
		Message:    "Unsupported child value",
		Detail:     "Children may be strings, numbers, mappings or lists of those.",
		Suggestion: "Quote booleans and dates that should be rendered as text.",
	},

	// ============================================
	// Config Errors (E120-E129)
	// ============================================

	"E120": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Detail:     "velem.json could not be parsed or contains invalid values.",
		Suggestion: "Check the JSON syntax and value ranges in velem.json.",
	},
	"E121": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Detail:     "No velem.json was found in the current directory or its parents.",
		Suggestion: "Pass --config or create velem.json.",
	},

	// ============================================
	// Publish Errors (E130-E139)
	// ============================================

	"E130": {
		Category:   CategoryPublish,
		Message:    "Publishing failed",
		Detail:     "The rendered HTML could not be written to its destination.",
		Suggestion: "Check the output directory permissions or the S3 bucket and credentials.",
	},

	// ============================================
	// Server Errors (E140-E149)
	// ============================================

	"E140": {
		Category:   CategoryServer,
		Message:    "Preview server failed",
		Detail:     "The preview server stopped with an error.",
		Suggestion: "Check that the port is free.",
	},
}

// Lookup returns the template for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
